package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/response"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push tokens of the caller's phones
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest carries the push token of a phone
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required"`
}

// DeactivatedDevice is returned after a device stops receiving pushes
type DeactivatedDevice struct {
	ID          uuid.UUID `json:"id"`
	Deactivated bool      `json:"deactivated"`
}

// RegisterDevice registers a device, or refreshes the token of a known one.
// A phone that moves to another vendor account is re-registered under the caller.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	// Platforms arrive as "iOS", "Android" from some clients
	info := &usecase.DeviceInfo{
		FCMToken: strings.TrimSpace(req.FCMToken),
		DeviceID: strings.TrimSpace(req.DeviceID),
		Platform: strings.ToLower(strings.TrimSpace(req.Platform)),
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if err := c.Validate(info); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), vendorID, info)
	if err != nil {
		return err
	}

	h.logger.DebugContext(c.Request().Context(), "Device registered",
		slog.String("vendor_id", vendorID.String()),
		slog.String("device_id", device.DeviceID),
		slog.String("platform", device.Platform),
	)

	return response.Success(c, http.StatusCreated, device)
}

// GetVendorDevices lists the caller's active devices
func (h *DeviceHandler) GetVendorDevices(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	devices, err := h.deviceUC.GetVendorDevices(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice stops push delivery to one of the caller's devices.
// Devices of other vendors are refused with FORBIDDEN.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), vendorID, deviceID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, DeactivatedDevice{ID: deviceID, Deactivated: true})
}
