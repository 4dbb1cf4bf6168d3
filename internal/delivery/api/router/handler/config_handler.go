package handler

import (
	"log/slog"
	"net/http"

	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/response"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConfigHandlerParams holds dependencies for ConfigHandler, injected by Fx.
type ConfigHandlerParams struct {
	fx.In

	ConfigUC usecase.VendorConfigUsecase
	Logger   *slog.Logger
}

// ConfigHandler serves the caller's per-zone and global proximity configs
type ConfigHandler struct {
	configUC usecase.VendorConfigUsecase
	logger   *slog.Logger
}

// NewConfigHandler is the constructor for ConfigHandler
func NewConfigHandler(params ConfigHandlerParams) *ConfigHandler {
	return &ConfigHandler{
		configUC: params.ConfigUC,
		logger:   params.Logger,
	}
}

// UpsertConfig creates or replaces the config for a zone, or the global one when zone_id is omitted
func (h *ConfigHandler) UpsertConfig(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.UpsertConfigInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid config input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cfg, err := h.configUC.UpsertConfig(c.Request().Context(), vendorID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// ListConfigs lists the caller's configs
func (h *ConfigHandler) ListConfigs(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	configs, err := h.configUC.ListConfigs(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, configs)
}

// DeleteConfig deactivates one of the caller's configs
func (h *ConfigHandler) DeleteConfig(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid config ID")
	}

	if err := h.configUC.DeleteConfig(c.Request().Context(), vendorID, configID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Config deleted successfully"})
}

// ResolveConfig returns the settings a session in the zone would snapshot
func (h *ConfigHandler) ResolveConfig(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	zoneID, err := uuid.Parse(c.QueryParam("zone_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "zone_id must be a zone ID")
	}

	snapshot, err := h.configUC.ResolveConfig(c.Request().Context(), vendorID, zoneID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}
