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

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// ZoneHandler serves proximity zone management
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: params.ZoneUC,
		logger: params.Logger,
	}
}

// CreateZone handles zone creation by a manager
func (h *ZoneHandler) CreateZone(c echo.Context) error {
	managerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	zone, err := h.zoneUC.CreateZone(c.Request().Context(), managerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, zone)
}

// UpdateZone handles a partial zone update by a manager
func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	managerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	var req usecase.UpdateZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	zone, err := h.zoneUC.UpdateZone(c.Request().Context(), managerID, zoneID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// DeleteZone removes a zone; zones referenced by sessions are only deactivated
func (h *ZoneHandler) DeleteZone(c echo.Context) error {
	managerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	result, err := h.zoneUC.DeleteZone(c.Request().Context(), managerID, zoneID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetZone returns a single zone
func (h *ZoneHandler) GetZone(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	zone, err := h.zoneUC.GetZone(c.Request().Context(), zoneID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ListZones lists zones, optionally of one owner. owner_id=me selects the caller.
func (h *ZoneHandler) ListZones(c echo.Context) error {
	var ownerID *uuid.UUID
	switch owner := c.QueryParam("owner_id"); owner {
	case "":
	case "me":
		userID, ok := middleware.GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}
		ownerID = &userID
	default:
		id, err := uuid.Parse(owner)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
		}
		ownerID = &id
	}

	zones, err := h.zoneUC.ListZones(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}
