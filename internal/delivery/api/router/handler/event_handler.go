package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/response"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultEventLimit = 100

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventLogUsecase
	Logger  *slog.Logger
}

// EventHandler serves the proximity event log
type EventHandler struct {
	eventUC usecase.EventLogUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// ListEvents lists events by vendor_id or session_id, oldest first.
// Vendors only see their own events; managers may query any vendor.
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := parseEventFilter(c)
	if err != nil {
		return err
	}

	if !isManager(c) {
		if filter.VendorID != nil && *filter.VendorID != userID {
			return domainerrors.ErrForbidden
		}
		filter.VendorID = &userID
	} else if filter.VendorID == nil && filter.SessionID == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "vendor_id or session_id is required")
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

func parseEventFilter(c echo.Context) (entity.EventFilter, error) {
	filter := entity.EventFilter{Limit: defaultEventLimit}

	if raw := c.QueryParam("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid vendor ID")
		}
		filter.VendorID = &id
	}
	if raw := c.QueryParam("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid session ID")
		}
		filter.SessionID = &id
	}
	if raw := c.QueryParam("type"); raw != "" {
		for part := range strings.SplitSeq(raw, ",") {
			eventType := entity.EventType(strings.TrimSpace(part))
			if !eventType.IsValid() {
				return filter, domainerrors.ErrValidationFailed.WithDetails("unknown event type " + part)
			}
			filter.Types = append(filter.Types, eventType)
		}
	}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("since must be RFC 3339")
		}
		filter.Since = &since
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > 1000 {
			return filter, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 1000")
		}
		filter.Limit = limit
	}

	return filter, nil
}
