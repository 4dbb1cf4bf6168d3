package handler

import (
	"log/slog"
	"net/http"
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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.ProximitySessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves the recording session lifecycle
type SessionHandler struct {
	sessionUC usecase.ProximitySessionUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// PositionRequest is a device fix sent by the client
type PositionRequest struct {
	Latitude       float64    `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64    `json:"longitude" validate:"gte=-180,lte=180"`
	AccuracyMeters float64    `json:"accuracy_meters" validate:"gte=0"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// StartSessionRequest represents a detection or manual start
type StartSessionRequest struct {
	Position       PositionRequest       `json:"position"`
	ProspectID     *string               `json:"prospect_id,omitempty" validate:"omitempty,max=120"`
	ActivationType entity.ActivationType `json:"activation_type" validate:"omitempty,oneof=automatic manual"`
	DeviceInfo     map[string]any        `json:"device_info,omitempty"`
}

// DeclineSessionRequest represents the vendor's answer to a confirmation prompt
type DeclineSessionRequest struct {
	Reason entity.CancelReason `json:"reason" validate:"omitempty,oneof=user_declined"`
}

// FinishSessionRequest represents a finish request
type FinishSessionRequest struct {
	Reason            entity.FinishReason `json:"reason" validate:"required,oneof=zone_exit manual_stop max_duration_exceeded system_stop"`
	ExitPosition      *PositionRequest    `json:"exit_position,omitempty"`
	LinkedRecordingID *string             `json:"linked_recording_id,omitempty" validate:"omitempty,max=200"`
}

// LinkRecordingRequest attaches an external conversation recording
type LinkRecordingRequest struct {
	RecordingID string `json:"recording_id" validate:"required,max=200"`
}

func (h *SessionHandler) toPosition(req PositionRequest) entity.Position {
	position := entity.Position{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
		Timestamp:      h.now(),
	}
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		position.Timestamp = *req.Timestamp
	}

	return position
}

// StartSession starts a session for the caller when the position matches a zone.
// A position outside every zone answers 200 with created=false and nearby zones.
func (h *SessionHandler) StartSession(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	activation := req.ActivationType
	if activation == "" {
		activation = entity.ActivationManual
	}

	out, err := h.sessionUC.StartProximitySession(c.Request().Context(), &usecase.StartSessionInput{
		VendorID:       vendorID,
		Position:       h.toPosition(req.Position),
		ProspectID:     req.ProspectID,
		ActivationType: activation,
		DeviceInfo:     req.DeviceInfo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, out)
}

// ListSessions lists sessions newest first. Vendors see their own; managers pass vendor_id.
// state takes a comma separated list of states.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	vendorID, err := h.targetVendor(c)
	if err != nil {
		return err
	}

	var states []entity.SessionState
	if raw := c.QueryParam("state"); raw != "" {
		for part := range strings.SplitSeq(raw, ",") {
			state := entity.SessionState(strings.ToUpper(strings.TrimSpace(part)))
			if !state.IsValid() {
				return response.BadRequest(c, "VALIDATION_ERROR", "Unknown session state "+part)
			}
			states = append(states, state)
		}
	}

	sessions, err := h.sessionUC.ListProximitySessions(c.Request().Context(), vendorID, states)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessions)
}

// GetActiveSession returns the caller's open session, or null
func (h *SessionHandler) GetActiveSession(c echo.Context) error {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	session, err := h.sessionUC.GetActiveSession(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GetSession returns a session visible to the caller
func (h *SessionHandler) GetSession(c echo.Context) error {
	session, err := h.visibleSession(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, session)
}

// ConfirmSession accepts a pending confirmation prompt
func (h *SessionHandler) ConfirmSession(c echo.Context) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	confirmed, err := h.sessionUC.ConfirmProximitySession(c.Request().Context(), session.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmed)
}

// DeclineSession rejects a pending confirmation prompt
func (h *SessionHandler) DeclineSession(c echo.Context) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	var req DeclineSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decline input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	declined, err := h.sessionUC.DeclineProximitySession(c.Request().Context(), session.ID, entity.CancelReasonUserDeclined)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, declined)
}

// FinishSession completes an in-progress session. Finishing a finished session returns it unchanged.
func (h *SessionHandler) FinishSession(c echo.Context) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	var req FinishSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid finish input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.FinishSessionInput{
		SessionID:         session.ID,
		Reason:            req.Reason,
		LinkedRecordingID: req.LinkedRecordingID,
	}
	if req.ExitPosition != nil {
		exit := h.toPosition(*req.ExitPosition)
		input.ExitPosition = &exit
	}

	finished, err := h.sessionUC.FinishProximitySession(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, finished)
}

// LinkRecording attaches the external recording id to the caller's session
func (h *SessionHandler) LinkRecording(c echo.Context) error {
	session, err := h.ownSession(c)
	if err != nil {
		return err
	}

	var req LinkRecordingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recording input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	linked, err := h.sessionUC.LinkExternalRecording(c.Request().Context(), session.ID, req.RecordingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, linked)
}

// targetVendor resolves whose sessions are listed: the caller, or vendor_id for managers.
// Errors are left to the central error handler.
func (h *SessionHandler) targetVendor(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	raw := c.QueryParam("vendor_id")
	if raw == "" {
		return userID, nil
	}

	vendorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid vendor ID")
	}
	if vendorID != userID && !isManager(c) {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return vendorID, nil
}

// visibleSession loads the :id session if the caller owns it or is a manager.
func (h *SessionHandler) visibleSession(c echo.Context) (*entity.ProximityRecordingSession, error) {
	return h.loadSession(c, true)
}

// ownSession loads the :id session only if the caller owns it.
func (h *SessionHandler) ownSession(c echo.Context) (*entity.ProximityRecordingSession, error) {
	return h.loadSession(c, false)
}

// loadSession hides sessions of other vendors behind SESSION_NOT_FOUND.
func (h *SessionHandler) loadSession(c echo.Context, managerMayRead bool) (*entity.ProximityRecordingSession, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid session ID")
	}

	session, err := h.sessionUC.GetProximitySession(c.Request().Context(), sessionID)
	if err != nil {
		return nil, err
	}
	if session.VendorID != userID && !(managerMayRead && isManager(c)) {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

func isManager(c echo.Context) bool {
	roles, ok := middleware.GetRoles(c)

	return ok && roles.CanReviewAllVendors()
}
