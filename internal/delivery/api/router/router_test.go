package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router/handler"
	"proximity/internal/delivery/api/validator"
	"proximity/internal/domain/entity"
	domainerrors "proximity/internal/domain/errors"
	"proximity/internal/domain/service"
	"proximity/internal/infra/auth"
	mockUsecase "proximity/internal/mocks/usecase"
	"proximity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiHarness struct {
	e        *echo.Echo
	tokens   service.TokenService
	zones    *mockUsecase.MockZoneUsecase
	configs  *mockUsecase.MockVendorConfigUsecase
	sessions *mockUsecase.MockProximitySessionUsecase
	events   *mockUsecase.MockEventLogUsecase
	devices  *mockUsecase.MockDeviceUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router_test_access_secret_key_long_enough"
	cfg.SecretKey.Refresh = "router_test_refresh_secret_key_long_enough"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &apiHarness{
		tokens:   tokens,
		zones:    mockUsecase.NewMockZoneUsecase(t),
		configs:  mockUsecase.NewMockVendorConfigUsecase(t),
		sessions: mockUsecase.NewMockProximitySessionUsecase(t),
		events:   mockUsecase.NewMockEventLogUsecase(t),
		devices:  mockUsecase.NewMockDeviceUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ZoneHandler:    handler.NewZoneHandler(handler.ZoneHandlerParams{ZoneUC: h.zones, Logger: logger}),
		ConfigHandler:  handler.NewConfigHandler(handler.ConfigHandlerParams{ConfigUC: h.configs, Logger: logger}),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: h.sessions, Logger: logger}),
		EventHandler:   handler.NewEventHandler(handler.EventHandlerParams{EventUC: h.events, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: h.devices, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(e)
	h.e = e

	return h
}

func (h *apiHarness) token(t *testing.T, userID uuid.UUID, roles ...string) string {
	t.Helper()

	access, _, err := h.tokens.GenerateTokens(userID, roles)
	require.NoError(t, err)

	return access
}

func (h *apiHarness) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func testSession(vendorID uuid.UUID, state entity.SessionState) *entity.ProximityRecordingSession {
	return &entity.ProximityRecordingSession{
		ID:             uuid.New(),
		VendorID:       vendorID,
		ZoneID:         uuid.New(),
		State:          state,
		ActivationType: entity.ActivationAutomatic,
		CreatedAt:      time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	h := newAPIHarness(t)

	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Authentication(t *testing.T) {
	h := newAPIHarness(t)
	userID := uuid.New()

	_, refresh, err := h.tokens.GenerateTokens(userID, []string{"vendor"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantCode: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/active", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			h.e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_ZoneWritesRequireManager(t *testing.T) {
	h := newAPIHarness(t)
	vendorID := uuid.New()

	body := `{"name":"Showroom Norte","category":"showroom","latitude":-34.6037,"longitude":-58.3816,"radius_meters":50}`
	rec, env := h.do(t, http.MethodPost, "/api/v1/zones", h.token(t, vendorID, "vendor"), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestRouter_CreateZone(t *testing.T) {
	h := newAPIHarness(t)
	managerID := uuid.New()
	zoneID := uuid.New()

	h.zones.EXPECT().
		CreateZone(mock.Anything, managerID, mock.MatchedBy(func(in *usecase.CreateZoneInput) bool {
			return in.Name == "Showroom Norte" && in.Category == entity.ZoneCategoryShowroom && in.RadiusMeters == 50
		})).
		Return(&entity.ProximityZone{ID: zoneID, Name: "Showroom Norte"}, nil).
		Once()

	body := `{"name":"Showroom Norte","category":"showroom","latitude":-34.6037,"longitude":-58.3816,"radius_meters":50}`
	rec, env := h.do(t, http.MethodPost, "/api/v1/zones", h.token(t, managerID, "manager"), body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var zone entity.ProximityZone
	require.NoError(t, json.Unmarshal(env.Data, &zone))
	assert.Equal(t, zoneID, zone.ID)
}

func TestRouter_CreateZoneValidation(t *testing.T) {
	h := newAPIHarness(t)

	body := `{"name":"Too small","category":"showroom","latitude":-34.6,"longitude":-58.3,"radius_meters":0}`
	rec, env := h.do(t, http.MethodPost, "/api/v1/zones", h.token(t, uuid.New(), "manager"), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "radius_meters")
}

func TestRouter_StartSession(t *testing.T) {
	t.Run("inside a zone creates the session", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()
		session := testSession(vendorID, entity.SessionStateInProgress)

		h.sessions.EXPECT().
			StartProximitySession(mock.Anything, mock.MatchedBy(func(in *usecase.StartSessionInput) bool {
				return in.VendorID == vendorID && in.ActivationType == entity.ActivationManual &&
					in.Position.Latitude == -34.6037 && !in.Position.Timestamp.IsZero()
			})).
			Return(&usecase.StartSessionOutput{Created: true, Session: session}, nil).
			Once()

		body := `{"position":{"latitude":-34.6037,"longitude":-58.3816,"accuracy_meters":8}}`
		rec, env := h.do(t, http.MethodPost, "/api/v1/sessions", h.token(t, vendorID, "vendor"), body)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var out usecase.StartSessionOutput
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.True(t, out.Created)
		assert.Equal(t, session.ID, out.Session.ID)
	})

	t.Run("outside every zone lists nearby zones", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()

		h.sessions.EXPECT().
			StartProximitySession(mock.Anything, mock.Anything).
			Return(&usecase.StartSessionOutput{
				NearbyZones: []entity.NearbyZone{{ZoneID: uuid.New(), Name: "Showroom Norte", DistanceMeters: 120, RadiusMeters: 50}},
			}, nil).
			Once()

		body := `{"position":{"latitude":-34.6027,"longitude":-58.3816,"accuracy_meters":8},"activation_type":"automatic"}`
		rec, env := h.do(t, http.MethodPost, "/api/v1/sessions", h.token(t, vendorID, "vendor"), body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out usecase.StartSessionOutput
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.False(t, out.Created)
		require.Len(t, out.NearbyZones, 1)
		assert.InDelta(t, 120, out.NearbyZones[0].DistanceMeters, 0.001)
	})

	t.Run("open session conflicts with its id", func(t *testing.T) {
		h := newAPIHarness(t)
		openID := uuid.New()

		h.sessions.EXPECT().
			StartProximitySession(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewSessionAlreadyActiveError(openID)).
			Once()

		body := `{"position":{"latitude":-34.6037,"longitude":-58.3816,"accuracy_meters":8}}`
		rec, env := h.do(t, http.MethodPost, "/api/v1/sessions", h.token(t, uuid.New(), "vendor"), body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, map[string]any{"conflicting_id": openID.String()}, env.Error.Details)
	})

	t.Run("invalid latitude", func(t *testing.T) {
		h := newAPIHarness(t)

		body := `{"position":{"latitude":-91,"longitude":-58.3816,"accuracy_meters":8}}`
		rec, _ := h.do(t, http.MethodPost, "/api/v1/sessions", h.token(t, uuid.New(), "vendor"), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_SessionVisibility(t *testing.T) {
	h := newAPIHarness(t)
	ownerID := uuid.New()
	session := testSession(ownerID, entity.SessionStateInProgress)

	h.sessions.EXPECT().GetProximitySession(mock.Anything, session.ID).Return(session, nil)

	path := "/api/v1/sessions/" + session.ID.String()

	rec, env := h.do(t, http.MethodGet, path, h.token(t, uuid.New(), "vendor"), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)

	rec, _ = h.do(t, http.MethodGet, path, h.token(t, ownerID, "vendor"), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = h.do(t, http.MethodGet, path, h.token(t, uuid.New(), "manager"), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Managers read but never drive another vendor's session.
	rec, _ = h.do(t, http.MethodPost, path+"/finish", h.token(t, uuid.New(), "vendor", "manager"), `{"reason":"manual_stop"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_FinishSession(t *testing.T) {
	h := newAPIHarness(t)
	vendorID := uuid.New()
	session := testSession(vendorID, entity.SessionStateInProgress)
	token := h.token(t, vendorID, "vendor")
	path := "/api/v1/sessions/" + session.ID.String() + "/finish"

	h.sessions.EXPECT().GetProximitySession(mock.Anything, session.ID).Return(session, nil)

	rec, env := h.do(t, http.MethodPost, path, token, `{"reason":"because"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "reason")

	finished := session.Clone()
	finished.State = entity.SessionStateCompleted
	h.sessions.EXPECT().
		FinishProximitySession(mock.Anything, mock.MatchedBy(func(in *usecase.FinishSessionInput) bool {
			return in.SessionID == session.ID && in.Reason == entity.FinishReasonZoneExit &&
				in.ExitPosition != nil && in.ExitPosition.Latitude == -34.6027
		})).
		Return(finished, nil).
		Once()

	body := `{"reason":"zone_exit","exit_position":{"latitude":-34.6027,"longitude":-58.3816,"accuracy_meters":5}}`
	rec, env = h.do(t, http.MethodPost, path, token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got entity.ProximityRecordingSession
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, entity.SessionStateCompleted, got.State)
}

func TestRouter_ConfirmInvalidTransition(t *testing.T) {
	h := newAPIHarness(t)
	vendorID := uuid.New()
	session := testSession(vendorID, entity.SessionStateCompleted)

	h.sessions.EXPECT().GetProximitySession(mock.Anything, session.ID).Return(session, nil).Once()
	h.sessions.EXPECT().
		ConfirmProximitySession(mock.Anything, session.ID).
		Return(nil, domainerrors.ErrInvalidTransition.WithDetails("confirm from COMPLETED")).
		Once()

	rec, env := h.do(t, http.MethodPost, "/api/v1/sessions/"+session.ID.String()+"/confirm", h.token(t, vendorID, "vendor"), "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	assert.Equal(t, "confirm from COMPLETED", env.Error.Details)
}

func TestRouter_ListSessions(t *testing.T) {
	h := newAPIHarness(t)
	vendorID := uuid.New()

	h.sessions.EXPECT().
		ListProximitySessions(mock.Anything, vendorID, []entity.SessionState{entity.SessionStateInProgress, entity.SessionStateCompleted}).
		Return([]*entity.ProximityRecordingSession{testSession(vendorID, entity.SessionStateCompleted)}, nil).
		Once()

	rec, _ := h.do(t, http.MethodGet, "/api/v1/sessions?state=in_progress,COMPLETED", h.token(t, vendorID, "vendor"), "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = h.do(t, http.MethodGet, "/api/v1/sessions?state=RECORDING", h.token(t, vendorID, "vendor"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = h.do(t, http.MethodGet, "/api/v1/sessions?vendor_id="+uuid.NewString(), h.token(t, vendorID, "vendor"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ListEvents(t *testing.T) {
	t.Run("vendor is scoped to own events", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()

		h.events.EXPECT().
			ListEvents(mock.Anything, mock.MatchedBy(func(f entity.EventFilter) bool {
				return f.VendorID != nil && *f.VendorID == vendorID && f.Limit == 100
			})).
			Return([]*entity.ProximityEvent{}, nil).
			Once()

		rec, _ := h.do(t, http.MethodGet, "/api/v1/events", h.token(t, vendorID, "vendor"), "")
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec, _ = h.do(t, http.MethodGet, "/api/v1/events?vendor_id="+uuid.NewString(), h.token(t, vendorID, "vendor"), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager must narrow the query", func(t *testing.T) {
		h := newAPIHarness(t)

		rec, _ := h.do(t, http.MethodGet, "/api/v1/events", h.token(t, uuid.New(), "manager"), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad filters", func(t *testing.T) {
		h := newAPIHarness(t)
		token := h.token(t, uuid.New(), "vendor")

		for _, query := range []string{"limit=0", "limit=1001", "since=yesterday", "type=teleported", "session_id=nope"} {
			rec, env := h.do(t, http.MethodGet, "/api/v1/events?"+query, token, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
			require.NotNil(t, env.Error, query)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, query)
		}
	})
}

func TestRouter_ConfigsRequireVendor(t *testing.T) {
	h := newAPIHarness(t)

	rec, _ := h.do(t, http.MethodGet, "/api/v1/configs", h.token(t, uuid.New(), "manager"), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Devices(t *testing.T) {
	t.Run("register normalizes platform", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()
		h.devices.EXPECT().
			RegisterDevice(mock.Anything, vendorID, &usecase.DeviceInfo{FCMToken: "tok-1", DeviceID: "pixel-7", Platform: "android"}).
			Return(&entity.VendorDevice{ID: uuid.New(), VendorID: vendorID, DeviceID: "pixel-7", Platform: "android", IsActive: true}, nil).
			Once()

		rec, _ := h.do(t, http.MethodPost, "/api/v1/devices", h.token(t, vendorID, "vendor"),
			`{"fcm_token":" tok-1 ","device_id":"pixel-7","platform":"Android"}`)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("unknown platform", func(t *testing.T) {
		h := newAPIHarness(t)

		rec, env := h.do(t, http.MethodPost, "/api/v1/devices", h.token(t, uuid.New(), "vendor"),
			`{"fcm_token":"tok-1","device_id":"pixel-7","platform":"symbian"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("deactivate another vendor's device", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()
		deviceID := uuid.New()
		h.devices.EXPECT().
			DeactivateDevice(mock.Anything, vendorID, deviceID).
			Return(domainerrors.ErrForbidden.WithDetails("device belongs to another vendor")).
			Once()

		rec, _ := h.do(t, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), h.token(t, vendorID, "vendor"), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		h := newAPIHarness(t)
		vendorID := uuid.New()
		deviceID := uuid.New()
		h.devices.EXPECT().DeactivateDevice(mock.Anything, vendorID, deviceID).Return(nil).Once()

		rec, env := h.do(t, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), h.token(t, vendorID, "vendor"), "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out handler.DeactivatedDevice
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, deviceID, out.ID)
		assert.True(t, out.Deactivated)
	})
}
