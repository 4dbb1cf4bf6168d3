// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router/handler"
	"proximity/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ZoneHandler    *handler.ZoneHandler
	ConfigHandler  *handler.ConfigHandler
	SessionHandler *handler.SessionHandler
	EventHandler   *handler.EventHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	zoneHandler    *handler.ZoneHandler
	configHandler  *handler.ConfigHandler
	sessionHandler *handler.SessionHandler
	eventHandler   *handler.EventHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		zoneHandler:    params.ZoneHandler,
		configHandler:  params.ConfigHandler,
		sessionHandler: params.SessionHandler,
		eventHandler:   params.EventHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	requireVendor := r.authMiddleware.RequireRole(entity.RoleVendor)
	requireManager := r.authMiddleware.RequireRole(entity.RoleManager)

	// Zones are readable by everyone, writable by managers
	zonesGroup := apiV1.Group("/zones")
	{
		zonesGroup.GET("", r.zoneHandler.ListZones)
		zonesGroup.GET("/:id", r.zoneHandler.GetZone)
		zonesGroup.POST("", r.zoneHandler.CreateZone, requireManager)
		zonesGroup.PUT("/:id", r.zoneHandler.UpdateZone, requireManager)
		zonesGroup.DELETE("/:id", r.zoneHandler.DeleteZone, requireManager)
	}

	configsGroup := apiV1.Group("/configs")
	configsGroup.Use(requireVendor)
	{
		configsGroup.GET("", r.configHandler.ListConfigs)
		configsGroup.PUT("", r.configHandler.UpsertConfig)
		configsGroup.GET("/resolve", r.configHandler.ResolveConfig)
		configsGroup.DELETE("/:id", r.configHandler.DeleteConfig)
	}

	// Session reads are shared with managers; lifecycle changes are the vendor's own
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.GET("", r.sessionHandler.ListSessions)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.GET("/active", r.sessionHandler.GetActiveSession, requireVendor)
		sessionsGroup.POST("", r.sessionHandler.StartSession, requireVendor)
		sessionsGroup.POST("/:id/confirm", r.sessionHandler.ConfirmSession, requireVendor)
		sessionsGroup.POST("/:id/decline", r.sessionHandler.DeclineSession, requireVendor)
		sessionsGroup.POST("/:id/finish", r.sessionHandler.FinishSession, requireVendor)
		sessionsGroup.POST("/:id/recording", r.sessionHandler.LinkRecording, requireVendor)
	}

	apiV1.GET("/events", r.eventHandler.ListEvents)

	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(requireVendor)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetVendorDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
