package monitor

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"proximity/config"
	"proximity/internal/delivery"
	"proximity/internal/delivery/middleware"
	"proximity/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type monitorServer struct {
	port    int
	logger  *slog.Logger
	server  *echo.Echo
	monitor *Monitor
}

// ServerParams holds dependencies for the monitor server
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Monitor *Monitor
}

// NewServer ties the monitor to the app lifecycle and exposes its health endpoints
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	srv := &monitorServer{
		port:    params.Cfg.Monitor.HTTPPort,
		logger:  params.Logger,
		server:  e,
		monitor: params.Monitor,
	}
	if srv.port == 0 {
		srv.port = params.Cfg.HTTP.Port
	}

	e.GET("/health", srv.health)
	e.GET("/status", srv.status)

	params.Lc.Append(fx.Hook{
		OnStart: params.Monitor.Start,
		OnStop:  srv.stop,
	})

	return srv, nil
}

func (s *monitorServer) health(c echo.Context) error {
	status := s.monitor.Status(c.Request().Context())
	if !status.Running {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "stopped"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *monitorServer) status(c echo.Context) error {
	return c.JSON(http.StatusOK, s.monitor.Status(c.Request().Context()))
}

// Serve starts the monitor HTTP server
func (s *monitorServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Monitor HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop shuts down the HTTP server, then the monitor
func (s *monitorServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Monitor HTTP server")
	serverErr := s.server.Shutdown(shutdownCtx)

	if err := s.monitor.Stop(shutdownCtx); err != nil {
		return err
	}

	return errors.WithStack(serverErr)
}
