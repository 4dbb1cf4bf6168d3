package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"proximity/config"
	"proximity/internal/delivery"
	apimiddleware "proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router"
	"proximity/internal/delivery/api/validator"
	"proximity/internal/delivery/middleware"
	"proximity/internal/domain/lifecycle"
	"proximity/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ErrorHandler *apimiddleware.ErrorMiddleware
	RouterParams router.RouterParams
}

// NewServer builds the proximity API server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho wires middleware, the error handler and the routes.
func newEcho(params ServerParams) *echo.Echo {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// Order matters: panics are recovered first and every log line carries the request ID.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	corsCfg := echomiddleware.DefaultCORSConfig
	if len(httpCfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = httpCfg.AllowedOrigins
	}
	corsCfg.ExposeHeaders = []string{echo.HeaderXRequestID}
	e.Use(echomiddleware.CORSWithConfig(corsCfg))

	e.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))

	e.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting proximity API server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.server.Server.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down proximity API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
