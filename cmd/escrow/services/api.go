package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/rampp2p/escrow/config"
	apiHandler "github.com/rampp2p/escrow/internal/api/handler"
	escrowLogger "github.com/rampp2p/escrow/internal/logger"
)

func StartAPIServer(logger *slog.Logger, escrowConfig *config.EscrowConfig) (func(), error) {
	logger = logger.With(slog.String("service", "api"))
	logger.Info("Starting")

	eng, err := newEngine(logger, escrowConfig, "api")
	if err != nil {
		return nil, err
	}

	echoServer := setAPIEcho(logger, escrowConfig.API)

	var handlerStats *apiHandler.Stats
	stopFn := func() {
		logger.Info("Shutting down api")
		disposeAPI(logger, echoServer, eng, handlerStats)
		logger.Info("Shutdown complete")
	}

	var apiOpts []apiHandler.Option
	if escrowConfig.Prometheus.IsEnabled() {
		handlerStats, err = apiHandler.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}

		apiOpts = append(apiOpts, apiHandler.WithStats(handlerStats))
	}

	if eng.tracingEnabled {
		apiOpts = append(apiOpts, apiHandler.WithTracer(eng.attributes...))
	}

	if escrowConfig.API.JWTSecret == "" {
		logger.Warn("no jwt secret configured, callers are identified by the " + apiHandler.WalletHashHeader + " header")
	}

	h := apiHandler.New(logger, eng.orchestrator, eng.appeals, eng.store, apiOpts...)
	h.RegisterRoutes(echoServer, apiHandler.Authenticate(escrowConfig.API.JWTSecret))

	go func() {
		logger.Info("Starting API server", slog.String("address", escrowConfig.API.Address))
		err := echoServer.Start(escrowConfig.API.Address)
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("API http server closed")
				return
			}

			logger.Error("Failed to start API server", slog.String("err", err.Error()))
			return
		}
	}()

	return stopFn, nil
}

func setAPIEcho(logger *slog.Logger, cfg *config.APIConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover returns a middleware which recovers from panics anywhere in the chain
	e.Use(echomiddleware.Recover())

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))

	// Add event ID to the request context
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			//nolint:staticcheck // use string key on purpose
			reqCtx := context.WithValue(req.Context(), escrowLogger.EventIDField, uuid.New().String()) //lint:ignore SA1029 use string key on purpose
			c.SetRequest(req.WithContext(reqCtx))

			return next(c)
		}
	})

	e.Use(otelecho.Middleware("api-server"))

	e.Use(logRequestMiddleware(logger, cfg.RequestExtendedLogs))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "escrow_api",
		HistogramOptsFunc: func(opts prometheus.HistogramOpts) prometheus.HistogramOpts {
			if opts.Name == "request_duration_seconds" {
				opts.Buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30}
			}
			return opts
		},
	}))

	return e
}

func logRequestMiddleware(logger *slog.Logger, extendLog bool) echo.MiddlewareFunc {
	if extendLog {
		return echomiddleware.RequestLoggerWithConfig(extendRequestLogConfig(logger))
	}

	return echomiddleware.RequestLoggerWithConfig(requestLogConfig(logger))
}

func disposeAPI(logger *slog.Logger, echoServer *echo.Echo, eng *engine, stats *apiHandler.Stats) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := echoServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
	}

	if stats != nil {
		stats.UnregisterStats()
	}

	eng.shutdown()
}

func requestLogConfig(logger *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			if v.Error == nil {
				logger.InfoContext(ctx, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				logger.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}

func extendRequestLogConfig(logger *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogError:    true,
		LogHeaders:  []string{apiHandler.WalletHashHeader},
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			if v.Error == nil {
				logger.InfoContext(ctx, "REQUEST",
					slog.String("verb", v.Method),
					slog.String("uri", v.URI),
					slog.Any("headers", v.Headers),
					slog.Int("status", v.Status),
				)
			} else {
				logger.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("verb", v.Method),
					slog.String("uri", v.URI),
					slog.Any("headers", v.Headers),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}
