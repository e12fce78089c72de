package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/aeadbench/internal/metrics"
)

// RouteRegistrar mounts extra routes on the server, like the stored runs API.
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// ServerOptions configures the browser and abuse protections of the stored runs API.
type ServerOptions struct {
	CORSEnabled             bool
	CORSAllowOrigins        string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
}

// MetricsServer exposes /metrics, /healthz and /campaigns/latest while a campaign runs.
// Nothing it does touches the timed region: the campaign runs on its own locked thread.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a new MetricsServer. provider may be nil, in which case /metrics
// is not registered. latest and every registrar are optional. Registrar routes sit behind
// the rate limiter when opts enables it; /metrics and /healthz never do.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	provider *metrics.Provider,
	namespace string,
	latest *LatestCampaign,
	opts ServerOptions,
	registrars ...RouteRegistrar,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	router.Use(CustomLoggerMiddleware(logger))

	if provider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(provider.MeterProvider(), namespace))
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}
	router.GET("/healthz", healthHandler)
	if latest != nil {
		router.GET("/campaigns/latest", latestCampaignHandler(latest, logger))
	}

	api := router.Group("")
	if opts.RateLimitEnabled {
		api.Use(RateLimitMiddleware(opts.RateLimitRequestsPerSec, opts.RateLimitBurst, logger))
	}
	for _, registrar := range registrars {
		if registrar != nil {
			registrar.RegisterRoutes(api)
		}
	}

	return &MetricsServer{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string {
	return s.server.Addr
}

// Start serves until Shutdown is called. It returns nil after a graceful shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("starting metrics server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
