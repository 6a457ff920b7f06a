package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ReviewLottery_Go/internal/campaign"
	"github.com/osse101/ReviewLottery_Go/internal/claim"
	"github.com/osse101/ReviewLottery_Go/internal/database"
	"github.com/osse101/ReviewLottery_Go/internal/handler"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/metrics"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
)

// Config holds the HTTP-facing settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Detector       DetectorConfig
}

// Services bundles the domain services the routes call into
type Services struct {
	Participation participation.Service
	Claim         claim.Service
	Campaign      campaign.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router and the underlying http.Server
func NewServer(cfg Config, dbPool database.Pool, svcs Services) *Server {
	if cfg.Detector == (DetectorConfig{}) {
		cfg.Detector = DefaultDetectorConfig()
	}
	r := NewRouter(cfg, dbPool, svcs)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		router: r,
	}
}

// NewRouter wires middleware and routes. Chi runs middleware outermost first.
func NewRouter(cfg Config, dbPool database.Pool, svcs Services) chi.Router {
	detector := NewSuspiciousActivityDetector(cfg.Detector)

	lotteryHandler := handler.NewLotteryHandler(svcs.Participation)
	claimHandler := handler.NewClaimHandler(svcs.Claim)
	campaignHandler := handler.NewCampaignHandler(svcs.Campaign)

	r := chi.NewRouter()
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Participant-facing
		r.Post("/lottery/spin", lotteryHandler.Spin)
		r.Route("/public/campaigns/{id}", func(r chi.Router) {
			r.Get("/", campaignHandler.GetPublic)
			r.Post("/scan", campaignHandler.RecordScan)
		})
		r.Post("/claims/retrieve", claimHandler.Retrieve)
		r.Get("/claims/{code}", claimHandler.Lookup)

		// Staff
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
			r.Post("/claims/redeem", claimHandler.Redeem)
			r.Post("/claims/anonymize", claimHandler.Anonymize)
			r.Get("/prize-pools/{id}/summary", campaignHandler.GetPoolSummary)
			r.Get("/stats", campaignHandler.GetStats)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags the request with an ID and logs start and completion.
// Secret headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
