package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"swiftkit/internal/core"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger core.Logger, metrics *Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())

		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed,
		)
	})
}

type Server struct {
	httpServer *http.Server
	handler    Handler
	logger     core.Logger
}

func NewServer(
	paymentService PaymentService,
	logger core.Logger,
	config Config,
) *Server {
	metrics := NewMetrics()
	handler := NewHandler(paymentService, logger, metrics)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      NewRouter(handler, logger, metrics),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		logger:     logger,
	}
}

func NewRouter(handler Handler, logger core.Logger, metrics *Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /bic/validate", handler.PostValidateBIC)
	mux.HandleFunc("POST /iban/validate", handler.PostValidateIBAN)
	mux.HandleFunc("POST /iban/generate", handler.PostGenerateIBAN)
	mux.HandleFunc("POST /identifiers/validate", handler.PostValidateIdentifiers)
	mux.HandleFunc("POST /messages/pain001", handler.PostPain001)
	mux.HandleFunc("POST /messages/mt103", handler.PostMT103)
	mux.Handle("GET /metrics", metrics.Handler())

	return loggingMiddleware(logger, metrics, mux)
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
