// Package httpserver exposes the converter over HTTP.
//
// Routes:
//
//	POST /v1/collections  convert the request body into a Postman collection
//	GET  /healthz         liveness probe
//	GET  /metrics         Prometheus metrics
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"

	"github.com/erraggy/oaspostman/parser"
)

// DefaultMaxBodySize is the request body limit used when Config.MaxBodySize is 0.
const DefaultMaxBodySize int64 = 10 << 20

const shutdownTimeout = 10 * time.Second

// Config configures a Server.
type Config struct {
	// MaxBodySize caps the accepted document size in bytes
	MaxBodySize int64
	// BaseURL and APIVersion are used when the request does not set them
	BaseURL    string
	APIVersion string
	// Logger receives request and panic logs; nil means no logging
	Logger parser.Logger
	// Registerer receives the server metrics; a private registry is used when nil
	Registerer prometheus.Registerer
	// Gatherer serves /metrics; it must match Registerer when both are set
	Gatherer prometheus.Gatherer
}

// Server is an http.Handler serving the conversion API.
type Server struct {
	cfg     Config
	log     parser.Logger
	metrics *metrics
	handler http.Handler
}

// New builds a Server and registers its metrics.
func New(cfg Config) (*Server, error) {
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Registerer == nil {
		reg := prometheus.NewRegistry()
		cfg.Registerer = reg
		cfg.Gatherer = reg
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		log:     parser.LoggerOrNop(cfg.Logger),
		metrics: m,
	}

	router := mux.NewRouter()
	router.HandleFunc("/v1/collections", s.handleConvert()).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth()).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	recovery := negroni.NewRecovery()
	recovery.Logger = panicLogger{log: s.log}
	recovery.PrintStack = false

	n := negroni.New(recovery, negroni.HandlerFunc(s.logRequest))
	n.UseHandler(router)
	s.handler = n
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) logRequest(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	ww := negroni.NewResponseWriter(rw)
	next(ww, r)
	s.log.Info("request",
		"method", r.Method,
		"uri", r.RequestURI,
		"status", ww.Status(),
		"bytes", ww.Size(),
		"duration", time.Since(start),
	)
}

// panicLogger routes negroni's recovery output to a parser.Logger.
type panicLogger struct {
	log parser.Logger
}

func (p panicLogger) Println(v ...any) {
	p.log.Error("panic recovered", "detail", v)
}

func (p panicLogger) Printf(format string, v ...any) {
	p.log.Error("panic recovered", "format", format, "args", v)
}
