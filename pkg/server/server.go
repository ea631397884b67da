// Package server generates the gallery page per request over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/kerbaras/gallery/pkg/metrics"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server serves the gallery page, a health check and metrics.
type Server struct {
	generator *gallery.Generator
	metrics   *metrics.Manager
	logger    *zap.Logger
	page      func(*data.Content) templ.Component
}

func New(generator *gallery.Generator, m *metrics.Manager, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewManager()
	}
	return &Server{generator: generator, metrics: m, logger: logger, page: gallery.Page}
}

// Routes returns the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleGallery)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// handleGallery fetches the listing and renders the page. A fetch failure
// fails the request without any page markup.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	content, err := s.generator.Load(r.Context())
	if err != nil {
		http.Error(w, "failed to generate page", http.StatusInternalServerError)
		return
	}

	// templ.Handler buffers the page, so a render error is caught before
	// anything reaches the client.
	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.page(content).Render(ctx, w); err != nil {
			return err
		}
		s.metrics.PageRendered(len(content.Results))
		return nil
	})
	templ.Handler(page,
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.logger.Error("Page render failed", zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "failed to render page", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Serving gallery", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
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
		<-errCh
		return nil
	}
}
