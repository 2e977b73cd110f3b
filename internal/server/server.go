// Package server serves the chart over HTTP.
//
// The index page pairs the chart with a ranked list of states. That list
// plays the sibling view: following a state's link sets the brushed query
// parameter and the chart is redrawn with that state outlined. Every chart
// request runs a fresh pipeline pass on the loaded dataset.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/observability"
	"github.com/matzehuels/statebars/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Server renders charts for a fixed dataset.
type Server struct {
	Dataset *data.Dataset
	Runner  *pipeline.Runner
	Logger  *log.Logger
	Metrics *Metrics

	router chi.Router
}

// New returns a server for ds and installs its metrics as the process-wide
// render and HTTP hooks.
func New(ds *data.Dataset, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}
	s := &Server{
		Dataset: ds,
		Runner:  runner,
		Logger:  logger,
		Metrics: NewMetrics(),
	}
	observability.SetRenderHooks(s.Metrics)
	observability.SetHTTPHooks(s.Metrics)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleIndex)
	r.Get("/chart.svg", s.handleChart(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/chart.json", s.handleChart(pipeline.FormatJSON, "application/json"))
	r.Get("/entries.json", s.handleChart(pipeline.FormatEntries, "application/json"))
	r.Get("/dataset.json", s.handleChart(pipeline.FormatDataset, "application/json"))
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr, "states", len(s.Dataset.States))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
