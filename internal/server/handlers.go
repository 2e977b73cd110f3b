package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/statebars/pkg/errors"
	"github.com/matzehuels/statebars/pkg/pipeline"
)

// renderIDHeader identifies the pass that produced a chart response.
const renderIDHeader = "X-Render-ID"

// queryOptions reads brushed, width and height from the request.
func queryOptions(r *http.Request, formats ...string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Brushed: q.Get("brushed"),
		Formats: formats,
	}
	var err error
	if opts.Width, err = floatParam(q.Get("width")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "width")
	}
	if opts.Height, err = floatParam(q.Get("height")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "height")
	}
	return opts, nil
}

func floatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// run executes one pass and tags the response with its render ID.
func (s *Server) run(w http.ResponseWriter, r *http.Request, formats ...string) (*pipeline.Result, bool) {
	opts, err := queryOptions(r, formats...)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	id := uuid.NewString()
	opts.Logger = s.Logger.With("render_id", id)

	res, err := s.Runner.Execute(r.Context(), s.Dataset, opts)
	if err != nil {
		s.Logger.Warn("render failed", "render_id", id, "err", err)
		writeError(w, err)
		return nil, false
	}
	w.Header().Set(renderIDHeader, id)
	return res, true
}

func (s *Server) handleChart(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.run(w, r, format)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(res.Artifacts[format])
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"states": len(s.Dataset.States),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), map[string]any{
		"error": errors.UserMessage(err),
		"code":  errors.GetCode(err),
	})
}
