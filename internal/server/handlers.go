package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/manifest"
	"github.com/soleren/mandala/pkg/pipeline"
	"github.com/soleren/mandala/pkg/store"
)

// maxManifestSize bounds uploaded manifest bodies.
const maxManifestSize = 1 << 20

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatDOT: "text/vnd.graphviz",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Error("write health response", "error", err)
	}
}

// handleRender renders a manifest posted as the request body.
// Query parameters view and format select the output; both are optional.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxManifestSize))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read request body"))
		return
	}
	s.render(w, r, raw)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, raw []byte) {
	m, err := manifest.Load(bytes.NewReader(raw))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Manifest: m,
		View:     r.URL.Query().Get("view"),
		Logger:   s.logger,
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Artifacts[format]); err != nil {
		s.logger.Error("write render response", "error", err)
	}
}

type saveWheelRequest struct {
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Manifest string `json:"manifest"`
}

func (s *Server) handleSaveWheel(w http.ResponseWriter, r *http.Request) {
	var req saveWheelRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxManifestSize)).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode request"))
		return
	}
	if req.Name == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidManifest, "wheel name is required"))
		return
	}

	// Reject manifests that would fail at render time.
	if _, err := manifest.Load(bytes.NewReader([]byte(req.Manifest))); err != nil {
		s.writeError(w, err)
		return
	}

	wheel := store.New(req.Name, req.Owner, []byte(req.Manifest))
	if err := s.cfg.Store.Save(r.Context(), wheel); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, wheel)
}

func (s *Server) handleListWheels(w http.ResponseWriter, r *http.Request) {
	wheels, err := s.cfg.Store.List(r.Context(), r.URL.Query().Get("owner"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if wheels == nil {
		wheels = []*store.Wheel{}
	}
	s.writeJSON(w, http.StatusOK, wheels)
}

func (s *Server) handleGetWheel(w http.ResponseWriter, r *http.Request) {
	wheel, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, wheel)
}

func (s *Server) handleRenderWheel(w http.ResponseWriter, r *http.Request) {
	wheel, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.render(w, r, wheel.Manifest)
}

func (s *Server) handleDeleteWheel(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidRatio, errors.ErrCodeInvalidRing,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidGate:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeWheelNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{
		Code:  string(code),
		Error: errors.UserMessage(err),
	})
}
