package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/quietstack/cadschedule/pkg/pipeline"
	"github.com/quietstack/cadschedule/pkg/schederr"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := s.lockContext(r)
	defer cancel()

	result, err := pipeline.RunClean(ctx, s.Store, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.lockContext(r)
	defer cancel()

	result, err := pipeline.RunDuration(ctx, s.Store)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.lockContext(r)
	defer cancel()

	result, err := pipeline.RunSequence(ctx, s.Store)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCritical(w http.ResponseWriter, r *http.Request) {
	var body any
	// An empty body is valid for /critical — it simply contributes no
	// extra activities, per spec.md §6.
	if r.ContentLength != 0 {
		if err := decodeBody(r, &body); err != nil {
			writeError(w, err)
			return
		}
	}

	ctx, cancel := s.lockContext(r)
	defer cancel()

	result, err := pipeline.RunCritical(ctx, s.Store, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func decodeBody(r *http.Request, out *any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return schederr.New(schederr.KindInputShape, "invalid JSON body: %v", err)
	}
	return nil
}
