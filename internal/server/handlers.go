package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"codeberg.org/snonux/kirlot/internal"
	"codeberg.org/snonux/kirlot/internal/convert"
	"codeberg.org/snonux/kirlot/internal/logging"
	"codeberg.org/snonux/kirlot/internal/translit"
)

type convertRequest struct {
	Text string `json:"text"`
	// MaxWords overrides the configured limit when positive.
	MaxWords int `json:"max_words,omitempty"`
}

type convertResponse struct {
	Text      string             `json:"text"`
	Direction translit.Direction `json:"direction"`
	Words     int                `json:"words"`
	Truncated bool               `json:"truncated"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   internal.Version,
		Uptime:    now.Sub(s.started).Round(time.Second).String(),
		Timestamp: now.UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dir, err := translit.ParseDirection(chi.URLParam(r, "direction"))
	if err != nil {
		writeError(ctx, w, newAPIError("invalid_direction", err.Error(), http.StatusBadRequest))
		return
	}

	var req convertRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, newAPIError("body_too_large", "request body too large", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(ctx, w, newAPIError("invalid_json", "request body must be a JSON object with a text field", http.StatusBadRequest))
		return
	}

	maxWords := s.cfg.MaxWords
	if req.MaxWords > 0 {
		maxWords = req.MaxWords
	}

	res, err := s.service.Convert(ctx, convert.Request{Text: req.Text, Direction: dir, MaxWords: maxWords})
	if err != nil {
		logging.FromContext(ctx).Error("conversion failed", zap.Error(err))
		writeError(ctx, w, newAPIError("conversion_failed", "conversion failed", http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Text:      res.Text,
		Direction: res.Direction,
		Words:     res.Words,
		Truncated: res.Truncated,
	})
}
