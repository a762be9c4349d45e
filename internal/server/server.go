// Package server exposes the analysis pipeline over HTTP for the
// single-tenant review UI.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/export"
	"github.com/shivanirao5/Medical-claim/internal/pipeline"
	"github.com/shivanirao5/Medical-claim/internal/store"
)

type Server struct {
	processor      *pipeline.Processor
	store          *store.Store
	exporter       *export.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

func New(proc *pipeline.Processor, st *store.Store, exp *export.Service, maxUploadBytes int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 25 << 20
	}
	return &Server{
		processor:      proc,
		store:          st,
		exporter:       exp,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes wires the API surface.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/runs", s.handleListRuns)
	mux.HandleFunc("GET /api/runs/{id}", s.handleGetRun)
	mux.HandleFunc("GET /api/runs/{id}/export", s.handleExport)
	mux.HandleFunc("PATCH /api/runs/{id}/items/{itemID}/approved-price", s.handleUpdateApprovedPrice)
	mux.HandleFunc("PATCH /api/runs/{id}/items/{itemID}/reimbursement", s.handleUpdateReimbursement)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := common.ErrorKind(err)
	status := http.StatusInternalServerError
	switch kind {
	case "UnsupportedMediaType", "InvalidInput":
		status = http.StatusBadRequest
	case "NotFound":
		status = http.StatusNotFound
	case "NoReadableText", "NoBillItemsFound":
		status = http.StatusUnprocessableEntity
	case "OcrInitError":
		status = http.StatusServiceUnavailable
	}
	s.logger.Warn("request failed", "kind", kind, "error", err)
	writeJSON(w, status, errorBody{Error: kind, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
