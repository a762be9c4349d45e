package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/entity"
	"github.com/shivanirao5/Medical-claim/internal/pipeline"
)

// handleAnalyze accepts a multipart upload under the "files" field and
// runs one pipeline pass over the batch. The optional "enhanced" field
// selects the handwriting-tuned remote OCR tier.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.writeError(w, common.NewAppError("InvalidInput", "invalid multipart upload", common.ErrInvalidInput))
		return
	}
	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		s.writeError(w, common.NewAppError("InvalidInput", "at least one file is required", common.ErrInvalidInput))
		return
	}

	files := make([]pipeline.InputFile, 0, len(parts))
	for _, hdr := range parts {
		data, err := readPart(hdr)
		if err != nil {
			s.writeError(w, fmt.Errorf("read upload %q: %w", hdr.Filename, err))
			return
		}
		files = append(files, pipeline.InputFile{
			Data:      data,
			MediaType: partMediaType(hdr),
			FileName:  hdr.Filename,
		})
	}

	opts := pipeline.Options{Enhanced: r.FormValue("enhanced") == "true"}
	result, err := s.processor.Run(r.Context(), files, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), result); err != nil {
		s.writeError(w, err)
		return
	}

	payload, err := s.exporter.JSON(result)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := runID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := runID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "xlsx":
		data, err := s.exporter.XLSX(result)
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=claim-%s.xlsx", id))
		_, _ = w.Write(data)
	case "json":
		data, err := s.exporter.JSON(result)
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	default:
		s.writeError(w, common.NewAppError("InvalidInput",
			fmt.Sprintf("unknown export format %q", format), common.ErrInvalidInput))
	}
}

type amountBody struct {
	Value *float64 `json:"value"`
}

// Review mutations. Invalid amounts are silently ignored by the
// pipeline layer; the handler still answers with the (possibly
// unchanged) run so the UI can re-render.
func (s *Server) handleUpdateApprovedPrice(w http.ResponseWriter, r *http.Request) {
	s.applyReviewEdit(w, r, pipeline.UpdateApprovedPrice)
}

func (s *Server) handleUpdateReimbursement(w http.ResponseWriter, r *http.Request) {
	s.applyReviewEdit(w, r, pipeline.UpdateReimbursement)
}

func (s *Server) applyReviewEdit(w http.ResponseWriter, r *http.Request, apply func(res *entity.AnalysisResult, id string, v float64)) {
	id, err := runID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	itemID := r.PathValue("itemID")

	var body amountBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		s.writeError(w, common.NewAppError("InvalidInput", "body must carry a numeric value", common.ErrInvalidInput))
		return
	}

	result, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	apply(result, itemID, *body.Value)
	if err := s.store.Save(r.Context(), result); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func runID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, common.NewAppError("InvalidInput", "run id must be a UUID", common.ErrInvalidInput)
	}
	return id, nil
}

func readPart(hdr *multipart.FileHeader) ([]byte, error) {
	f, err := hdr.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// partMediaType prefers the declared Content-Type and falls back to the
// file extension.
func partMediaType(hdr *multipart.FileHeader) string {
	if ct := hdr.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(hdr.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return hdr.Header.Get("Content-Type")
	}
}
