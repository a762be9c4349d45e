package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/common"
)

// MinTextLayerChars is the "scanned document" signal: a PDF text layer
// under this length additionally goes through OCR and the longer output
// wins.
const MinTextLayerChars = 100

// Extractor drives the provider chain for one file.
type Extractor struct {
	remote Provider // optional tier, nil when no endpoint is configured
	pdf    Provider
	ocr    Provider
	logger *slog.Logger
}

func NewExtractor(remote *RemoteProvider, pdf *PDFTextProvider, ocr *OCRProvider, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{pdf: pdf, ocr: ocr, logger: logger}
	if remote != nil {
		e.remote = remote
	}
	return e
}

// Extract resolves the media type and walks the chain: remote first
// when configured, then the format-appropriate local path. PDF text
// layers under MinTextLayerChars also run OCR, keeping whichever text
// is longer.
func (e *Extractor) Extract(ctx context.Context, req Request) (Result, error) {
	format := constants.MapMediaType(req.MediaType)
	if format == "" {
		return Result{}, common.NewAppError("UnsupportedMediaType",
			fmt.Sprintf("media type %q is not a PDF or image", req.MediaType),
			common.ErrUnsupportedMediaType)
	}

	if e.remote != nil {
		if text, err := e.remote.Extract(ctx, req); err == nil && strings.TrimSpace(text) != "" {
			e.logger.Debug("extract.remote.ok", "file", req.FileName, "bytes", len(text))
			return Result{Text: text, Method: "remote", Format: format}, nil
		} else if err != nil {
			e.logger.Debug("extract.remote.fallthrough", "file", req.FileName, "error", err)
		}
	}

	if format == constants.PDF {
		return e.extractPDF(ctx, req)
	}
	return e.extractImage(ctx, req)
}

func (e *Extractor) extractPDF(ctx context.Context, req Request) (Result, error) {
	text, layerErr := e.pdf.Extract(ctx, req)
	text = strings.TrimSpace(text)
	if layerErr != nil {
		e.logger.Warn("extract.pdftext.failed", "file", req.FileName, "error", layerErr)
	}

	method := "pdf-text"
	if len(text) < MinTextLayerChars {
		ocrText, ocrErr := e.ocr.Extract(ctx, req)
		switch {
		case ocrErr == nil:
			if len(ocrText) > len(text) {
				text, method = ocrText, "pdf-ocr"
			}
		case errors.Is(ocrErr, common.ErrOCRInit):
			return Result{}, ocrErr
		default:
			e.logger.Warn("extract.pdfocr.failed", "file", req.FileName, "error", ocrErr)
		}
	}

	if text == "" && layerErr != nil {
		return Result{}, fmt.Errorf("pdf extraction: %w", layerErr)
	}
	return Result{Text: text, Method: method, Format: constants.PDF}, nil
}

func (e *Extractor) extractImage(ctx context.Context, req Request) (Result, error) {
	text, err := e.ocr.Extract(ctx, req)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Method: "image-ocr", Format: constants.IMAGE}, nil
}
