// Package pipeline orchestrates one analysis run: per-file text
// extraction, item/patient/structure parsing, aggregation and the
// admissibility decision.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shivanirao5/Medical-claim/internal/claims"
	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/document"
	"github.com/shivanirao5/Medical-claim/internal/entity"
	"github.com/shivanirao5/Medical-claim/internal/extract"
	"github.com/shivanirao5/Medical-claim/internal/parser"
	"github.com/shivanirao5/Medical-claim/internal/patient"
)

// usableTextChars is the floor under which a file's text counts as
// unreadable.
const usableTextChars = 5

// InputFile is one uploaded document.
type InputFile struct {
	Data      []byte
	MediaType string
	FileName  string
}

// Options tune a single run.
type Options struct {
	// Enhanced routes extraction through the handwriting-tuned remote
	// endpoint when one is configured. Parsing is unaffected.
	Enhanced bool
}

// Processor coordinates the document pipeline. One run is strictly
// sequential file by file; aggregation needs every per-file result
// before admissibility can be decided.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Engine    *claims.Engine
}

func NewProcessor(tx extract.TextExtractor, engine *claims.Engine, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: tx, Engine: engine}
}

// Run processes the ordered file list and returns the aggregated
// analysis. Per-file extraction failures are logged and the file
// contributes nothing; the run fails terminally only on an unsupported
// media type, an OCR engine that cannot initialize, a batch with no
// readable text, or readable text with no bill items at all.
func (p *Processor) Run(ctx context.Context, files []InputFile, opts Options) (*entity.AnalysisResult, error) {
	var (
		bills         []entity.BillItem
		prescriptions []entity.PrescriptionItem
		documents     []entity.StructuredDocument
		info          = entity.NewPatientInfo()
		readable      = 0
	)

	for _, f := range files {
		res, err := p.Extractor.Extract(ctx, extract.Request{
			Data:      f.Data,
			MediaType: f.MediaType,
			FileName:  f.FileName,
			Enhanced:  opts.Enhanced,
		})
		if err != nil {
			if errors.Is(err, common.ErrUnsupportedMediaType) || errors.Is(err, common.ErrOCRInit) {
				return nil, err
			}
			p.Logger.Warn("pipeline.extract.failed", "file", f.FileName, "error", err)
			continue
		}

		text := res.Text
		if len(strings.TrimSpace(text)) < usableTextChars {
			p.Logger.Warn("pipeline.extract.empty", "file", f.FileName, "method", res.Method)
			continue
		}
		readable++

		fileBills := parser.ParseBillText(text)
		fileRx := parser.ParsePrescriptionText(text)
		bills = append(bills, fileBills...)
		prescriptions = append(prescriptions, fileRx...)
		info = patient.Merge(info, patient.Extract(text))
		documents = append(documents, document.Extract(text, f.FileName))

		p.Logger.Info("pipeline.file.ok",
			"file", f.FileName,
			"method", res.Method,
			"bill_items", len(fileBills),
			"prescription_items", len(fileRx),
		)
	}

	if readable == 0 {
		return nil, common.NewAppError("NoReadableText",
			"no readable text could be extracted from any file", common.ErrNoReadableText)
	}
	if len(bills) == 0 {
		return nil, common.NewAppError("NoBillItemsFound",
			"text was readable but no billed items were found", common.ErrNoBillItems)
	}

	result := &entity.AnalysisResult{
		RunID:     uuid.New(),
		Items:     p.Engine.CompareAndAnalyze(bills, prescriptions, info),
		Patient:   info,
		Documents: documents,
		CreatedAt: time.Now().UTC(),
	}
	p.Logger.Info("pipeline.run.ok",
		"run_id", result.RunID,
		"files", len(files),
		"items", len(result.Items),
	)
	return result, nil
}
