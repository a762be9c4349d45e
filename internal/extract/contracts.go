// Package extract turns uploaded file bytes into best-effort plain
// text. Extraction is organized as a prioritized provider chain: a
// remote endpoint when configured, then the PDF text layer, then local
// OCR; each tier is attempted in order and any failure or empty output
// falls through to the next.
package extract

import (
	"context"

	"github.com/shivanirao5/Medical-claim/constants"
)

// Request is one file to extract.
type Request struct {
	Data      []byte
	MediaType string
	FileName  string
	// Enhanced selects the handwriting-tuned remote endpoint when one is
	// configured. It never changes local extraction behavior.
	Enhanced bool
}

// Result is the extraction outcome for one file.
type Result struct {
	Text   string
	Method string // "remote" | "pdf-text" | "pdf-ocr" | "image-ocr"
	Format constants.FileFormat
}

// Provider is one tier of the extraction chain. Returning an error or
// empty text means "this tier contributed nothing, try the next".
type Provider interface {
	Name() string
	Extract(ctx context.Context, req Request) (string, error)
}

// TextExtractor is what the pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, req Request) (Result, error)
}
