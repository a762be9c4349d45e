package extract

import (
	"context"
	"fmt"
	"sync"

	"github.com/shivanirao5/Medical-claim/internal/common"
)

// Engine is the process-wide OCR engine handle. It is created lazily on
// first use, reused across files, and released only by an explicit
// Close. Ownership is explicit: the extractor receives the handle, it
// never reaches for a global.
type Engine struct {
	binary string
	runner Runner

	mu     sync.Mutex
	ready  bool
	closed bool
}

func NewEngine(binary string, runner Runner) *Engine {
	if binary == "" {
		binary = "tesseract"
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &Engine{binary: binary, runner: runner}
}

// acquire verifies the OCR binary once and keeps the handle warm.
// Initialization failure surfaces as an OcrInitError and is not retried
// within the process lifetime of the handle.
func (e *Engine) acquire(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return common.NewAppError("OcrInitError", "ocr engine already released", common.ErrOCRInit)
	}
	if e.ready {
		return nil
	}
	if _, stderr, err := e.runner.Run(ctx, e.binary, "--version"); err != nil {
		return common.NewAppError("OcrInitError",
			fmt.Sprintf("ocr engine unavailable: %s", truncate(string(stderr), 256)),
			common.ErrOCRInit)
	}
	e.ready = true
	return nil
}

// Close releases the engine. Subsequent OCR attempts fail with
// OcrInitError.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.ready = false
	return nil
}
