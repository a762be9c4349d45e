package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PDFTextProvider reads the embedded text layer page by page via
// pdftotext, capped at maxPages pages.
type PDFTextProvider struct {
	binary   string
	maxPages int
	runner   Runner
}

func NewPDFTextProvider(binary string, maxPages int, runner Runner) *PDFTextProvider {
	if binary == "" {
		binary = "pdftotext"
	}
	if maxPages <= 0 {
		maxPages = 20
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &PDFTextProvider{binary: binary, maxPages: maxPages, runner: runner}
}

func (p *PDFTextProvider) Name() string { return "pdf-text" }

func (p *PDFTextProvider) Extract(ctx context.Context, req Request) (string, error) {
	path, cleanup, err := writeTemp(req.Data, "mc-pdf-*.pdf")
	if err != nil {
		return "", err
	}
	defer cleanup()

	out, stderr, err := p.runner.Run(ctx, p.binary,
		"-f", "1", "-l", fmt.Sprintf("%d", p.maxPages),
		"-layout", "-enc", "UTF-8", "-eol", "unix",
		path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w (%s)", err, truncate(string(stderr), 256))
	}
	// pages arrive form-feed separated; join with newlines
	text := strings.ReplaceAll(string(out), "\f", "\n")
	return strings.TrimSpace(text), nil
}

func writeTemp(data []byte, pattern string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "medclaim-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return filepath.Clean(f.Name()), cleanup, nil
}
