package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shivanirao5/Medical-claim/constants"
)

// DefaultWhitelist keeps the recognizer on characters that actually
// occur on currency-bearing medical documents.
const DefaultWhitelist = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ₹$.,:;/()%+-= "

// OCRProvider runs tesseract with a currency/medical character
// whitelist, automatic page segmentation and the LSTM engine. PDFs are
// rasterized page by page first.
type OCRProvider struct {
	engine      *Engine
	tesseract   string
	pdftoppm    string
	lang        string
	tessdataDir string
	whitelist   string
	dpi         int
	maxPages    int
	runner      Runner
}

type OCRConfig struct {
	Tesseract   string
	Pdftoppm    string
	Lang        string
	TessdataDir string
	Whitelist   string
	DPI         int
	MaxPages    int
}

func NewOCRProvider(engine *Engine, cfg OCRConfig, runner Runner) *OCRProvider {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.Whitelist == "" {
		cfg.Whitelist = DefaultWhitelist
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 20
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &OCRProvider{
		engine:      engine,
		tesseract:   cfg.Tesseract,
		pdftoppm:    cfg.Pdftoppm,
		lang:        cfg.Lang,
		tessdataDir: cfg.TessdataDir,
		whitelist:   cfg.Whitelist,
		dpi:         cfg.DPI,
		maxPages:    cfg.MaxPages,
		runner:      runner,
	}
}

func (p *OCRProvider) Name() string { return "ocr" }

func (p *OCRProvider) Extract(ctx context.Context, req Request) (string, error) {
	if err := p.engine.acquire(ctx); err != nil {
		return "", err
	}

	path, cleanup, err := writeTemp(req.Data, "mc-ocr-*"+tempExt(req))
	if err != nil {
		return "", err
	}
	defer cleanup()

	var raw string
	if constants.MapMediaType(req.MediaType) == constants.PDF {
		raw, err = p.recognizePDF(ctx, path)
	} else {
		raw, err = p.recognize(ctx, path)
	}
	if err != nil {
		return "", err
	}
	return Postprocess(raw), nil
}

func (p *OCRProvider) recognize(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", p.lang,
		"--psm", "3", // automatic page segmentation
		"--oem", "1", // neural net (LSTM) only
		"-c", "tessedit_char_whitelist=" + p.whitelist,
	}
	if p.tessdataDir != "" {
		args = append(args, "--tessdata-dir", p.tessdataDir)
	}
	out, stderr, err := p.runner.Run(ctx, p.tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(stderr), 256))
	}
	return string(out), nil
}

// recognizePDF rasterizes pages with pdftoppm then recognizes each page.
func (p *OCRProvider) recognizePDF(ctx context.Context, path string) (string, error) {
	prefix := filepath.Join(filepath.Dir(path), "page")
	_, stderr, err := p.runner.Run(ctx, p.pdftoppm,
		"-r", fmt.Sprintf("%d", p.dpi),
		"-l", fmt.Sprintf("%d", p.maxPages),
		"-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(stderr), 256))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) > p.maxPages {
		matches = matches[:p.maxPages]
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := p.recognize(ctx, img)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}
	return b.String(), nil
}

func tempExt(req Request) string {
	if constants.MapMediaType(req.MediaType) == constants.PDF {
		return ".pdf"
	}
	if ext := filepath.Ext(req.FileName); ext != "" {
		return ext
	}
	return ".png"
}
