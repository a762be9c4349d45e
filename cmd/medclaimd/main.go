package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shivanirao5/Medical-claim/internal/claims"
	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/export"
	"github.com/shivanirao5/Medical-claim/internal/extract"
	"github.com/shivanirao5/Medical-claim/internal/pipeline"
	"github.com/shivanirao5/Medical-claim/internal/server"
	"github.com/shivanirao5/Medical-claim/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// OCR engine is the one process-wide resource; released on shutdown.
	engine := extract.NewEngine(cfg.OCR.Tesseract, nil)
	defer func() { _ = engine.Close() }()

	var remote *extract.RemoteProvider
	if cfg.Remote.Endpoint != "" || cfg.Remote.HandwritingEndpoint != "" {
		remote = extract.NewRemoteProvider(cfg.Remote.Endpoint, cfg.Remote.HandwritingEndpoint, cfg.Remote.Timeout)
	}
	pdf := extract.NewPDFTextProvider(cfg.OCR.Pdftotext, cfg.OCR.MaxPDFPages, nil)
	ocr := extract.NewOCRProvider(engine, extract.OCRConfig{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
		MaxPages:    cfg.OCR.MaxPDFPages,
	}, nil)
	extractor := extract.NewExtractor(remote, pdf, ocr, logger)

	processor := pipeline.NewProcessor(extractor, claims.NewEngine(claims.DefaultConfig(), logger), logger)

	snapshots, err := store.Open(cfg.Storage.Path, logger)
	if err != nil {
		logger.Error("open snapshot store", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	defer func() { _ = snapshots.Close() }()

	exporter, err := export.NewService(logger)
	if err != nil {
		logger.Error("init export service", "error", err)
		os.Exit(1)
	}

	srv := server.New(processor, snapshots, exporter, cfg.Server.MaxUploadBytes, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Routes(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
