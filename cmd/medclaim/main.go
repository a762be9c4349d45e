// medclaim is the command-line companion to medclaimd: analyze local
// files, list saved runs, and export reports without the HTTP layer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/claims"
	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/entity"
	"github.com/shivanirao5/Medical-claim/internal/export"
	"github.com/shivanirao5/Medical-claim/internal/extract"
	"github.com/shivanirao5/Medical-claim/internal/pipeline"
	"github.com/shivanirao5/Medical-claim/internal/store"

	"github.com/google/uuid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "medclaim",
		Short:        "Analyze medical bills and prescriptions for reimbursement admissibility",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		},
	}
	root.AddCommand(newAnalyzeCmd(), newRunsCmd(), newExportCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var (
		enhanced bool
		save     bool
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "analyze <file> [file...]",
		Short: "Run the document pipeline over local bill/prescription files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			logger := slog.Default()

			engine := extract.NewEngine(cfg.OCR.Tesseract, nil)
			defer func() { _ = engine.Close() }()

			var remote *extract.RemoteProvider
			if cfg.Remote.Endpoint != "" || cfg.Remote.HandwritingEndpoint != "" {
				remote = extract.NewRemoteProvider(cfg.Remote.Endpoint, cfg.Remote.HandwritingEndpoint, cfg.Remote.Timeout)
			}
			extractor := extract.NewExtractor(
				remote,
				extract.NewPDFTextProvider(cfg.OCR.Pdftotext, cfg.OCR.MaxPDFPages, nil),
				extract.NewOCRProvider(engine, extract.OCRConfig{
					Tesseract:   cfg.OCR.Tesseract,
					Lang:        cfg.OCR.TesseractLang,
					TessdataDir: cfg.OCR.TessdataDir,
					MaxPages:    cfg.OCR.MaxPDFPages,
				}, nil),
				logger,
			)
			processor := pipeline.NewProcessor(extractor, claims.NewEngine(claims.DefaultConfig(), logger), logger)

			files := make([]pipeline.InputFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				files = append(files, pipeline.InputFile{
					Data:      data,
					MediaType: mediaTypeForPath(path),
					FileName:  filepath.Base(path),
				})
			}

			result, err := processor.Run(cmd.Context(), files, pipeline.Options{Enhanced: enhanced})
			if err != nil {
				return err
			}
			printSummary(cmd, result)

			if save {
				snapshots, err := store.Open(cfg.Storage.Path, logger)
				if err != nil {
					return err
				}
				defer func() { _ = snapshots.Close() }()
				if err := snapshots.Save(cmd.Context(), result); err != nil {
					return err
				}
				cmd.Printf("saved run %s\n", result.RunID)
			}
			if outPath != "" {
				return writeReport(result, outPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&enhanced, "enhanced", false, "use the handwriting-tuned remote OCR endpoint")
	cmd.Flags().BoolVar(&save, "save", true, "persist the run to the snapshot store")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write a report (.xlsx or .json) to this path")
	return cmd
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List saved analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := common.LoadConfig()
			snapshots, err := store.Open(cfg.Storage.Path, slog.Default())
			if err != nil {
				return err
			}
			defer func() { _ = snapshots.Close() }()

			runs, err := snapshots.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range runs {
				cmd.Printf("%s  %s  %-30s  %d items\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.PatientName, r.ItemCount)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <run-id>",
		Short: "Export a saved run as an XLSX or JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("run id must be a UUID: %w", err)
			}
			cfg := common.LoadConfig()
			snapshots, err := store.Open(cfg.Storage.Path, slog.Default())
			if err != nil {
				return err
			}
			defer func() { _ = snapshots.Close() }()

			result, err := snapshots.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("claim-%s.xlsx", id)
			}
			return writeReport(result, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (.xlsx or .json)")
	return cmd
}

func writeReport(result *entity.AnalysisResult, path string) error {
	exporter, err := export.NewService(slog.Default())
	if err != nil {
		return err
	}
	var data []byte
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "json":
		data, err = exporter.JSON(result)
	default:
		data, err = exporter.XLSX(result)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printSummary(cmd *cobra.Command, result *entity.AnalysisResult) {
	cmd.Printf("Patient: %s (%s)\n", result.Patient.Name, result.Patient.Relation)
	var claimed, approved float64
	for _, item := range result.Items {
		cmd.Printf("  %-8s %-40s %10.2f  %-15s %10.2f\n",
			item.ID, item.ItemName, item.ClaimedPrice, item.Status, item.ApprovedPrice)
		claimed += item.ClaimedPrice
		approved += item.ApprovedPrice
	}
	cmd.Printf("Claimed total: %.2f  Approved total: %.2f\n", claimed, approved)
}

func mediaTypeForPath(path string) string {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "bmp":
		return "image/bmp"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}

