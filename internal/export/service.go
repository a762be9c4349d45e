// Package export renders completed analysis runs as downloadable
// reports: a schema-validated JSON snapshot, or an XLSX workbook for
// reviewers who live in spreadsheets.
package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/xuri/excelize/v2"

	"github.com/shivanirao5/Medical-claim/internal/entity"
)

//go:embed analysis_schema.json
var analysisSchema string

type Service struct {
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewService(logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analysis_schema.json", strings.NewReader(analysisSchema)); err != nil {
		return nil, fmt.Errorf("register analysis schema: %w", err)
	}
	schema, err := compiler.Compile("analysis_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile analysis schema: %w", err)
	}
	return &Service{schema: schema, logger: logger}, nil
}

// JSON marshals the run and validates it against the embedded schema
// before handing it out.
func (s *Service) JSON(res *entity.AnalysisResult) ([]byte, error) {
	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("analysis snapshot failed schema validation: %w", err)
	}
	return payload, nil
}

var itemHeaders = []string{
	"Item", "Category", "Claimed Price", "Status", "Approved Price", "Reimbursement",
}

// XLSX returns a workbook with the claim summary and per-item decisions.
func (s *Service) XLSX(res *entity.AnalysisResult) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Claim Analysis"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	// patient block
	_ = f.SetCellValue(sheet, "A1", "Patient")
	_ = f.SetCellValue(sheet, "B1", res.Patient.Name)
	_ = f.SetCellValue(sheet, "A2", "Relation")
	_ = f.SetCellValue(sheet, "B2", string(res.Patient.Relation))
	if res.Patient.Age != nil {
		_ = f.SetCellValue(sheet, "A3", "Age")
		_ = f.SetCellValue(sheet, "B3", *res.Patient.Age)
	}
	if res.Patient.Gender != nil {
		_ = f.SetCellValue(sheet, "A4", "Gender")
		_ = f.SetCellValue(sheet, "B4", string(*res.Patient.Gender))
	}

	const headerRow = 6
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheet, cell, h)
	}

	var claimed, approved, reimbursed float64
	for i, item := range res.Items {
		row := headerRow + 1 + i
		values := []any{
			item.ItemName,
			string(item.Category),
			item.ClaimedPrice,
			string(item.Status),
			item.ApprovedPrice,
			item.ReimbursementAmount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		claimed += item.ClaimedPrice
		approved += item.ApprovedPrice
		reimbursed += item.ReimbursementAmount
	}

	totalRow := headerRow + len(res.Items) + 2
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Totals")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), claimed)
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), approved)
	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), reimbursed)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Debug("export.xlsx", "run_id", res.RunID, "items", len(res.Items))
	return buf.Bytes(), nil
}
