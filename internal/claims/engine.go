// Package claims decides reimbursement admissibility for billed items
// by cross-referencing them against prescribed items under policy rules.
package claims

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
	"github.com/shivanirao5/Medical-claim/internal/parser"
)

// Config carries the policy constants. The similarity weights and
// thresholds are tuned values carried over from the matching heuristics
// as-is; treat them as policy, not derived quantities.
type Config struct {
	ConsultationCap    float64
	MedicineThreshold  float64
	TestThreshold      float64
	SubstringWeight    float64
	FuzzyWeight        float64
	FuzzyCutoff        float64
}

// DefaultConfig is the production policy.
func DefaultConfig() Config {
	return Config{
		ConsultationCap:   300,
		MedicineThreshold: 0.4,
		TestThreshold:     0.3,
		SubstringWeight:   0.7,
		FuzzyWeight:       0.6,
		FuzzyCutoff:       0.8,
	}
}

// consultation/fee-type items bypass prescription matching entirely.
var consultationPattern = regexp.MustCompile(`(?i)consult|consultation|visit|doctor|fee|appointment|consulting`)

type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ConsultationCap <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// CompareAndAnalyze produces one AnalysisItem per BillItem, in input
// order, with stable per-run sequence IDs. Items for non-admissible
// relations or unmatched bills carry zero approved and reimbursement
// amounts.
func (e *Engine) CompareAndAnalyze(bills []entity.BillItem, prescriptions []entity.PrescriptionItem, info entity.PatientInfo) []entity.AnalysisItem {
	items := make([]entity.AnalysisItem, 0, len(bills))
	for i, bill := range bills {
		item := entity.AnalysisItem{
			ID:           fmt.Sprintf("item-%d", i+1),
			ItemName:     bill.Name,
			ClaimedPrice: bill.Price,
			Category:     bill.Category,
			Status:       constants.StatusNotAdmissible,
		}
		if e.isAdmissible(bill, prescriptions, info.Relation) {
			item.Status = constants.StatusAdmissible
			item.ApprovedPrice = bill.Price
			if e.isConsultation(bill) && item.ApprovedPrice > e.cfg.ConsultationCap {
				item.ApprovedPrice = e.cfg.ConsultationCap
			}
			item.ReimbursementAmount = item.ApprovedPrice
		}
		e.logger.Debug("claims.analyzed",
			"id", item.ID,
			"name", item.ItemName,
			"status", string(item.Status),
			"claimed", item.ClaimedPrice,
			"approved", item.ApprovedPrice,
		)
		items = append(items, item)
	}
	return items
}

func (e *Engine) isConsultation(bill entity.BillItem) bool {
	return consultationPattern.MatchString(bill.Name) || bill.Category == constants.CategoryProcedure
}

// isAdmissible applies, in order: the relation gate, the consultation
// shortcut, exact normalized-name equality, then the weighted
// word-overlap score against a type-dependent threshold.
func (e *Engine) isAdmissible(bill entity.BillItem, prescriptions []entity.PrescriptionItem, relation constants.Relation) bool {
	if !constants.AdmissibleRelation(relation) {
		return false
	}
	if e.isConsultation(bill) {
		return true
	}

	billNorm := parser.Normalize(bill.Name)
	for _, rx := range prescriptions {
		rxNorm := parser.Normalize(rx.Name)
		if billNorm == rxNorm {
			return true
		}
		threshold := e.cfg.TestThreshold
		if rx.Type == constants.PrescriptionMedicine {
			threshold = e.cfg.MedicineThreshold
		}
		if e.overlapScore(billNorm, rxNorm) >= threshold {
			return true
		}
	}
	return false
}
