package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shivanirao5/Medical-claim/constants"
)

// DefaultPatientName is used when no name could be extracted.
const DefaultPatientName = "Patient Name Not Found"

// BillItem is one priced line extracted from a billing document.
// Held only for the duration of one pipeline run.
type BillItem struct {
	Name     string                 `json:"name"`
	Price    float64                `json:"price"`
	Category constants.BillCategory `json:"category"`
}

// PrescriptionItem is one medicine/test/procedure named in a prescription.
type PrescriptionItem struct {
	Name string                     `json:"name"`
	Type constants.PrescriptionType `json:"type"`
}

// PatientInfo is the merged per-document-set patient metadata.
// Age and Gender stay nil when nothing recognizable was found.
type PatientInfo struct {
	Name     string             `json:"name"`
	Relation constants.Relation `json:"relation"`
	Age      *int               `json:"age,omitempty"`
	Gender   *constants.Gender  `json:"gender,omitempty"`
}

// NewPatientInfo returns the type-level defaults.
func NewPatientInfo() PatientInfo {
	return PatientInfo{Name: DefaultPatientName, Relation: constants.RelationSelf}
}

// AnalysisItem is the pipeline's final output unit. ApprovedPrice and
// ReimbursementAmount are mutable afterward only through explicit review
// edits, which never re-trigger matching.
type AnalysisItem struct {
	ID                  string                        `json:"id"`
	ItemName            string                        `json:"itemName"`
	ClaimedPrice        float64                       `json:"claimedPrice"`
	Status              constants.AdmissibilityStatus `json:"status"`
	ApprovedPrice       float64                       `json:"approvedPrice"`
	ReimbursementAmount float64                       `json:"reimbursementAmount"`
	Category            constants.BillCategory        `json:"category"`
}

// AnalysisResult is the output tuple handed to the review and export
// collaborators.
type AnalysisResult struct {
	RunID     uuid.UUID            `json:"runId"`
	Items     []AnalysisItem       `json:"analysisResults"`
	Patient   PatientInfo          `json:"patientInfo"`
	Documents []StructuredDocument `json:"structuredContent"`
	CreatedAt time.Time            `json:"createdAt"`
}
