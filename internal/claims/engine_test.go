package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

func selfPatient() entity.PatientInfo {
	return entity.NewPatientInfo()
}

func TestCompareAndAnalyzeSequentialIDs(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Alpha", Price: 10, Category: constants.CategoryGeneral},
		{Name: "Beta", Price: 20, Category: constants.CategoryGeneral},
		{Name: "Gamma", Price: 30, Category: constants.CategoryGeneral},
	}
	items := e.CompareAndAnalyze(bills, nil, selfPatient())

	require.Len(t, items, 3)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "item-2", items[1].ID)
	assert.Equal(t, "item-3", items[2].ID)
	assert.Equal(t, "Alpha", items[0].ItemName)
}

func TestRelationGate(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Consultation Fee", Price: 200, Category: constants.CategoryGeneral},
		{Name: "Paracetamol 500mg", Price: 25, Category: constants.CategoryMedicine},
	}
	rx := []entity.PrescriptionItem{
		{Name: "Paracetamol 500mg", Type: constants.PrescriptionMedicine},
	}

	sibling := selfPatient()
	sibling.Relation = constants.RelationSibling
	for _, item := range e.CompareAndAnalyze(bills, rx, sibling) {
		assert.Equal(t, constants.StatusNotAdmissible, item.Status)
		assert.Zero(t, item.ApprovedPrice)
		assert.Zero(t, item.ReimbursementAmount)
	}

	// identical inputs with Self are admissible
	for _, item := range e.CompareAndAnalyze(bills, rx, selfPatient()) {
		assert.Equal(t, constants.StatusAdmissible, item.Status)
	}
}

func TestConsultationShortcutAndCap(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)

	tests := []struct {
		name         string
		bill         entity.BillItem
		wantApproved float64
	}{
		{"fee over cap", entity.BillItem{Name: "Doctor Consultation", Price: 500, Category: constants.CategoryGeneral}, 300},
		{"fee under cap", entity.BillItem{Name: "Follow-up Visit", Price: 200, Category: constants.CategoryGeneral}, 200},
		{"fee at cap", entity.BillItem{Name: "Consulting Charges", Price: 300, Category: constants.CategoryGeneral}, 300},
		{"procedure category over cap", entity.BillItem{Name: "Minor Suturing", Price: 450, Category: constants.CategoryProcedure}, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no prescriptions at all: the shortcut needs no match
			items := e.CompareAndAnalyze([]entity.BillItem{tt.bill}, nil, selfPatient())
			require.Len(t, items, 1)
			assert.Equal(t, constants.StatusAdmissible, items[0].Status)
			assert.InDelta(t, tt.wantApproved, items[0].ApprovedPrice, 0.001)
			assert.InDelta(t, tt.wantApproved, items[0].ReimbursementAmount, 0.001)
		})
	}
}

func TestExactNormalizedMatch(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Dolo-650", Price: 100, Category: constants.CategoryGeneral},
	}
	rx := []entity.PrescriptionItem{
		{Name: "Dolo 650", Type: constants.PrescriptionMedicine},
	}
	items := e.CompareAndAnalyze(bills, rx, selfPatient())

	require.Len(t, items, 1)
	assert.Equal(t, constants.StatusAdmissible, items[0].Status)
	assert.InDelta(t, 100, items[0].ApprovedPrice, 0.001)
}

func TestWordOverlapThresholdByType(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	// overlap ratio is exactly 1/3 against "Blood Test": above the
	// test threshold (0.3), below the medicine threshold (0.4)
	bill := entity.BillItem{Name: "Blood Sugar Fasting", Price: 150, Category: constants.CategoryTest}

	asTest := []entity.PrescriptionItem{{Name: "Blood Test", Type: constants.PrescriptionTest}}
	items := e.CompareAndAnalyze([]entity.BillItem{bill}, asTest, selfPatient())
	assert.Equal(t, constants.StatusAdmissible, items[0].Status)

	asMedicine := []entity.PrescriptionItem{{Name: "Blood Test", Type: constants.PrescriptionMedicine}}
	items = e.CompareAndAnalyze([]entity.BillItem{bill}, asMedicine, selfPatient())
	assert.Equal(t, constants.StatusNotAdmissible, items[0].Status)
}

func TestUnmatchedBillNotAdmissible(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Vitamin Syrup", Price: 80, Category: constants.CategoryMedicine},
	}
	rx := []entity.PrescriptionItem{
		{Name: "Amoxicillin", Type: constants.PrescriptionMedicine},
	}
	items := e.CompareAndAnalyze(bills, rx, selfPatient())

	require.Len(t, items, 1)
	assert.Equal(t, constants.StatusNotAdmissible, items[0].Status)
	assert.Zero(t, items[0].ApprovedPrice)
}

func TestApprovedNeverExceedsClaimed(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Doctor Consultation", Price: 1000, Category: constants.CategoryGeneral},
		{Name: "Paracetamol 500mg Tablet", Price: 25, Category: constants.CategoryMedicine},
		{Name: "Mystery Charge", Price: 700, Category: constants.CategoryGeneral},
		{Name: "Dressing Change", Price: 120, Category: constants.CategoryProcedure},
	}
	rx := []entity.PrescriptionItem{
		{Name: "Paracetamol 500mg", Type: constants.PrescriptionMedicine},
	}
	items := e.CompareAndAnalyze(bills, rx, selfPatient())
	require.Len(t, items, 4)

	var claimed, approved float64
	for _, item := range items {
		assert.LessOrEqual(t, item.ApprovedPrice, item.ClaimedPrice)
		if item.Status == constants.StatusNotAdmissible {
			assert.Zero(t, item.ApprovedPrice)
			assert.Zero(t, item.ReimbursementAmount)
		}
		claimed += item.ClaimedPrice
		approved += item.ApprovedPrice
	}
	assert.LessOrEqual(t, approved, claimed)
}

func TestEndToEndMatchingScenario(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	bills := []entity.BillItem{
		{Name: "Paracetamol 500mg Tablet", Price: 25, Category: constants.CategoryMedicine},
		{Name: "Blood Test CBC", Price: 300, Category: constants.CategoryTest},
	}
	rx := []entity.PrescriptionItem{
		{Name: "Paracetamol 500mg", Type: constants.PrescriptionMedicine},
	}
	items := e.CompareAndAnalyze(bills, rx, selfPatient())

	require.Len(t, items, 2)
	assert.Equal(t, constants.StatusAdmissible, items[0].Status)
	assert.InDelta(t, 25, items[0].ApprovedPrice, 0.001)
	assert.Equal(t, constants.StatusNotAdmissible, items[1].Status)
	assert.Zero(t, items[1].ApprovedPrice)
}

func TestNewEngineFallsBackToDefaults(t *testing.T) {
	e := NewEngine(Config{}, nil)
	assert.Equal(t, DefaultConfig(), e.cfg)
}
