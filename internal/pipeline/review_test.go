package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

func sampleResult() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		Items: []entity.AnalysisItem{
			{ID: "item-1", ItemName: "Paracetamol", ClaimedPrice: 100,
				Status: constants.StatusAdmissible, ApprovedPrice: 100, ReimbursementAmount: 100},
			{ID: "item-2", ItemName: "Mystery Charge", ClaimedPrice: 50,
				Status: constants.StatusNotAdmissible},
		},
	}
}

func TestUpdateApprovedPrice(t *testing.T) {
	res := sampleResult()
	UpdateApprovedPrice(res, "item-1", 60)
	assert.InDelta(t, 60, res.Items[0].ApprovedPrice, 0.001)
	// reimbursement is a separate edit and does not move
	assert.InDelta(t, 100, res.Items[0].ReimbursementAmount, 0.001)
}

func TestUpdateApprovedPriceIgnoresInvalid(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{"negative", -5},
		{"above claimed", 150},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sampleResult()
			UpdateApprovedPrice(res, "item-1", tt.price)
			assert.InDelta(t, 100, res.Items[0].ApprovedPrice, 0.001, "unchanged")
		})
	}
}

func TestUpdateApprovedPriceUnknownID(t *testing.T) {
	res := sampleResult()
	UpdateApprovedPrice(res, "item-99", 10)
	assert.InDelta(t, 100, res.Items[0].ApprovedPrice, 0.001)
	assert.Zero(t, res.Items[1].ApprovedPrice)
}

func TestUpdateReimbursement(t *testing.T) {
	res := sampleResult()
	UpdateReimbursement(res, "item-1", 80)
	assert.InDelta(t, 80, res.Items[0].ReimbursementAmount, 0.001)

	// zero is a valid reviewer decision
	UpdateReimbursement(res, "item-1", 0)
	assert.Zero(t, res.Items[0].ReimbursementAmount)

	// invalid values are silently ignored
	UpdateReimbursement(res, "item-1", math.NaN())
	assert.Zero(t, res.Items[0].ReimbursementAmount)
	UpdateReimbursement(res, "item-1", -1)
	assert.Zero(t, res.Items[0].ReimbursementAmount)
}
