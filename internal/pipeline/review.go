package pipeline

import (
	"math"

	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// Review mutations. The only two ways an analysis changes after
// creation; neither re-runs matching. Invalid input (negative,
// non-numeric, or an approved price above the claimed price) is
// silently ignored.

func UpdateApprovedPrice(res *entity.AnalysisResult, id string, price float64) {
	if !validAmount(price) {
		return
	}
	for i := range res.Items {
		if res.Items[i].ID == id {
			if price > res.Items[i].ClaimedPrice {
				return
			}
			res.Items[i].ApprovedPrice = price
			return
		}
	}
}

func UpdateReimbursement(res *entity.AnalysisResult, id string, amount float64) {
	if !validAmount(amount) {
		return
	}
	for i := range res.Items {
		if res.Items[i].ID == id {
			res.Items[i].ReimbursementAmount = amount
			return
		}
	}
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
