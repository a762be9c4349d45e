package document

import (
	"regexp"
	"strings"

	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// Candidate table rows. Either "text + trailing number" or the fuller
// "text + qty + unit price + amount" shape.
var (
	rowNameQtyAmount = regexp.MustCompile(`^(.+?)\s+(\d{1,3})\s+([\d,]+(?:\.\d{1,2})?)\s+([\d,]+(?:\.\d{1,2})?)\s*$`)
	rowNameAmount    = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 .\-/()]+?)\s+([\d,]+(?:\.\d{1,2})?)\s*$`)
)

var tableHeaders = []string{"Item", "Qty", "Amount"}

// detectTables scans for row-shaped lines; at least 3 across the
// document yield one synthetic table with a fixed 3-column header.
func detectTables(lines []string) []entity.DocumentTable {
	var rows [][]string
	for _, ln := range lines {
		if m := rowNameQtyAmount.FindStringSubmatch(ln); m != nil {
			rows = append(rows, []string{strings.TrimSpace(m[1]), m[2], m[4]})
			continue
		}
		if m := rowNameAmount.FindStringSubmatch(ln); m != nil {
			rows = append(rows, []string{strings.TrimSpace(m[1]), "1", m[2]})
		}
	}
	if len(rows) < 3 {
		return nil
	}
	return []entity.DocumentTable{{Headers: tableHeaders, Rows: rows}}
}
