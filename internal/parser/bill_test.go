package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

func findBill(items []entity.BillItem, name string) (entity.BillItem, bool) {
	norm := Normalize(name)
	for _, it := range items {
		if Normalize(it.Name) == norm {
			return it, true
		}
	}
	return entity.BillItem{}, false
}

func TestParseBillTextPatternForms(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantName  string
		wantPrice float64
		wantCat   constants.BillCategory
	}{
		{"rupee suffixed", "Paracetamol 500mg Tablet Rs. 25", "Paracetamol 500mg Tablet", 25, constants.CategoryMedicine},
		{"rupee symbol", "Blood Test CBC ₹300", "Blood Test CBC", 300, constants.CategoryTest},
		{"rupee prefixed", "Rs. 150 Crocin Advance", "Crocin Advance", 150, constants.CategoryGeneral},
		{"colon separator", "Crocin Advance : 30", "Crocin Advance", 30, constants.CategoryGeneral},
		{"dash separator", "CBC - 300", "CBC", 300, constants.CategoryTest},
		{"whole line name then number", "Amoxicillin 250mg 120", "Amoxicillin 250mg", 120, constants.CategoryMedicine},
		{"trailing decimal mid line", "Dressing large wound  150.00 paid", "Dressing large wound", 150, constants.CategoryProcedure},
		{"bare integer", "X Ray Chest  450", "X Ray Chest", 450, constants.CategoryTest},
		{"thousands separator", "Room Charges Rs. 1,200.50", "Room Charges", 1200.50, constants.CategoryGeneral},
		{"trailing slash dash", "Syrup Benadryl Rs. 90/-", "Syrup Benadryl", 90, constants.CategoryMedicine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ParseBillText(tt.line)
			got, ok := findBill(items, tt.wantName)
			require.True(t, ok, "expected item %q in %v", tt.wantName, items)
			assert.InDelta(t, tt.wantPrice, got.Price, 0.001)
			assert.Equal(t, tt.wantCat, got.Category)
		})
	}
}

func TestParseBillTextCurrencySuffixedLinesYieldOneItem(t *testing.T) {
	// the broader number patterns re-match "<name> Rs. <amount>" lines
	// with the currency token inside the name; the cleaned name must
	// collapse into the item the currency-aware pattern already produced,
	// never a separate "<name> Rs." shadow item
	items := ParseBillText("Paracetamol 500mg Tablet Rs. 25\nBlood Test CBC ₹300\nConsultation Fee : 500")
	require.Len(t, items, 3)
	assert.Equal(t, "Paracetamol 500mg Tablet", items[0].Name)
	assert.InDelta(t, 25, items[0].Price, 0.001)
	assert.Equal(t, "Blood Test CBC", items[1].Name)
	assert.InDelta(t, 300, items[1].Price, 0.001)
	assert.Equal(t, "Consultation Fee", items[2].Name)
	assert.InDelta(t, 500, items[2].Price, 0.001)
}

func TestParseBillTextDeduplication(t *testing.T) {
	// identical (name, price) collapses
	items := ParseBillText("Crocin Advance : 30\nCrocin Advance : 30")
	require.Len(t, items, 1)
	assert.Equal(t, "Crocin Advance", items[0].Name)

	// same name at a different price stays separate
	items = ParseBillText("Crocin Advance : 30\nCrocin Advance : 45")
	require.Len(t, items, 2)
	assert.InDelta(t, 30, items[0].Price, 0.001)
	assert.InDelta(t, 45, items[1].Price, 0.001)
}

func TestParseBillTextSkipsMetadataLines(t *testing.T) {
	text := strings.Join([]string{
		"City Hospital Rs. 999",
		"Grand Total Rs. 555",
		"Sub-Total : 500",
		"Date : 12/01/2024",
		"Patient ID : 4412",
		"Dr. Mehta consultation 400",
		"GST 18% : 90",
		"Thank you for your visit 100",
	}, "\n")
	assert.Empty(t, ParseBillText(text))
}

func TestParseBillTextNameLengthBounds(t *testing.T) {
	// two characters or fewer is not a name
	assert.Empty(t, ParseBillText("AB 50"))

	// hundred characters or more is noise, not a name
	long := strings.Repeat("x", 120) + " 50"
	assert.Empty(t, ParseBillText(long))

	// lines under three characters are skipped outright
	assert.Empty(t, ParseBillText("Hi\nok\n"))
}

func TestParseBillTextPreservesLineOrder(t *testing.T) {
	items := ParseBillText("Alpha Med : 10\nBeta Med : 20\nGamma Med : 30")
	require.Len(t, items, 3)
	assert.Equal(t, "Alpha Med", items[0].Name)
	assert.Equal(t, "Beta Med", items[1].Name)
	assert.Equal(t, "Gamma Med", items[2].Name)
}

func TestParseBillTextEmptyInput(t *testing.T) {
	assert.Empty(t, ParseBillText(""))
	assert.Empty(t, ParseBillText("\n\n\n"))
}
