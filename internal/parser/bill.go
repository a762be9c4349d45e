package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// Lines containing any of these are treated as headers, totals or
// metadata and excluded from item search. Matched on the lowercased line.
var skipLineKeywords = []string{
	"total", "subtotal", "sub-total", "grand total", "balance",
	"date", "dated",
	"patient", "doctor", "dr.", "physician",
	"hospital", "clinic", "pharmacy",
	"invoice", "bill no", "receipt no", "reg no", "gst", "tax",
	"phone", "mobile", "email", "address",
	"page", "signature", "thank",
}

const amount = `([\d,]+(?:\.\d{1,2})?)`

// billPattern pairs a line regex with a handler that pulls out the
// candidate (name, rawPrice) from the match groups. Patterns are
// evaluated in order and are not mutually exclusive: a line contributes
// every match from every pattern.
type billPattern struct {
	re      *regexp.Regexp
	extract func(m []string) (name, rawPrice string)
}

var nameFirst = func(m []string) (string, string) { return m[1], m[2] }
var priceFirst = func(m []string) (string, string) { return m[2], m[1] }

var billPatterns = []billPattern{
	// "Paracetamol 500mg Tablet Rs. 25" / "Blood Test CBC ₹300"
	{regexp.MustCompile(`(?i)^(.+?)\s*[-:=]?\s*(?:\brs\.?|\binr|₹|\$)\s*` + amount + `\s*(?:/-)?\s*$`), nameFirst},
	// "Rs. 25 Paracetamol 500mg Tablet"
	{regexp.MustCompile(`(?i)^\s*(?:rs\.?|inr|₹|\$)\s*` + amount + `\s*[-:=]?\s+(.+?)\s*$`), priceFirst},
	// "Crocin Advance : 30" / "CBC - 300" / "Syrup = 90.50"
	{regexp.MustCompile(`(?i)^(.+?)\s*[:=\-]\s*` + amount + `\s*(?:/-)?\s*$`), nameFirst},
	// "Amoxicillin 250mg 120" (whole line: name then number)
	{regexp.MustCompile(`(?i)^([a-z][a-z0-9 .,()/%+\-]*?)\s+` + amount + `\s*$`), nameFirst},
	// trailing decimal amount anywhere: "Dressing large wound  150.00 paid"
	{regexp.MustCompile(`(?i)^(.+?)\s+(\d+\.\d{1,2})\b`), nameFirst},
	// bare integer amount: "X Ray Chest  450"
	{regexp.MustCompile(`(?i)^(.+?)\s+(\d{2,6})\s*$`), nameFirst},
}

// ParseBillText extracts billed line items from plain text. Every line
// is run through the full pattern cascade; exact duplicates on
// (normalized name, price) collapse to one item, while the same name at
// a different price stays a separate item.
func ParseBillText(text string) []entity.BillItem {
	var items []entity.BillItem
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 || isSkippableLine(line) {
			continue
		}
		for _, bp := range billPatterns {
			for _, m := range bp.re.FindAllStringSubmatch(line, -1) {
				name, raw := bp.extract(m)
				name = CleanItemName(name)
				if len(name) <= 2 || len(name) >= 100 {
					continue
				}
				price, err := parseAmount(raw)
				if err != nil || price < 0 {
					continue
				}
				norm := Normalize(name)
				key := fmt.Sprintf("%s|%.2f", norm, price)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				items = append(items, entity.BillItem{
					Name:     name,
					Price:    price,
					Category: constants.Categorize(norm),
				})
			}
		}
	}
	return items
}

func isSkippableLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range skipLineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}
