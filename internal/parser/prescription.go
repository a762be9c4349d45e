package parser

import (
	"regexp"
	"strings"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// rxPattern pairs a prescription-line regex with the item type it
// yields. commaSplit patterns capture whole lists ("Tests: CBC, LFT")
// that fan out into several items.
type rxPattern struct {
	re         *regexp.Regexp
	itemType   constants.PrescriptionType
	commaSplit bool
	// skipPriced suppresses the pattern on lines ending in an amount:
	// a priced line is a bill row, and letting names on it count as
	// "prescribed" would make bills match themselves.
	skipPriced bool
}

var pricedTail = regexp.MustCompile(`(?i)(?:\brs\.?|\binr|₹|\$)?\s*[\d,]+(?:\.\d{1,2})?\s*(?:/-)?\s*$`)

var prescriptionPatterns = []rxPattern{
	// medicine forms
	// "Tab. Paracetamol 500mg", "Inj Monocef 1g"
	{re: regexp.MustCompile(`(?i)^(?:tab|tablet|cap|capsule|syp|syrup|inj|injection|oint|ointment)\.?\s+(.+)$`), itemType: constants.PrescriptionMedicine, skipPriced: true},
	// "1) Azithromycin 500mg OD"
	{re: regexp.MustCompile(`(?i)^\d+\s*[.)\]]\s*((?:tab|cap|inj|syp)?\.?\s*[a-z][a-z0-9 .\-]+)$`), itemType: constants.PrescriptionMedicine, skipPriced: true},
	// drug-suffix heuristic: Amoxicillin, Pantoprazole, Atorvastatin...
	{re: regexp.MustCompile(`(?i)\b([a-z]+(?:cillin|mycin|prazole|olol|dipine|zole|fenac|statin|formin|sartan))\b`), itemType: constants.PrescriptionMedicine, skipPriced: true},
	// "Dolo 650 mg twice daily" (name followed by a dosage)
	{re: regexp.MustCompile(`(?i)^([a-z][a-z ]{2,40}?)\s+\d+\s*(?:mg|ml|mcg|iu)\b`), itemType: constants.PrescriptionMedicine, skipPriced: true},

	// test forms
	// "Tests: CBC, LFT, Lipid Profile" (comma-separated list)
	{re: regexp.MustCompile(`(?i)^(?:tests?|investigations?|labs?)\s*[:\-]\s*(.+)$`), itemType: constants.PrescriptionTest, commaSplit: true},
	// well-known test names inline
	{re: regexp.MustCompile(`(?i)\b(blood test|urine test|x-?ray|mri|ct scan|ultrasound|ecg|ekg|complete blood count|cbc|liver function test|kidney function test|thyroid profile|lipid profile|hba1c)\b`), itemType: constants.PrescriptionTest, skipPriced: true},
	// "Advised: Chest X-Ray, Blood Sugar Test"
	{re: regexp.MustCompile(`(?i)^(?:advised|suggested|recommended)\s*[:\-]?\s*(.+(?:test|scan|profile|ray).*)$`), itemType: constants.PrescriptionTest, commaSplit: true},

	// procedure forms
	// "Procedure: Wound dressing"
	{re: regexp.MustCompile(`(?i)^(?:procedures?|operation)\s*[:\-]\s*(.+)$`), itemType: constants.PrescriptionProcedure},
	// well-known procedure names inline
	{re: regexp.MustCompile(`(?i)\b(physiotherapy|dialysis|dressing|endoscopy|colonoscopy|biopsy|vaccination|immunization|surgery)\b`), itemType: constants.PrescriptionProcedure, skipPriced: true},
}

// ParsePrescriptionText extracts prescribed items from plain text.
// Items deduplicate on normalized name only; the first occurrence keeps
// its type.
func ParsePrescriptionText(text string) []entity.PrescriptionItem {
	var items []entity.PrescriptionItem
	seen := make(map[string]struct{})

	add := func(raw string, t constants.PrescriptionType) {
		name := cleanPrescriptionName(raw)
		if len(name) <= 2 {
			return
		}
		norm := Normalize(name)
		if _, dup := seen[norm]; dup {
			return
		}
		seen[norm] = struct{}{}
		items = append(items, entity.PrescriptionItem{Name: name, Type: t})
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		for _, rp := range prescriptionPatterns {
			if rp.skipPriced && pricedTail.MatchString(line) {
				continue
			}
			for _, m := range rp.re.FindAllStringSubmatch(line, -1) {
				if rp.commaSplit {
					for _, part := range strings.Split(m[1], ",") {
						add(part, rp.itemType)
					}
				} else {
					add(m[1], rp.itemType)
				}
			}
		}
	}
	return items
}
