package extract

import (
	"regexp"
	"strings"
)

// OCR output cleanup. Applied after OCR only, never to text-layer or
// remote extractions.
var (
	reCurrencyGap   = regexp.MustCompile(`([₹$])\s+(\d)`)
	reRupeeSpelling = regexp.MustCompile(`(?i)\brs\s*\.?\s*(\d)`)
	reThousandsGap  = regexp.MustCompile(`(\d)\s*,\s*(\d{3})\b`)
	reRunSpaces     = regexp.MustCompile(`[ \t]{2,}`)
	reSplitWord     = regexp.MustCompile(`([A-Za-z]+)-\n([A-Za-z]+)`)
	reBlankLines    = regexp.MustCompile(`\n\s*\n+`)
)

// Common medical shorthand expanded so downstream parsing sees full
// words.
var abbreviations = []struct {
	re  *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`(?i)\btab\b\.?`), "Tablet"},
	{regexp.MustCompile(`(?i)\bcap\b\.?`), "Capsule"},
	{regexp.MustCompile(`(?i)\binj\b\.?`), "Injection"},
	{regexp.MustCompile(`(?i)\bdr\b\.?`), "Dr."},
}

// Postprocess cleans raw OCR text: currency and thousands-separator
// spacing, word rejoining across line breaks, whitespace and blank-line
// collapse, and medical abbreviation expansion.
func Postprocess(raw string) string {
	out := raw
	out = reSplitWord.ReplaceAllString(out, "$1$2")
	out = reCurrencyGap.ReplaceAllString(out, "$1$2")
	out = reRupeeSpelling.ReplaceAllString(out, "Rs. $1")
	out = reThousandsGap.ReplaceAllString(out, "$1,$2")
	out = reRunSpaces.ReplaceAllString(out, " ")
	out = reBlankLines.ReplaceAllString(out, "\n")
	for _, a := range abbreviations {
		out = a.re.ReplaceAllString(out, a.rep)
	}
	return strings.TrimSpace(out)
}
