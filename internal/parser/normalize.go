// Package parser turns plain extracted text into structured bill and
// prescription items using ordered regex cascades.
package parser

import (
	"regexp"
	"strings"
)

var (
	reNonWord    = regexp.MustCompile(`[^\w\s]`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reOrdinal    = regexp.MustCompile(`^\s*\d+\s*[.)\]]\s*`)
	reBullets    = regexp.MustCompile("^[\\s\\-•*>#~·]+")
	reLeadPunct  = regexp.MustCompile(`^[\W_]+`)
	reTrailCcy   = regexp.MustCompile(`(?i)[\s\-:=]*(?:\brs\.?|\binr|₹|\$)\s*$`)
)

// Normalize lowercases a name, replaces non-word non-space characters
// with spaces, collapses whitespace and trims. Used as the canonical
// key for matching and deduplication.
func Normalize(s string) string {
	out := strings.ToLower(s)
	out = reNonWord.ReplaceAllString(out, " ")
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// CleanItemName strips ordinal numbering and bullet characters from the
// front of a candidate item name, drops a trailing currency token and
// collapses internal whitespace. The currency strip keeps the broader
// number patterns from minting a "<name> Rs." shadow of an item a
// currency-aware pattern already extracted from the same line.
func CleanItemName(s string) string {
	out := reOrdinal.ReplaceAllString(s, "")
	out = reBullets.ReplaceAllString(out, "")
	out = reTrailCcy.ReplaceAllString(out, "")
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// cleanPrescriptionName strips leading non-word punctuation and
// collapses whitespace.
func cleanPrescriptionName(s string) string {
	out := reLeadPunct.ReplaceAllString(s, "")
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
