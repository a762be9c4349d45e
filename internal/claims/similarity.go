package claims

import (
	"strings"

	levenshtein "github.com/agnivade/levenshtein"
)

// Similarity maps edit distance into [0,1]: (maxLen - distance) / maxLen.
// Symmetric by construction.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

// significantWords keeps words longer than 2 characters.
func significantWords(normalized string) []string {
	var words []string
	for _, w := range strings.Fields(normalized) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// overlapScore is the weighted word-overlap between two normalized
// names. Every word pair contributes: exact match 1.0; for words longer
// than 3 characters, substring containment 0.7, otherwise 0.6 when the
// Levenshtein similarity clears the fuzzy cutoff. The sum is divided by
// the larger word count.
func (e *Engine) overlapScore(billNorm, rxNorm string) float64 {
	billWords := significantWords(billNorm)
	rxWords := significantWords(rxNorm)

	denom := len(billWords)
	if len(rxWords) > denom {
		denom = len(rxWords)
	}
	if denom == 0 {
		return 0
	}

	var sum float64
	for _, bw := range billWords {
		for _, rw := range rxWords {
			switch {
			case bw == rw:
				sum += 1.0
			case len(bw) > 3 && len(rw) > 3 && (strings.Contains(bw, rw) || strings.Contains(rw, bw)):
				sum += e.cfg.SubstringWeight
			case len(bw) > 3 && len(rw) > 3 && Similarity(bw, rw) > e.cfg.FuzzyCutoff:
				sum += e.cfg.FuzzyWeight
			}
		}
	}
	return sum / float64(denom)
}
