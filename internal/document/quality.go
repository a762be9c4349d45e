package document

import (
	"regexp"
	"strings"

	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// Weighted text-quality signals. The score is 0-100: text length up to
// 30 points, line count up to 20, medical vocabulary up to 30 (3 points
// per keyword), numeric/currency/date presence up to 20.
var qualityMedicalKeywords = []string{
	"hospital", "clinic", "doctor", "patient", "medicine", "tablet",
	"capsule", "injection", "prescription", "diagnosis", "test", "scan",
	"consultation", "pharmacy", "dosage", "treatment",
}

var (
	qualityNumbers  = regexp.MustCompile(`\d`)
	qualityCurrency = regexp.MustCompile(`(?i)\brs\.?|\binr|₹|\$`)
	qualityDate     = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

func scoreQuality(text string, lineCount int) int {
	score := 0

	if pts := len(text) / 40; pts > 30 {
		score += 30
	} else {
		score += pts
	}

	if lineCount > 20 {
		score += 20
	} else {
		score += lineCount
	}

	lower := strings.ToLower(text)
	kw := 0
	for _, k := range qualityMedicalKeywords {
		if strings.Contains(lower, k) {
			kw += 3
		}
	}
	if kw > 30 {
		kw = 30
	}
	score += kw

	if qualityNumbers.MatchString(text) {
		score += 7
	}
	if qualityCurrency.MatchString(text) {
		score += 7
	}
	if qualityDate.MatchString(text) {
		score += 6
	}

	if score > 100 {
		score = 100
	}
	return score
}

func qualityLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

func buildMetadata(text string, lines []string, fileName string) entity.DocumentMetadata {
	score := scoreQuality(text, len(lines))
	return entity.DocumentMetadata{
		FileName:     fileName,
		TextQuality:  score,
		QualityLabel: qualityLabel(score),
		LineCount:    len(lines),
		CharCount:    len(text),
	}
}
