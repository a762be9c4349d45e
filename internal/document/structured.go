// Package document builds a generic structured summary of an input
// file: title, sections, key identifiers, dates, amounts, parties and a
// heuristic table view. It is independent of bill-item extraction and
// feeds the richer report output.
package document

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shivanirao5/Medical-claim/internal/entity"
)

var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(hospital|clinic|medical\s+cent(?:re|er)|diagnostics?|pharmacy|nursing\s+home|healthcare)\b`),
	regexp.MustCompile(`(?i)\b(tax\s+invoice|invoice|bill|receipt|prescription|cash\s+memo)\b`),
}

var sectionHeaderKeywords = []string{
	"patient details", "patient information", "diagnosis", "prescription",
	"medicines", "medications", "tests", "investigations", "charges",
	"particulars", "payment details", "summary", "terms",
}

var identifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:bill|invoice|receipt)\s*(?:no|number|#)?\s*[:\-#]\s*([A-Za-z0-9/\-]+)`),
	regexp.MustCompile(`(?i)(?:patient|reg(?:istration)?|ref(?:erence)?)\s*(?:id|no|number)?\s*[:\-#]\s*([A-Za-z0-9/\-]+)`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{2,4}\b`),
	regexp.MustCompile(`(?i)date\s*[:\-]\s*([^\s,]+)`),
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:\brs\.?|\binr|₹|\$)\s*([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`\b(\d+\.\d{2})\b`),
}

var partyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(dr\.?\s+[A-Z][A-Za-z .]{2,40})`),
	regexp.MustCompile(`(?i)(?:doctor|physician|consultant)\s*[:\-]\s*([A-Z][A-Za-z .]{2,40})`),
	regexp.MustCompile(`(?i)(?:hospital|clinic|pharmacy)\s*[:\-]\s*([A-Z][A-Za-z .&]{2,50})`),
	regexp.MustCompile(`(?i)patient\s*[:\-]\s*([A-Z][A-Za-z .]{2,40})`),
}

var allCapsHeader = regexp.MustCompile(`^[A-Z][A-Z0-9 /&.\-]+$`)

// Extract summarizes plain text into a StructuredDocument. fileName is
// the title fallback and recorded in metadata.
func Extract(text, fileName string) entity.StructuredDocument {
	lines := nonEmptyLines(text)

	doc := entity.StructuredDocument{
		Title:    detectTitle(lines, fileName),
		Sections: segmentSections(lines),
		Tables:   detectTables(lines),
		Metadata: buildMetadata(text, lines, fileName),
	}
	return doc
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// detectTitle checks the first five lines against known heading
// patterns and falls back to the file name.
func detectTitle(lines []string, fileName string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, ln := range lines[:limit] {
		for _, re := range headingPatterns {
			if re.MatchString(ln) {
				return ln
			}
		}
	}
	return fileName
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range sectionHeaderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return len(line) < 50 && allCapsHeader.MatchString(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// segmentSections accumulates content under the most recent header. If
// no header is ever seen the whole text becomes one default section.
func segmentSections(lines []string) []entity.DocumentSection {
	var sections []entity.DocumentSection
	current := -1
	var orphan []string

	for _, ln := range lines {
		if isSectionHeader(ln) {
			sections = append(sections, entity.DocumentSection{Title: ln})
			current = len(sections) - 1
			continue
		}
		if current < 0 {
			orphan = append(orphan, ln)
			continue
		}
		if sections[current].Content != "" {
			sections[current].Content += "\n"
		}
		sections[current].Content += ln
	}

	if len(sections) == 0 {
		sections = []entity.DocumentSection{{
			Title:   "Document",
			Content: strings.Join(orphan, "\n"),
		}}
	} else if len(orphan) > 0 {
		// text above the first header folds into the first section
		head := strings.Join(orphan, "\n")
		if sections[0].Content != "" {
			head += "\n" + sections[0].Content
		}
		sections[0].Content = head
	}

	for i := range sections {
		enrichSection(&sections[i])
	}
	return sections
}

func enrichSection(s *entity.DocumentSection) {
	scope := s.Title + "\n" + s.Content
	for _, ln := range strings.Split(scope, "\n") {
		for _, re := range identifierPatterns {
			for _, m := range re.FindAllStringSubmatch(ln, -1) {
				s.Identifiers = append(s.Identifiers, m[1])
			}
		}
		for _, re := range datePatterns {
			for _, m := range re.FindAllStringSubmatch(ln, -1) {
				d := m[0]
				if len(m) > 1 && m[1] != "" {
					d = m[1]
				}
				s.Dates = append(s.Dates, d)
			}
		}
		for _, re := range amountPatterns {
			for _, m := range re.FindAllStringSubmatch(ln, -1) {
				if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil && v > 0 {
					s.Amounts = append(s.Amounts, v)
				}
			}
		}
		for _, re := range partyPatterns {
			for _, m := range re.FindAllStringSubmatch(ln, -1) {
				s.Parties = append(s.Parties, strings.TrimSpace(m[1]))
			}
		}
	}
}
