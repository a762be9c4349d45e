// Package patient extracts best-guess patient metadata (name, relation
// to policyholder, age, gender) from noisy document text.
package patient

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

// Each field has its own ordered pattern list; the first match across
// all lines wins for that field.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:patient\s*name|name\s*of\s*patient)\s*[:\-]\s*([A-Z][A-Za-z .]{2,50})`),
	regexp.MustCompile(`(?i)\bpatient\s*[:\-]\s*([A-Z][A-Za-z .]{2,50})`),
	regexp.MustCompile(`(?i)\bname\s*[:\-]\s*([A-Z][A-Za-z .]{2,50})`),
	regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Miss)\.?\s+([A-Z][A-Za-z .]{2,40})`),
}

// fallback when no primary name pattern fires: a line that is just two
// capitalized words.
var nameFallback = regexp.MustCompile(`^\s*([A-Z][a-z]+\s+[A-Z][a-z]+)\s*$`)

var relationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)relation(?:ship)?(?:\s*(?:to|with)\s*(?:policy\s*holder|employee|member))?\s*[:\-]\s*([A-Za-z]+)`),
	regexp.MustCompile(`(?i)\bdependent\s*[:\-]\s*([A-Za-z]+)`),
	regexp.MustCompile(`(?i)\b(wife|husband|spouse|son|daughter|father|mother|brother|sister|self)\b`),
}

var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bage\s*[:\-]?\s*(\d{1,3})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:years?|yrs?)\b`),
}

var dobPattern = regexp.MustCompile(`(?i)(?:dob|date\s*of\s*birth|born)\D*((?:19|20)\d{2})`)

var genderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:gender|sex)\s*[:\-]?\s*(male|female|m|f)\b`),
	regexp.MustCompile(`(?i)\b(male|female)\b`),
	regexp.MustCompile(`(?i)\b(mr|sir|mrs|ms|miss)\.?\s`),
}

// Extract scans text line by line and fills the fields it can find.
// Absent fields keep type-level defaults.
func Extract(text string) entity.PatientInfo {
	info := entity.NewPatientInfo()
	lines := splitLines(text)

	if name, ok := findName(lines); ok {
		info.Name = name
	}
	if rel, ok := findRelation(lines); ok {
		info.Relation = rel
	}
	if age, ok := findAge(lines); ok {
		info.Age = &age
	}
	if g, ok := findGender(lines); ok {
		info.Gender = &g
	}
	return info
}

// Merge combines per-file extractions, preferring the most complete
// non-default fields: first non-default name wins; the first found age
// keeps its paired gender.
func Merge(base, next entity.PatientInfo) entity.PatientInfo {
	if base.Name == entity.DefaultPatientName && next.Name != entity.DefaultPatientName {
		base.Name = next.Name
	}
	if base.Relation == constants.RelationSelf && next.Relation != constants.RelationSelf {
		base.Relation = next.Relation
	}
	if base.Age == nil && next.Age != nil {
		base.Age = next.Age
		base.Gender = next.Gender
	}
	if base.Gender == nil && next.Gender != nil {
		base.Gender = next.Gender
	}
	return base
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

func findName(lines []string) (string, bool) {
	for _, re := range namePatterns {
		for _, ln := range lines {
			if m := re.FindStringSubmatch(ln); m != nil {
				if name := strings.TrimSpace(m[1]); len(name) > 2 {
					return name, true
				}
			}
		}
	}
	for _, ln := range lines {
		if m := nameFallback.FindStringSubmatch(ln); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func findRelation(lines []string) (constants.Relation, bool) {
	for _, re := range relationPatterns {
		for _, ln := range lines {
			if m := re.FindStringSubmatch(ln); m != nil {
				return constants.CanonicalRelation(m[1]), true
			}
		}
	}
	return constants.RelationSelf, false
}

func findAge(lines []string) (int, bool) {
	for _, re := range agePatterns {
		for _, ln := range lines {
			if m := re.FindStringSubmatch(ln); m != nil {
				if age, err := strconv.Atoi(m[1]); err == nil && age > 0 && age < 120 {
					return age, true
				}
			}
		}
	}
	for _, ln := range lines {
		if m := dobPattern.FindStringSubmatch(ln); m != nil {
			if year, err := strconv.Atoi(m[1]); err == nil {
				if age := time.Now().Year() - year; age > 0 && age < 120 {
					return age, true
				}
			}
		}
	}
	return 0, false
}

func findGender(lines []string) (constants.Gender, bool) {
	for _, re := range genderPatterns {
		for _, ln := range lines {
			m := re.FindStringSubmatch(ln)
			if m == nil {
				continue
			}
			switch strings.ToLower(m[1]) {
			case "male", "m", "mr", "sir":
				return constants.GenderMale, true
			case "female", "f", "mrs", "ms", "miss":
				return constants.GenderFemale, true
			}
		}
	}
	return "", false
}
