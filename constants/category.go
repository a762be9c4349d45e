package constants

import "regexp"

// BillCategory classifies one priced line on a medical bill.
type BillCategory string

const (
	CategoryMedicine  BillCategory = "Medicine"
	CategoryTest      BillCategory = "Test"
	CategoryProcedure BillCategory = "Procedure"
	CategoryGeneral   BillCategory = "General"
)

var allCategories = []BillCategory{
	CategoryMedicine,
	CategoryTest,
	CategoryProcedure,
	CategoryGeneral,
}

func CategoriesAsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Keyword tables used to categorize bill lines. Checked in order
// medicine -> test -> procedure; the first list that matches wins.
// Inputs are expected to be normalized (lowercase, punctuation stripped).
var (
	medicineKeywords = regexp.MustCompile(`\b(tablet|tab|capsule|cap|syrup|syp|injection|inj|drops|cream|ointment|gel|lotion|spray|inhaler|medicine|drug|antibiotic)\b|\d+\s*(mg|ml|mcg|iu)\b`)

	testKeywords = regexp.MustCompile(`\b(test|tests|scan|x ray|xray|mri|ultrasound|sonography|ecg|ekg|eeg|cbc|blood|urine|stool|pathology|lab|culture|hba1c|lipid|thyroid|hemoglobin)\b`)

	procedureKeywords = regexp.MustCompile(`\b(surgery|operation|procedure|dressing|physiotherapy|therapy|dialysis|endoscopy|colonoscopy|vaccination|immunization|suturing|biopsy|extraction)\b`)
)

// Categorize maps a normalized bill-item name to its category.
func Categorize(normalizedName string) BillCategory {
	switch {
	case medicineKeywords.MatchString(normalizedName):
		return CategoryMedicine
	case testKeywords.MatchString(normalizedName):
		return CategoryTest
	case procedureKeywords.MatchString(normalizedName):
		return CategoryProcedure
	default:
		return CategoryGeneral
	}
}

// PrescriptionType identifies what kind of entry a prescription line is.
type PrescriptionType string

const (
	PrescriptionMedicine  PrescriptionType = "medicine"
	PrescriptionTest      PrescriptionType = "test"
	PrescriptionProcedure PrescriptionType = "procedure"
)
