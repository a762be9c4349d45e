package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want BillCategory
	}{
		{"tablet keyword", "paracetamol 500mg tablet", CategoryMedicine},
		{"dosage unit", "dolo 650 mg", CategoryMedicine},
		{"syrup keyword", "benadryl syrup 100ml", CategoryMedicine},
		{"blood keyword", "blood test cbc", CategoryTest},
		{"scan keyword", "ct scan head", CategoryTest},
		{"xray keyword", "x ray chest", CategoryTest},
		{"dressing keyword", "wound dressing large", CategoryProcedure},
		{"physiotherapy keyword", "physiotherapy session", CategoryProcedure},
		{"no keyword", "room charges", CategoryGeneral},
		{"empty", "", CategoryGeneral},
		// medicine wins over test when both match
		{"medicine before test", "blood thinner tablet", CategoryMedicine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.in))
		})
	}
}

func TestCategorizeNoSubstringFalsePositives(t *testing.T) {
	// keyword matching is on word boundaries: "ct" inside "doctor" or
	// "lab" inside "syllabus" must not categorize
	assert.Equal(t, CategoryGeneral, Categorize("doctor charges"))
	assert.Equal(t, CategoryGeneral, Categorize("collaboration fee"))
}

func TestCategoriesAsStringSlice(t *testing.T) {
	assert.Equal(t, []string{"Medicine", "Test", "Procedure", "General"}, CategoriesAsStringSlice())
}
