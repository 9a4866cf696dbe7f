package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCrossFields_DOB(t *testing.T) {
	tests := []struct {
		name    string
		dob     string
		valid   bool
		adjust  int
		reason  string
	}{
		{"valid", "12/05/1990", true, 0, "Valid date"},
		{"bad day", "45/05/1990", false, -40, "Invalid day: 45"},
		{"bad month", "12/13/1990", false, -40, "Invalid month: 13"},
		{"ancient year", "12/05/1875", false, -30, "Unrealistic year: 1875"},
		{"future year", "12/05/2030", false, -30, "Unrealistic year: 2030"},
		{"garbage", "not a date", false, -50, "Unrecognized date format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ValidateCrossFields(map[string]*string{"dob": strPtr(tt.dob)})
			require.Contains(t, findings, "dob")
			f := findings["dob"]
			assert.Equal(t, tt.valid, f.Valid)
			assert.Equal(t, tt.adjust, f.ConfidenceAdjustment)
			assert.Equal(t, tt.reason, f.Reason)
		})
	}
}

func TestValidateCrossFields_Year(t *testing.T) {
	findings := ValidateCrossFields(map[string]*string{"year": strPtr("2023")})
	require.Contains(t, findings, "year")
	assert.True(t, findings["year"].Valid)

	findings = ValidateCrossFields(map[string]*string{"year": strPtr("1980")})
	assert.Equal(t, -30, findings["year"].ConfidenceAdjustment)

	findings = ValidateCrossFields(map[string]*string{"year": strPtr("abcd")})
	assert.Equal(t, -40, findings["year"].ConfidenceAdjustment)
}

func TestValidateCrossFields_CGPA(t *testing.T) {
	findings := ValidateCrossFields(map[string]*string{"cgpa": strPtr("8.2")})
	require.Contains(t, findings, "cgpa")
	assert.True(t, findings["cgpa"].Valid)

	findings = ValidateCrossFields(map[string]*string{"cgpa": strPtr("15")})
	f := findings["cgpa"]
	assert.False(t, f.Valid)
	assert.Equal(t, -35, f.ConfidenceAdjustment)
	assert.Equal(t, "CGPA out of range: 15", f.Reason)

	findings = ValidateCrossFields(map[string]*string{"cgpa": strPtr("x")})
	assert.Equal(t, -30, findings["cgpa"].ConfidenceAdjustment)
}

func TestValidateCrossFields_FatherSameAsName(t *testing.T) {
	findings := ValidateCrossFields(map[string]*string{
		"name":        strPtr("Rahul Sharma"),
		"father_name": strPtr("rahul sharma"),
	})
	require.Contains(t, findings, "father_name")
	assert.Equal(t, -50, findings["father_name"].ConfidenceAdjustment)

	// student_name stands in for name on marksheets.
	findings = ValidateCrossFields(map[string]*string{
		"student_name": strPtr("Priya Reddy"),
		"father_name":  strPtr("Priya Reddy"),
	})
	require.Contains(t, findings, "father_name")

	// Distinct names produce no finding.
	findings = ValidateCrossFields(map[string]*string{
		"name":        strPtr("Rahul Sharma"),
		"father_name": strPtr("Suresh Sharma"),
	})
	assert.NotContains(t, findings, "father_name")
}

func TestValidateCrossFields_Gender(t *testing.T) {
	// Valid genders record nothing; only failures do.
	findings := ValidateCrossFields(map[string]*string{"gender": strPtr("Male")})
	assert.NotContains(t, findings, "gender")

	findings = ValidateCrossFields(map[string]*string{"gender": strPtr("Alien")})
	require.Contains(t, findings, "gender")
	assert.Equal(t, -40, findings["gender"].ConfidenceAdjustment)
	assert.Equal(t, "Invalid gender value: Alien", findings["gender"].Reason)
}

func TestValidateCrossFields_NilAndEmpty(t *testing.T) {
	findings := ValidateCrossFields(map[string]*string{
		"dob":    nil,
		"year":   strPtr(""),
		"gender": nil,
	})
	assert.Empty(t, findings)
}
