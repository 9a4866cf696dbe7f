package confidence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"drishti/internal/domain"
)

var crossDateShape = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{4}`)

var validGenders = map[string]bool{
	"male": true, "female": true, "transgender": true, "m": true, "f": true, "other": true,
}

// ValidateCrossFields checks fields against one another and against hard
// plausibility bounds. Date, year and CGPA checks always record a finding so
// a valid value is visible as validated; identity and gender checks record
// only failures.
func ValidateCrossFields(fields map[string]*string) map[string]domain.CrossValidationFinding {
	findings := make(map[string]domain.CrossValidationFinding)

	if dob := fieldValue(fields, "dob"); dob != "" {
		findings["dob"] = validateDOB(dob)
	}

	if year := fieldValue(fields, "year"); year != "" {
		if y, err := strconv.Atoi(year); err != nil {
			findings["year"] = domain.CrossValidationFinding{
				Valid: false, ConfidenceAdjustment: -40, Reason: "Year is not numeric",
			}
		} else if y >= 1990 && y <= 2025 {
			findings["year"] = domain.CrossValidationFinding{
				Valid: true, ConfidenceAdjustment: 0, Reason: "Valid year",
			}
		} else {
			findings["year"] = domain.CrossValidationFinding{
				Valid: false, ConfidenceAdjustment: -30, Reason: fmt.Sprintf("Unrealistic year: %d", y),
			}
		}
	}

	if cgpa := fieldValue(fields, "cgpa"); cgpa != "" {
		if c, err := strconv.ParseFloat(cgpa, 64); err != nil {
			findings["cgpa"] = domain.CrossValidationFinding{
				Valid: false, ConfidenceAdjustment: -30, Reason: "CGPA is not numeric",
			}
		} else if c >= 0 && c <= 10 {
			findings["cgpa"] = domain.CrossValidationFinding{
				Valid: true, ConfidenceAdjustment: 0, Reason: "Valid CGPA",
			}
		} else {
			findings["cgpa"] = domain.CrossValidationFinding{
				Valid: false, ConfidenceAdjustment: -35, Reason: fmt.Sprintf("CGPA out of range: %g", c),
			}
		}
	}

	name := fieldValue(fields, "name")
	if name == "" {
		name = fieldValue(fields, "student_name")
	}
	father := fieldValue(fields, "father_name")
	if name != "" && father != "" && strings.EqualFold(name, father) {
		findings["father_name"] = domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -50, Reason: "Father name same as student name (suspicious)",
		}
	}

	if gender := fieldValue(fields, "gender"); gender != "" {
		if !validGenders[strings.ToLower(gender)] {
			findings["gender"] = domain.CrossValidationFinding{
				Valid: false, ConfidenceAdjustment: -40, Reason: fmt.Sprintf("Invalid gender value: %s", gender),
			}
		}
	}

	return findings
}

func validateDOB(dob string) domain.CrossValidationFinding {
	if !crossDateShape.MatchString(dob) {
		return domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -50, Reason: "Unrecognized date format",
		}
	}
	parts := dateSeparator.Split(dob, -1)
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -50, Reason: "Failed to parse date",
		}
	}
	switch {
	case day < 1 || day > 31:
		return domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -40, Reason: fmt.Sprintf("Invalid day: %d", day),
		}
	case month < 1 || month > 12:
		return domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -40, Reason: fmt.Sprintf("Invalid month: %d", month),
		}
	case year < 1900 || year > 2024:
		return domain.CrossValidationFinding{
			Valid: false, ConfidenceAdjustment: -30, Reason: fmt.Sprintf("Unrealistic year: %d", year),
		}
	}
	return domain.CrossValidationFinding{Valid: true, ConfidenceAdjustment: 0, Reason: "Valid date"}
}

func fieldValue(fields map[string]*string, key string) string {
	if v, ok := fields[key]; ok && v != nil {
		return strings.TrimSpace(*v)
	}
	return ""
}
