package confidence

import "drishti/internal/domain"

// DefaultThreshold applies to any field without an explicit entry.
const DefaultThreshold = 80

var fieldThresholds = map[string]int{
	"aadhaar_number": 75,
	"pan":            75,
	"voter_id":       75,
	"dl_number":      75,
	"roll_no":        75,
	"name":           75,
	"student_name":   75,
	"father_name":    75,
	"mother_name":    75,
	"address":        75,
	"year":           75,
	"gender":         75,
	"school_name":    75,
	"dob":            70,
	"issue_date":     70,
	"valid_till":     70,
	"cgpa":           70,
	"mobile":         80,
}

func Threshold(fieldName string) int {
	if t, ok := fieldThresholds[fieldName]; ok {
		return t
	}
	return DefaultThreshold
}

// StatusFor buckets a fused score against the field threshold. Scores within
// 10 points below the threshold land in REVIEW rather than FAIL.
func StatusFor(score, threshold int) domain.FieldStatus {
	switch {
	case score >= threshold:
		return domain.FieldStatusPass
	case score >= threshold-10:
		return domain.FieldStatusReview
	default:
		return domain.FieldStatusFail
	}
}
