package classifier

import (
	"strings"

	"drishti/internal/domain"
)

// MatchKeywords is the precision-oriented keyword pass: an ordered set of
// mutually exclusive exact-match rules, first hit wins, no confidence score.
func MatchKeywords(text string) domain.DocumentType {
	if strings.TrimSpace(text) == "" {
		return domain.DocTypeUnknown
	}
	txt := strings.ToUpper(text)

	if panNumberPattern.MatchString(txt) {
		return domain.DocTypePAN
	}
	if containsAny(txt, "INCOME TAX", "PERMANENT ACCOUNT") {
		return domain.DocTypePAN
	}

	if aadhaarNumberPattern.MatchString(txt) &&
		containsAny(txt, "AADHAAR", "AADHAR", "UNIQUE IDENTIFICATION", "UIDAI") {
		return domain.DocTypeAadhaar
	}

	if containsAny(txt, "DRIVING LICENCE", "DRIVING LICENSE", "TRANSPORT AUTHORITY") {
		return domain.DocTypeDrivingLicence
	}

	if containsAny(txt, "ELECTION COMMISSION", "ELECTOR", "EPIC NO") {
		return domain.DocTypeVoterID
	}

	if containsAny(txt, "MARKSHEET", "MARKS MEMO", "GRADE POINT", "CGPA", "BOARD OF") {
		return domain.DocTypeMarksheet
	}

	return domain.DocTypeUnknown
}
