package domain

// DocumentType identifies which extractor, field schema, and thresholds apply.
type DocumentType string

const (
	DocTypePAN            DocumentType = "PAN"
	DocTypeAadhaar        DocumentType = "Aadhaar"
	DocTypeVoterID        DocumentType = "Voter ID"
	DocTypeDrivingLicence DocumentType = "Driving Licence"
	DocTypeMarksheet      DocumentType = "Marksheet"
	DocTypeUnknown        DocumentType = "Unknown"
)

// DocumentTypes lists the five concrete types in scoring order. The order is
// load-bearing: classifier ties resolve to the earliest entry.
var DocumentTypes = []DocumentType{
	DocTypePAN,
	DocTypeAadhaar,
	DocTypeVoterID,
	DocTypeDrivingLicence,
	DocTypeMarksheet,
}

// Valid reports whether t is a supported document type (Unknown included).
func (t DocumentType) Valid() bool {
	if t == DocTypeUnknown {
		return true
	}
	for _, dt := range DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// FieldStatus buckets a field's final confidence against its threshold.
type FieldStatus string

const (
	FieldStatusPass   FieldStatus = "PASS"
	FieldStatusReview FieldStatus = "REVIEW"
	FieldStatusFail   FieldStatus = "FAIL"
)
