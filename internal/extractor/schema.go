package extractor

import "drishti/internal/domain"

// FieldSchema fixes the field-name set per document type. Every extractor
// returns exactly these keys, null-valued when unresolved, so that a document
// of a given type always reports the same shape.
var FieldSchema = map[domain.DocumentType][]string{
	domain.DocTypePAN:            {"pan", "name", "father_name", "dob"},
	domain.DocTypeAadhaar:        {"aadhaar_number", "name", "dob", "gender", "father_name", "address", "mobile"},
	domain.DocTypeVoterID:        {"voter_id", "name", "father_name", "husband_name", "dob", "gender"},
	domain.DocTypeDrivingLicence: {"dl_number", "name", "dob", "issue_date", "valid_till", "father_name", "address"},
	domain.DocTypeMarksheet:      {"student_name", "father_name", "mother_name", "school_name", "dob", "roll_no", "year", "cgpa"},
}

// newFields allocates the full schema for a type with every key unresolved.
func newFields(docType domain.DocumentType) map[string]*string {
	schema := FieldSchema[docType]
	fields := make(map[string]*string, len(schema))
	for _, name := range schema {
		fields[name] = nil
	}
	return fields
}
