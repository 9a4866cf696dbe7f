package extractor

import "drishti/internal/domain"

// Extraction is one extractor's raw output: the type's full field map plus,
// for tabular documents, parsed table rows.
type Extraction struct {
	Fields map[string]*string
	Table  []domain.SubjectRow
}

type extractFunc func(text string, boxes []domain.SpatialBox) Extraction

// extractors dispatches by document type. The extractors share cleanup helpers
// but nothing else; each is an independent pure function over the text.
var extractors = map[domain.DocumentType]extractFunc{
	domain.DocTypePAN:            extractPAN,
	domain.DocTypeAadhaar:        extractAadhaar,
	domain.DocTypeVoterID:        extractVoter,
	domain.DocTypeDrivingLicence: extractDrivingLicence,
	domain.DocTypeMarksheet:      extractMarksheet,
}

// Extract runs the extractor for docType over the recognized text and optional
// spatial boxes. Unknown types get an empty field map.
func Extract(docType domain.DocumentType, text string, boxes []domain.SpatialBox) Extraction {
	fn, ok := extractors[docType]
	if !ok {
		return Extraction{Fields: map[string]*string{}}
	}
	return fn(text, boxes)
}
