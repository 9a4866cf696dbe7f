package domain

// SpatialBox is one recognized text fragment with its bounding box, as produced
// by an external label/value detector. The box is [x1, y1, x2, y2].
type SpatialBox struct {
	Text string `json:"text"`
	Box  [4]int `json:"bounding_box"`
}

// OCRWordStats summarizes the OCR engine's per-word confidences for a page.
type OCRWordStats struct {
	Average       float64 `json:"average"`
	Median        float64 `json:"median"`
	Min           int     `json:"min"`
	Max           int     `json:"max"`
	WordCount     int     `json:"word_count"`
	LowConfWords  int     `json:"low_conf_words"`
	HighConfWords int     `json:"high_conf_words"`
}

// ScanInput is the single in-memory bundle handed to the engine by collaborators
// (OCR invocation, rasterization and box detection all happen upstream).
type ScanInput struct {
	RawText           string       `json:"raw_text"`
	DocumentTypeHint  DocumentType `json:"document_type_hint,omitempty"`
	SpatialBoxes      []SpatialBox `json:"spatial_boxes,omitempty"`
	OCRWordStats      *OCRWordStats `json:"ocr_word_confidences,omitempty"`
	ImageQualityScore *float64     `json:"image_quality_score,omitempty"`
}

// ClassificationResult is the classifier's verdict for one document.
type ClassificationResult struct {
	DocumentType DocumentType         `json:"document_type"`
	Confidence   int                  `json:"confidence"`
	Scores       map[DocumentType]int `json:"scores"`
}

// ConfidenceBreakdown records the four fused component scores for a field.
type ConfidenceBreakdown struct {
	TesseractOCR  float64 `json:"tesseract_ocr"`
	PatternMatch  int     `json:"pattern_match"`
	ImageQuality  float64 `json:"image_quality"`
	BusinessRules int     `json:"business_rules"`
}

// CrossValidationFinding is the outcome of a semantic cross-field check on one
// field. Absence of a finding means the field was not subject to a check, not
// that it passed.
type CrossValidationFinding struct {
	Valid                bool   `json:"valid"`
	ConfidenceAdjustment int    `json:"confidence_adjustment"`
	Reason               string `json:"reason"`
}

// AnnotatedField is the externally visible unit: a raw value plus its fused,
// cross-validated confidence and threshold bucket.
type AnnotatedField struct {
	Value           *string                 `json:"value"`
	Confidence      int                     `json:"confidence"`
	Breakdown       *ConfidenceBreakdown    `json:"breakdown,omitempty"`
	Threshold       int                     `json:"threshold,omitempty"`
	Status          FieldStatus             `json:"status,omitempty"`
	CrossValidation *CrossValidationFinding `json:"cross_validation,omitempty"`
}

// SubjectRow is one row of a marksheet's subject table.
type SubjectRow struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
	Marks   string `json:"marks"`
}

// TablePenalty records a structural-completeness penalty applied to the overall
// confidence of a tabular document.
type TablePenalty struct {
	Applied              bool   `json:"applied"`
	OriginalConfidence   int    `json:"original_confidence"`
	PenalizedConfidence  int    `json:"penalized_confidence"`
	PenaltyMultiplier    string `json:"penalty_multiplier"`
	TableCount           int    `json:"table_count"`
	Reason               string `json:"reason"`
}

// LowConfidenceField names a field that landed in REVIEW or FAIL.
type LowConfidenceField struct {
	Field      string      `json:"field"`
	Confidence int         `json:"confidence"`
	Threshold  int         `json:"threshold"`
	Status     FieldStatus `json:"status"`
}

// ResultMetadata carries review hints for the downstream human-review flow.
type ResultMetadata struct {
	LowConfidenceFields []LowConfidenceField `json:"low_confidence_fields"`
	LowConfidenceCount  int                  `json:"low_confidence_count"`
	SuggestRescan       bool                 `json:"suggest_rescan"`
	CoverageRatio       float64              `json:"coverage_ratio"`
	TablePenalty        *TablePenalty        `json:"table_penalty,omitempty"`
}

// ScanRecord wraps an engine result with the request-scoped identifiers the
// API layer adds. This is the unit the exporters consume.
type ScanRecord struct {
	ScanID      string           `json:"scan_id"`
	ProcessedAt string           `json:"processed_at"`
	Result      ExtractionResult `json:"result"`
}

// ExtractionResult is the engine's complete output for one document. Every key
// of the type's fixed schema is always present in Fields, with a null-valued
// placeholder for anything unresolved — downstream UIs render a fixed form
// layout per document type and rely on that.
type ExtractionResult struct {
	DocumentType      DocumentType              `json:"document_type"`
	Classification    ClassificationResult      `json:"classification"`
	Fields            map[string]AnnotatedField `json:"fields"`
	Table             []SubjectRow              `json:"table"`
	RawTextPreview    string                    `json:"raw_text_preview"`
	OverallConfidence int                       `json:"overall_confidence"`
	Metadata          ResultMetadata            `json:"metadata"`
}
