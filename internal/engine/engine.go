package engine

import (
	"log"
	"strings"

	"drishti/internal/classifier"
	"drishti/internal/confidence"
	"drishti/internal/domain"
	"drishti/internal/extractor"
)

const defaultPreviewLines = 30

// Config tunes engine output shape.
type Config struct {
	// PreviewLines caps the raw text preview; zero means the default of 30.
	PreviewLines int
}

// Engine runs the full pipeline over one scan: classify, extract, score,
// validate, aggregate. It holds no mutable state and does no I/O, so the
// same input always produces the same result and one instance serves all
// requests.
type Engine struct {
	previewLines int
}

func New(cfg Config) *Engine {
	lines := cfg.PreviewLines
	if lines <= 0 {
		lines = defaultPreviewLines
	}
	return &Engine{previewLines: lines}
}

// Process turns recognized text plus upstream signals into a fully annotated
// extraction result. A valid type hint overrides the classifier's verdict for
// extraction while the classification itself is still reported.
func (e *Engine) Process(input domain.ScanInput) domain.ExtractionResult {
	text := input.RawText

	classification := classifier.Classify(text)
	docType := classification.DocumentType
	if input.DocumentTypeHint != "" && input.DocumentTypeHint.Valid() {
		if input.DocumentTypeHint != docType {
			log.Printf("engine.Engine: hint %q overrides classified type %q", input.DocumentTypeHint, docType)
		}
		docType = input.DocumentTypeHint
	}

	raw := extractor.Extract(docType, text, input.SpatialBoxes)
	fields := normalizeToSchema(docType, raw.Fields)

	sig := confidence.Signals{ImageQuality: input.ImageQualityScore}
	if input.OCRWordStats != nil {
		avg := input.OCRWordStats.Average
		sig.OCRAverage = &avg
	}

	annotated := confidence.AnnotateFields(fields, sig)
	overall := confidence.Overall(annotated)
	overall, penalty := confidence.ApplyTablePenalty(docType, overall, len(raw.Table))

	metadata := confidence.BuildMetadata(annotated, overall)
	metadata.CoverageRatio = coverageRatio(fields)
	metadata.TablePenalty = penalty

	return domain.ExtractionResult{
		DocumentType:      docType,
		Classification:    classification,
		Fields:            annotated,
		Table:             raw.Table,
		RawTextPreview:    preview(text, e.previewLines),
		OverallConfidence: overall,
		Metadata:          metadata,
	}
}

// normalizeToSchema forces the type's full schema into the field map, keeping
// any extra keys an extractor resolved beyond it.
func normalizeToSchema(docType domain.DocumentType, extracted map[string]*string) map[string]*string {
	schema := extractor.FieldSchema[docType]
	fields := make(map[string]*string, len(schema))
	for _, key := range schema {
		fields[key] = extracted[key]
	}
	for key, value := range extracted {
		if _, ok := fields[key]; !ok {
			fields[key] = value
		}
	}
	return fields
}

func coverageRatio(fields map[string]*string) float64 {
	if len(fields) == 0 {
		return 0
	}
	filled := 0
	for _, v := range fields {
		if v != nil && strings.TrimSpace(*v) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

func preview(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
