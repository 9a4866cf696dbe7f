package confidence

import "drishti/internal/domain"

// AnnotateFields fuses per-field confidence, applies cross-field adjustments
// and tags each field with its threshold status. Every schema key in the
// input appears in the output, null values included.
func AnnotateFields(fields map[string]*string, sig Signals) map[string]domain.AnnotatedField {
	findings := ValidateCrossFields(fields)
	out := make(map[string]domain.AnnotatedField, len(fields))

	for name, value := range fields {
		score, breakdown := Fuse(name, value, sig)

		var cv *domain.CrossValidationFinding
		if finding, ok := findings[name]; ok {
			score += finding.ConfidenceAdjustment
			if score < 0 {
				score = 0
			}
			f := finding
			cv = &f
		}

		threshold := Threshold(name)
		b := breakdown
		out[name] = domain.AnnotatedField{
			Value:           value,
			Confidence:      score,
			Breakdown:       &b,
			Threshold:       threshold,
			Status:          StatusFor(score, threshold),
			CrossValidation: cv,
		}
	}
	return out
}
