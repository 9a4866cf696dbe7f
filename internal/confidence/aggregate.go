package confidence

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"drishti/internal/domain"
)

// importanceWeights bias the overall score toward the fields that identify
// the document holder. Unlisted fields weigh 1.0.
var importanceWeights = map[string]float64{
	"aadhaar_number": 1.5,
	"pan":            1.5,
	"voter_id":       1.5,
	"dl_number":      1.5,
	"name":           1.3,
	"student_name":   1.3,
	"dob":            1.2,
	"father_name":    1.0,
	"mobile":         1.0,
	"roll_no":        1.0,
	"mother_name":    0.9,
	"address":        0.9,
	"issue_date":     0.8,
	"valid_till":     0.8,
	"year":           0.8,
	"school_name":    0.8,
	"gender":         0.7,
	"cgpa":           0.7,
}

// Overall computes the importance-weighted mean confidence over populated
// fields. Null and blank fields contribute nothing; an empty document
// scores 0.
func Overall(fields map[string]domain.AnnotatedField) int {
	var weighted, total float64
	for name, field := range fields {
		if field.Value == nil || strings.TrimSpace(*field.Value) == "" {
			continue
		}
		w := 1.0
		if iw, ok := importanceWeights[name]; ok {
			w = iw
		}
		weighted += float64(field.Confidence) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(weighted / total))
}

// ApplyTablePenalty discounts a marksheet's overall score when its subject
// table came back thin. Truncation, not rounding, keeps the penalty strict.
func ApplyTablePenalty(docType domain.DocumentType, overall, tableCount int) (int, *domain.TablePenalty) {
	if docType != domain.DocTypeMarksheet {
		return overall, nil
	}

	var multiplier float64
	var label string
	switch {
	case tableCount == 0:
		multiplier, label = 0.6, "60% (no subjects)"
	case tableCount < 3:
		multiplier, label = 0.75, fmt.Sprintf("75%% (only %d subjects)", tableCount)
	case tableCount < 5:
		multiplier, label = 0.9, fmt.Sprintf("90%% (only %d subjects)", tableCount)
	default:
		return overall, nil
	}

	penalized := int(float64(overall) * multiplier)
	log.Printf("confidence: marksheet table penalty %s, overall %d -> %d", label, overall, penalized)

	return penalized, &domain.TablePenalty{
		Applied:             true,
		OriginalConfidence:  overall,
		PenalizedConfidence: penalized,
		PenaltyMultiplier:   label,
		TableCount:          tableCount,
		Reason:              fmt.Sprintf("Marksheet has only %d subjects", tableCount),
	}
}

// BuildMetadata lists every field that fell below its threshold, unresolved
// fields included, and flags the scan for redo when the document as a whole
// is weak. Fields are sorted by name so output is stable.
func BuildMetadata(fields map[string]domain.AnnotatedField, overall int) domain.ResultMetadata {
	var low []domain.LowConfidenceField
	for name, field := range fields {
		if field.Confidence < field.Threshold {
			low = append(low, domain.LowConfidenceField{
				Field:      name,
				Confidence: field.Confidence,
				Threshold:  field.Threshold,
				Status:     field.Status,
			})
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i].Field < low[j].Field })

	return domain.ResultMetadata{
		LowConfidenceFields: low,
		LowConfidenceCount:  len(low),
		SuggestRescan:       overall < 70 || len(low) >= 3,
	}
}
