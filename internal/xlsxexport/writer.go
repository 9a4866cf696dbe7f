package xlsxexport

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"drishti/internal/csvexport"
	"drishti/internal/domain"
)

const (
	summarySheet  = "Summary"
	fieldsSheet   = "Fields"
	subjectsSheet = "Subjects"
)

var summaryHeader = []interface{}{
	"Scan ID", "Processed At", "Document Type", "Classifier Confidence",
	"Overall Confidence", "Coverage", "Low Confidence Fields", "Suggest Rescan",
}

var fieldsHeader = []interface{}{
	"Scan ID", "Document Type", "Field", "Value", "Confidence",
	"OCR", "Pattern", "Quality", "Business", "Threshold", "Status", "Validation Note",
}

var subjectsHeader = []interface{}{
	"Scan ID", "Subject", "Grade", "Marks",
}

// Build assembles a three-sheet workbook from a batch of scan records:
// one summary row per document, one row per field, and one row per marksheet
// subject. Returns domain.ErrEmptyExport for an empty batch.
func Build(records []domain.ScanRecord) (*excelize.File, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyExport
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(fieldsSheet); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", fieldsSheet, err)
	}
	if _, err := f.NewSheet(subjectsSheet); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", subjectsSheet, err)
	}

	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return nil, err
	}
	if err := writeRow(f, fieldsSheet, 1, fieldsHeader); err != nil {
		return nil, err
	}
	if err := writeRow(f, subjectsSheet, 1, subjectsHeader); err != nil {
		return nil, err
	}

	summaryRow, fieldRow, subjectRow := 2, 2, 2
	for i := range records {
		rec := &records[i]
		res := &rec.Result

		err := writeRow(f, summarySheet, summaryRow, []interface{}{
			rec.ScanID,
			rec.ProcessedAt,
			string(res.DocumentType),
			res.Classification.Confidence,
			res.OverallConfidence,
			res.Metadata.CoverageRatio,
			res.Metadata.LowConfidenceCount,
			res.Metadata.SuggestRescan,
		})
		if err != nil {
			return nil, err
		}
		summaryRow++

		for _, name := range sortedFieldNames(res.Fields) {
			field := res.Fields[name]
			value := ""
			if field.Value != nil {
				value = *field.Value
			}
			note := ""
			if field.CrossValidation != nil {
				note = field.CrossValidation.Reason
			}
			row := []interface{}{
				rec.ScanID, string(res.DocumentType), name, value, field.Confidence,
			}
			if field.Breakdown != nil {
				row = append(row,
					field.Breakdown.TesseractOCR,
					field.Breakdown.PatternMatch,
					field.Breakdown.ImageQuality,
					field.Breakdown.BusinessRules,
				)
			} else {
				row = append(row, "", "", "", "")
			}
			row = append(row, field.Threshold, string(field.Status), note)
			if err := writeRow(f, fieldsSheet, fieldRow, row); err != nil {
				return nil, err
			}
			fieldRow++
		}

		for _, subject := range res.Table {
			err := writeRow(f, subjectsSheet, subjectRow, []interface{}{
				rec.ScanID, subject.Subject, subject.Grade, subject.Marks,
			})
			if err != nil {
				return nil, err
			}
			subjectRow++
		}
	}

	return f, nil
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	sanitized := csvexport.SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.xlsx", sanitized, date)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func sortedFieldNames(fields map[string]domain.AnnotatedField) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
