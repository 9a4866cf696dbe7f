package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"drishti/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (12 columns). Each row is one field of
// one scanned document.
var columns = []string{
	"Scan ID",
	"Processed At",
	"Document Type",
	"Classifier Confidence",
	"Overall Confidence",
	"Suggest Rescan",
	"Field",
	"Value",
	"Field Confidence",
	"Threshold",
	"Status",
	"Validation Note",
}

// Writer wraps csv.Writer for exporting scan records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of scan records to CSV rows and writes them.
// Fields are emitted in name order so repeated exports are byte-identical.
func (w *Writer) WriteRecords(records []domain.ScanRecord) error {
	for i := range records {
		for _, row := range recordToRows(&records[i]) {
			if err := w.csv.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// recordToRows converts a single scan record to one row per schema field.
func recordToRows(rec *domain.ScanRecord) [][]string {
	res := &rec.Result

	names := make([]string, 0, len(res.Fields))
	for name := range res.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		field := res.Fields[name]
		row := make([]string, len(columns))
		row[0] = rec.ScanID
		row[1] = rec.ProcessedAt
		row[2] = string(res.DocumentType)
		row[3] = strconv.Itoa(res.Classification.Confidence)
		row[4] = strconv.Itoa(res.OverallConfidence)
		row[5] = formatBool(res.Metadata.SuggestRescan)
		row[6] = name
		if field.Value != nil {
			row[7] = *field.Value
		}
		row[8] = strconv.Itoa(field.Confidence)
		row[9] = strconv.Itoa(field.Threshold)
		row[10] = string(field.Status)
		if field.CrossValidation != nil {
			row[11] = field.CrossValidation.Reason
		}
		rows = append(rows, row)
	}
	return rows
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an export name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
