package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drishti/internal/domain"
	"drishti/internal/extractor"
)

const aadhaarScanText = `GOVERNMENT OF INDIA
UNIQUE IDENTIFICATION AUTHORITY OF INDIA
RAHUL SHARMA C/O: Suresh Sharma
DOB: 12/05/1990
MALE
1234 5678 9012
Mobile: 9876543210
help@uidai.gov.in`

const panScanText = `INCOME TAX DEPARTMENT
GOVT. OF INDIA
PERMANENT ACCOUNT NUMBER CARD
ABCDE1234F
Name
RAHUL SHARMA
Father's Name
SURESH SHARMA
Date of Birth
12/05/1990`

func floatPtr(f float64) *float64 { return &f }

func TestProcess_Aadhaar(t *testing.T) {
	eng := New(Config{})
	result := eng.Process(domain.ScanInput{
		RawText:           aadhaarScanText,
		OCRWordStats:      &domain.OCRWordStats{Average: 90},
		ImageQualityScore: floatPtr(80),
	})

	assert.Equal(t, domain.DocTypeAadhaar, result.DocumentType)
	assert.Equal(t, 95, result.Classification.Confidence)

	// Full schema present, resolved or not.
	require.Len(t, result.Fields, len(extractor.FieldSchema[domain.DocTypeAadhaar]))

	number := result.Fields["aadhaar_number"]
	require.NotNil(t, number.Value)
	assert.Equal(t, "123456789012", *number.Value)
	assert.Equal(t, domain.FieldStatusPass, number.Status)

	dob := result.Fields["dob"]
	require.NotNil(t, dob.Value)
	assert.Equal(t, "12/05/1990", *dob.Value)
	require.NotNil(t, dob.CrossValidation)
	assert.True(t, dob.CrossValidation.Valid)

	gender := result.Fields["gender"]
	require.NotNil(t, gender.Value)
	assert.Equal(t, "Male", *gender.Value)
	assert.Equal(t, domain.FieldStatusPass, gender.Status)

	assert.GreaterOrEqual(t, result.OverallConfidence, 70)
	assert.False(t, result.Metadata.SuggestRescan)
	assert.Nil(t, result.Metadata.TablePenalty)
	assert.Equal(t, 1.0, result.Metadata.CoverageRatio)
}

func TestProcess_PAN(t *testing.T) {
	eng := New(Config{})
	result := eng.Process(domain.ScanInput{RawText: panScanText})

	assert.Equal(t, domain.DocTypePAN, result.DocumentType)

	pan := result.Fields["pan"]
	require.NotNil(t, pan.Value)
	assert.Equal(t, "ABCDE1234F", *pan.Value)

	name := result.Fields["name"]
	require.NotNil(t, name.Value)
	assert.Equal(t, "RAHUL SHARMA", *name.Value)

	// name != father_name, so no cross-field finding on father_name.
	assert.Nil(t, result.Fields["father_name"].CrossValidation)

	assert.Greater(t, result.OverallConfidence, 0)
}

func TestProcess_HintOverridesClassifier(t *testing.T) {
	eng := New(Config{})
	result := eng.Process(domain.ScanInput{
		RawText:          aadhaarScanText,
		DocumentTypeHint: domain.DocTypePAN,
	})

	// Extraction follows the hint; the classifier verdict is still reported.
	assert.Equal(t, domain.DocTypePAN, result.DocumentType)
	assert.Equal(t, domain.DocTypeAadhaar, result.Classification.DocumentType)
	require.Len(t, result.Fields, len(extractor.FieldSchema[domain.DocTypePAN]))
}

func TestProcess_MarksheetTablePenalty(t *testing.T) {
	// A marksheet with no parseable subject rows gets the 60% haircut.
	text := `BOARD OF SECONDARY EDUCATION
SECONDARY SCHOOL EXAMINATION held in March-2023
REGULAR
CERTIFIED THAT PRIYA REDDY
FATHER'S NAME RAVI REDDY
MOTHER'S NAME LAKSHMI REDDY
Date of Birth: 14/06/2008
ROLL NO: 12345678`

	eng := New(Config{})
	result := eng.Process(domain.ScanInput{RawText: text})

	require.Equal(t, domain.DocTypeMarksheet, result.DocumentType)
	require.NotNil(t, result.Metadata.TablePenalty)

	penalty := result.Metadata.TablePenalty
	assert.True(t, penalty.Applied)
	assert.Equal(t, 0, penalty.TableCount)
	assert.Equal(t, penalty.PenalizedConfidence, result.OverallConfidence)
	assert.Less(t, result.OverallConfidence, penalty.OriginalConfidence)
}

func TestProcess_UnknownDocument(t *testing.T) {
	eng := New(Config{})
	result := eng.Process(domain.ScanInput{RawText: "lorem ipsum dolor"})

	assert.Equal(t, domain.DocTypeUnknown, result.DocumentType)
	assert.Empty(t, result.Fields)
	assert.Equal(t, 0, result.OverallConfidence)
	assert.Equal(t, 0.0, result.Metadata.CoverageRatio)
	assert.True(t, result.Metadata.SuggestRescan)
}

func TestProcess_Deterministic(t *testing.T) {
	eng := New(Config{})
	input := domain.ScanInput{
		RawText:           aadhaarScanText,
		OCRWordStats:      &domain.OCRWordStats{Average: 84.3},
		ImageQualityScore: floatPtr(62.5),
	}

	first := eng.Process(input)
	second := eng.Process(input)

	assert.Equal(t, first, second)
}

func TestProcess_PreviewTruncation(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("line\n")
	}

	eng := New(Config{PreviewLines: 10})
	result := eng.Process(domain.ScanInput{RawText: b.String()})

	assert.Len(t, strings.Split(result.RawTextPreview, "\n"), 10)
}

func TestNormalizeToSchema_KeepsExtras(t *testing.T) {
	extra := "X"
	fields := normalizeToSchema(domain.DocTypePAN, map[string]*string{
		"pan":          &extra,
		"husband_name": &extra,
	})

	assert.Len(t, fields, len(extractor.FieldSchema[domain.DocTypePAN])+1)
	assert.Contains(t, fields, "husband_name")
	assert.Contains(t, fields, "dob")
}
