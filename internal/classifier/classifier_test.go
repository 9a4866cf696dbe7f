package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drishti/internal/domain"
)

const panCardText = `INCOME TAX DEPARTMENT
GOVT. OF INDIA
PERMANENT ACCOUNT NUMBER CARD
ABCDE1234F
NAME
RAHUL SHARMA
FATHER'S NAME
SURESH SHARMA
DATE OF BIRTH
12/05/1990`

const aadhaarCardText = `GOVERNMENT OF INDIA
UNIQUE IDENTIFICATION AUTHORITY OF INDIA
RAHUL SHARMA
S/O SURESH SHARMA
DOB: 12/05/1990
MALE
1234 5678 9012
help@uidai.gov.in`

func TestScoreWeighted_PAN(t *testing.T) {
	result := ScoreWeighted(panCardText)

	assert.Equal(t, domain.DocTypePAN, result.DocumentType)
	assert.Equal(t, 95, result.Confidence)
	// pan number +50, INCOME TAX +40, PERMANENT ACCOUNT +30, father label +15, date +10
	assert.Equal(t, 145, result.Scores[domain.DocTypePAN])
	// INCOME TAX penalty floors Aadhaar at zero
	assert.Equal(t, 0, result.Scores[domain.DocTypeAadhaar])
}

func TestScoreWeighted_Aadhaar(t *testing.T) {
	result := ScoreWeighted(aadhaarCardText)

	assert.Equal(t, domain.DocTypeAadhaar, result.DocumentType)
	assert.Equal(t, 95, result.Confidence)
	// grouped number +50, UIDAI +40, UNIQUE IDENTIFICATION +25, GOVERNMENT OF INDIA +20, S/O +15
	assert.Equal(t, 150, result.Scores[domain.DocTypeAadhaar])
}

func TestScoreWeighted_EmptyText(t *testing.T) {
	result := ScoreWeighted("   \n  ")

	assert.Equal(t, domain.DocTypeUnknown, result.DocumentType)
	assert.Equal(t, 0, result.Confidence)
	for _, dt := range domain.DocumentTypes {
		assert.Equal(t, 0, result.Scores[dt])
	}
}

func TestScoreWeighted_MidRangeCompression(t *testing.T) {
	// Only the voter number pattern fires: raw score 50 maps to confidence 50.
	result := ScoreWeighted("XYZ1234567")

	assert.Equal(t, domain.DocTypeVoterID, result.DocumentType)
	assert.Equal(t, 50, result.Scores[domain.DocTypeVoterID])
	assert.Equal(t, 50, result.Confidence)
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.DocumentType
	}{
		{"pan number", "some text ABCDE1234F more", domain.DocTypePAN},
		{"income tax header", "INCOME TAX DEPARTMENT", domain.DocTypePAN},
		{"aadhaar needs number and keyword", "Aadhaar 1234 5678 9012", domain.DocTypeAadhaar},
		{"aadhaar number alone is not enough", "1234 5678 9012", domain.DocTypeUnknown},
		{"driving licence", "DRIVING LICENCE issued by RTO", domain.DocTypeDrivingLicence},
		{"voter", "ELECTION COMMISSION OF INDIA", domain.DocTypeVoterID},
		{"marksheet", "consolidated MARKS MEMO", domain.DocTypeMarksheet},
		{"empty", "", domain.DocTypeUnknown},
		{"noise", "lorem ipsum dolor", domain.DocTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchKeywords(tt.text))
		})
	}
}

func TestClassify_WeightedWinsAtHighConfidence(t *testing.T) {
	result := Classify(panCardText)

	assert.Equal(t, domain.DocTypePAN, result.DocumentType)
	assert.Equal(t, 95, result.Confidence)
}

func TestClassify_KeywordFallback(t *testing.T) {
	// Weighted scoring alone lands below 50 but the keyword pass is decisive.
	result := Classify("ELECTION COMMISSION OF INDIA")

	assert.Equal(t, domain.DocTypeVoterID, result.DocumentType)
	assert.Equal(t, 40, result.Confidence)
}

func TestClassify_WeightedMidConfidenceBeatsUnknown(t *testing.T) {
	// No keyword rule fires for a bare voter number; the weighted guess at
	// confidence 50 is still reported.
	result := Classify("XYZ1234567")

	assert.Equal(t, domain.DocTypeVoterID, result.DocumentType)
	assert.Equal(t, 50, result.Confidence)
}

func TestClassify_Unknown(t *testing.T) {
	result := Classify("lorem ipsum dolor")

	require.Equal(t, domain.DocTypeUnknown, result.DocumentType)
	assert.Equal(t, 0, result.Confidence)
	assert.NotNil(t, result.Scores)
}
