package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drishti/internal/domain"
)

func TestCleanSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FIRST LANGUAGE TELUGU (15)", "Telugu"},
		{"MATHEMATICS", "Mathematics"},
		{"SCIENCE & TECHNOLOGY", "Technology"},
		{"", ""},
		{"A1 92", "A1 92"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSubject(tt.in), "cleanSubject(%q)", tt.in)
	}
}

func TestParseSubjectTable_Horizontal(t *testing.T) {
	lines := []string{"TELUGU A1 92"}

	rows := parseSubjectTable(lines)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.SubjectRow{Subject: "Telugu", Grade: "A1", Marks: "92"}, rows[0])
}

func TestParseSubjectTable_WindowConsumption(t *testing.T) {
	// A matched window consumes all four of its lines, so densely packed
	// one-line rows collapse: only the window anchors survive.
	lines := []string{
		"TELUGU A1 92",
		"HINDI A2 85",
		"ENGLISH B 78",
		"MATHEMATICS A1 95",
		"SCIENCE A2 88",
	}

	rows := parseSubjectTable(lines)

	require.Len(t, rows, 2)
	assert.Equal(t, "Telugu", rows[0].Subject)
	assert.Equal(t, "Science", rows[1].Subject)
}

func TestParseSubjectTable_VerticalFallback(t *testing.T) {
	// The horizontal pass sees the "(B)" token as a grade with an empty
	// subject; the vertical layout (subject, grade, marks) still resolves.
	lines := []string{"(B) TELUGU", "A1", "92"}

	rows := parseSubjectTable(lines)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.SubjectRow{Subject: "Telugu", Grade: "A1", Marks: "92"}, rows[0])
}

func TestParseSubjectTable_Dedup(t *testing.T) {
	lines := []string{"TELUGU A1 92", ".", ".", ".", "TELUGU A1 92"}

	rows := parseSubjectTable(lines)

	require.Len(t, rows, 1)
}

func TestParseSubjectTable_Empty(t *testing.T) {
	assert.Empty(t, parseSubjectTable(nil))
	assert.Empty(t, parseSubjectTable([]string{"no grades here"}))
}
