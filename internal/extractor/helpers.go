package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	lineBreakPattern    = regexp.MustCompile(`[\r\n]+`)
	edgePunctPattern    = regexp.MustCompile(`^[\s,.:;_\-]+|[\s,.:;_\-]+$`)
	multiSpacePattern   = regexp.MustCompile(`\s+`)
	trailingSepPattern  = regexp.MustCompile(`[:\-]+$`)
)

// splitLines splits text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, ln := range lineBreakPattern.Split(text, -1) {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// cleanValue strips leading/trailing punctuation noise from an extracted value.
func cleanValue(val string) string {
	return strings.TrimSpace(edgePunctPattern.ReplaceAllString(val, ""))
}

// normalizeName collapses whitespace and strips trailing separators.
func normalizeName(s string) string {
	s = strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
	return strings.TrimSpace(trailingSepPattern.ReplaceAllString(s, ""))
}

// titleCase lowercases a string and capitalizes the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// capitalize uppercases only the first letter.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func setField(fields map[string]*string, key, val string) {
	v := val
	fields[key] = &v
}

func anyResolved(fields map[string]*string) bool {
	for _, v := range fields {
		if v != nil {
			return true
		}
	}
	return false
}

// removeInsensitive deletes every case-insensitive occurrence of sub from s.
func removeInsensitive(s, sub string) string {
	if sub == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerSub := strings.ToLower(sub)
	var b strings.Builder
	for {
		idx := strings.Index(lower, lowerSub)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		s = s[idx+len(sub):]
		lower = lower[idx+len(lowerSub):]
	}
}

// boxVerticalTolerance is the px-equivalent window for matching a value box to
// its label box.
const boxVerticalTolerance = 40

// rightOf selects the nearest box whose left edge is right of the label's left
// edge and whose vertical center is within tolerance of the label's; ties go
// to the leftmost. Returns the cleaned text, or "" when nothing qualifies.
func rightOf(label domain.SpatialBox, boxes []domain.SpatialBox) string {
	labelCenter := (label.Box[1] + label.Box[3]) / 2
	bestX := 0
	bestText := ""
	for _, other := range boxes {
		if other == label || other.Text == "" {
			continue
		}
		center := (other.Box[1] + other.Box[3]) / 2
		diff := center - labelCenter
		if diff < 0 {
			diff = -diff
		}
		if other.Box[0] > label.Box[0] && diff < boxVerticalTolerance {
			if bestText == "" || other.Box[0] < bestX {
				bestX = other.Box[0]
				bestText = other.Text
			}
		}
	}
	return cleanValue(bestText)
}
