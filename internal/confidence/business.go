package confidence

import (
	"regexp"
	"strings"
	"unicode"
)

var specialCharPattern = regexp.MustCompile(`[^A-Za-z0-9\s,.\-/()]`)

// digitRequiredFields must contain at least one digit to be plausible.
var digitRequiredFields = map[string]bool{
	"aadhaar_number": true, "pan": true, "mobile": true, "roll_no": true,
}

// BusinessConfidence starts at 100 and deducts for shapes real documents do
// not produce. Empty values fail closed to 0; the floor is 0.
func BusinessConfidence(fieldName string, value *string) int {
	if value == nil {
		return 0
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return 0
	}

	score := 100

	if len(v) == 1 {
		score -= 40
	}
	if len(v) > 200 {
		score -= 30
	}

	if n := len(specialCharPattern.FindAllString(v, -1)); n > 0 {
		penalty := n * 5
		if penalty > 30 {
			penalty = 30
		}
		score -= penalty
	}

	if nameFields[fieldName] && (allUpper(v) || allLower(v)) {
		score -= 10
	}

	if hasRepeatedRun(v, 5) {
		score -= 30
	}

	if digitRequiredFields[fieldName] && !digitAny.MatchString(v) {
		score -= 50
	}

	if score < 0 {
		score = 0
	}
	return score
}

func allUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func allLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// hasRepeatedRun reports whether any rune repeats n or more times in a row.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
