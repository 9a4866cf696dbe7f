package confidence

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	aadhaarStrict = regexp.MustCompile(`^\d{12}$`)
	aadhaarLoose  = regexp.MustCompile(`^\d{10,14}$`)
	panStrict     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	panLoose      = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	voterStrict   = regexp.MustCompile(`^[A-Z]{3,4}[0-9]{6,10}$`)
	voterLoose    = regexp.MustCompile(`^[A-Z0-9]{9,15}$`)
	dlStrict      = regexp.MustCompile(`^[A-Z]{2}[0-9O]{6,20}$`)
	dlStatePrefix = regexp.MustCompile(`[A-Z]{2}`)
	dlDigitRun    = regexp.MustCompile(`\d{6,}`)
	mobileStrict  = regexp.MustCompile(`^[6-9]\d{9}$`)
	mobileLoose   = regexp.MustCompile(`^\d{10}$`)
	rollStrict    = regexp.MustCompile(`^\d{7,12}$`)
	rollLoose     = regexp.MustCompile(`^\d{5,15}$`)
	dateShape     = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{4}$`)
	dateSeparator = regexp.MustCompile(`[/-]`)
	nameNoise     = regexp.MustCompile(`[|_\[\]{}]`)
	letterAny     = regexp.MustCompile(`[A-Za-z]`)
	digitAny      = regexp.MustCompile(`\d`)
	schoolKeyword = regexp.MustCompile(`(?i)\b(SCHOOL|COLLEGE|INSTITUTE|ACADEMY|UNIVERSITY)\b`)
	yearStrict    = regexp.MustCompile(`^(19|20)\d{2}$`)
	yearLoose     = regexp.MustCompile(`^\d{4}$`)
)

var nameFields = map[string]bool{
	"name": true, "father_name": true, "mother_name": true, "student_name": true,
}

var dateFields = map[string]bool{
	"dob": true, "issue_date": true, "valid_till": true,
}

// PatternConfidence scores a field value's shape plausibility 0-100. A value
// matching the strict format beats one matching only the loose superset,
// which beats a non-match; empty values fail closed to 0.
func PatternConfidence(fieldName string, value *string) int {
	if value == nil {
		return 0
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return 0
	}

	var conf float64
	switch {
	case fieldName == "aadhaar_number":
		compact := strings.ReplaceAll(v, " ", "")
		switch {
		case aadhaarStrict.MatchString(compact):
			conf = 0.98
		case aadhaarLoose.MatchString(compact):
			conf = 0.75
		default:
			conf = 0.40
		}

	case fieldName == "pan":
		switch {
		case panStrict.MatchString(v):
			conf = 0.98
		case panLoose.MatchString(v):
			conf = 0.70
		default:
			conf = 0.35
		}

	case fieldName == "voter_id":
		switch {
		case voterStrict.MatchString(v):
			conf = 0.95
		case voterLoose.MatchString(v):
			conf = 0.65
		default:
			conf = 0.40
		}

	case fieldName == "dl_number":
		switch {
		case dlStrict.MatchString(v):
			conf = 0.95
		case dlStatePrefix.MatchString(v) && dlDigitRun.MatchString(v):
			conf = 0.75
		default:
			conf = 0.45
		}

	case fieldName == "mobile":
		switch {
		case mobileStrict.MatchString(v):
			conf = 0.97
		case mobileLoose.MatchString(v):
			conf = 0.65
		default:
			conf = 0.35
		}

	case fieldName == "roll_no":
		switch {
		case rollStrict.MatchString(v):
			conf = 0.92
		case rollLoose.MatchString(v):
			conf = 0.75
		default:
			conf = 0.50
		}

	case dateFields[fieldName]:
		conf = datePatternConfidence(v)

	case fieldName == "gender":
		switch strings.ToLower(v) {
		case "male", "female", "transgender", "m", "f":
			conf = 0.99
		default:
			conf = 0.50
		}

	case nameFields[fieldName]:
		conf = namePatternConfidence(v)

	case fieldName == "address":
		conf = addressPatternConfidence(v)

	case fieldName == "school_name":
		switch {
		case len(v) < 5:
			conf = 0.40
		case len(v) > 100:
			conf = 0.50
		case schoolKeyword.MatchString(v):
			conf = 0.90
		default:
			conf = 0.65
		}

	case fieldName == "cgpa":
		cgpa, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			conf = 0.30
		case cgpa >= 0 && cgpa <= 10:
			conf = 0.92
		case cgpa >= 0 && cgpa <= 100:
			conf = 0.65
		default:
			conf = 0.40
		}

	case fieldName == "year":
		switch {
		case yearStrict.MatchString(v):
			conf = 0.95
		case yearLoose.MatchString(v):
			conf = 0.65
		default:
			conf = 0.35
		}

	default:
		conf = 0.65
		if len(v) < 2 {
			conf = 0.40
		} else if len(v) > 100 {
			conf = 0.55
		}
	}

	return int(math.Round(conf * 100))
}

func datePatternConfidence(v string) float64 {
	if !dateShape.MatchString(v) {
		return 0.40
	}
	parts := dateSeparator.Split(v, -1)
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0.50
	}
	if day >= 1 && day <= 31 && month >= 1 && month <= 12 && year >= 1900 && year <= 2100 {
		return 0.95
	}
	return 0.60
}

func namePatternConfidence(v string) float64 {
	if len(v) < 3 {
		return 0.30
	}
	if len(v) > 50 {
		return 0.50
	}

	alphaCount := 0
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			alphaCount++
		}
	}
	alphaRatio := float64(alphaCount) / float64(len([]rune(v)))

	var conf float64
	switch {
	case alphaRatio >= 0.90:
		wordCount := len(strings.Fields(v))
		switch {
		case wordCount >= 2 && wordCount <= 5:
			conf = 0.88
		case wordCount == 1:
			conf = 0.75
		default:
			conf = 0.70
		}
	case alphaRatio >= 0.70:
		conf = 0.60
	default:
		conf = 0.35
	}

	if nameNoise.MatchString(v) {
		conf *= 0.75
	}
	for _, word := range strings.Fields(v) {
		if len(word) == 1 {
			conf *= 0.85
			break
		}
	}
	return conf
}

func addressPatternConfidence(v string) float64 {
	if len(v) < 10 {
		return 0.40
	}
	if len(v) > 200 {
		return 0.55
	}
	hasLetters := letterAny.MatchString(v)
	hasNumbers := digitAny.MatchString(v)
	hasComma := strings.Contains(v, ",")
	switch {
	case hasLetters && hasNumbers && hasComma:
		return 0.85
	case hasLetters && (hasNumbers || hasComma):
		return 0.75
	case hasLetters:
		return 0.60
	default:
		return 0.40
	}
}
