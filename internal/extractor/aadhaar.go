package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	aadhaarGroupsPattern = regexp.MustCompile(`\b(\d{4})\s*(\d{4})\s*(\d{4})\b`)
	aadhaarDatePattern   = regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})\b`)
	genderTokenPattern   = regexp.MustCompile(`(?i)\b(male|female|transgender)\b`)
	mobilePattern        = regexp.MustCompile(`(?:^|[^\d])([6-9]\d{9})(?:[^\d]|$)`)

	// "KOTTANGI CHARAN C/O: Kottangi Satya Ramakrishna" on a single line.
	relationInlinePattern = regexp.MustCompile(`(?i)^([A-Z\s]{5,30})\s+(C/O|D/O|S/O|W/O)[^\w]*([A-Za-z\s]{5,50})$`)
	relationValuePattern  = regexp.MustCompile(`(?i)(?:C/O|D/O|S/O|W/O)[^\w]*([A-Za-z\s]{5,50})`)
	relationTokenPattern  = regexp.MustCompile(`(?i)(C/O|D/O|S/O|W/O)`)
	upperNameLinePattern  = regexp.MustCompile(`^[A-Z\s]{5,30}$`)

	nonLetterPattern      = regexp.MustCompile(`[^A-Za-z\s]`)
	addrCharPattern       = regexp.MustCompile(`[^A-Za-z0-9\s,\-./]`)
	houseNumberPattern    = regexp.MustCompile(`\d+[-/]\d+`)
	houseLabelPattern     = regexp.MustCompile(`flat no|house no|building`)
	addrStopPattern       = regexp.MustCompile(`(?i)\b(VTC|PO|District|State|PIN|Mobile|Aadhaar|VID)\b`)
	vtcPattern            = regexp.MustCompile(`(?i)\bVTC\b`)
)

// addressMarkers start free-text address collection when seen on a line.
var addressMarkers = []string{"road", "street", "flat", "house", "building", "apartment", "near", "opposite"}

func extractAadhaar(text string, _ []domain.SpatialBox) Extraction {
	fields := newFields(domain.DocTypeAadhaar)
	lines := splitLines(text)
	if len(lines) == 0 {
		return Extraction{Fields: fields}
	}

	for _, ln := range lines {
		if m := aadhaarGroupsPattern.FindStringSubmatch(ln); m != nil {
			setField(fields, "aadhaar_number", m[1]+m[2]+m[3])
			break
		}
	}

	for _, ln := range lines {
		if m := aadhaarDatePattern.FindStringSubmatch(ln); m != nil {
			setField(fields, "dob", m[1])
			break
		}
	}

	for _, ln := range lines {
		if m := genderTokenPattern.FindStringSubmatch(ln); m != nil {
			setField(fields, "gender", titleCase(m[1]))
			break
		}
	}

	for _, ln := range lines {
		if m := mobilePattern.FindStringSubmatch(ln); m != nil {
			setField(fields, "mobile", m[1])
			break
		}
	}

	extractAadhaarNames(lines, fields)
	extractAadhaarAddress(lines, fields)

	return Extraction{Fields: fields}
}

// extractAadhaarNames resolves name and father_name from the C/O-style
// relation lines, either inline or split across two lines.
func extractAadhaarNames(lines []string, fields map[string]*string) {
	for i, line := range lines {
		if m := relationInlinePattern.FindStringSubmatch(line); m != nil {
			namePart := normalizeName(m[1])
			fatherPart := normalizeName(m[3])
			if len(namePart) > 3 {
				setField(fields, "name", titleCase(namePart))
			}
			if len(fatherPart) > 3 {
				setField(fields, "father_name", titleCase(fatherPart))
			}
			return
		}

		// Name on one line, relation marker on the next.
		if i+1 < len(lines) {
			currentClean := strings.TrimSpace(nonLetterPattern.ReplaceAllString(lines[i], " "))
			nextClean := strings.TrimSpace(nonLetterPattern.ReplaceAllString(lines[i+1], " "))
			if upperNameLinePattern.MatchString(currentClean) && relationTokenPattern.MatchString(nextClean) {
				setField(fields, "name", titleCase(currentClean))
				if m := relationValuePattern.FindStringSubmatch(lines[i+1]); m != nil {
					setField(fields, "father_name", titleCase(normalizeName(m[1])))
				}
				return
			}
		}
	}
}

// extractAadhaarAddress collects the free-text address block: start at the
// first address marker or house-number shape, stop at the first
// region/identifier line, and strip out already-extracted names.
func extractAadhaarAddress(lines []string, fields map[string]*string) {
	var addressLines []string
	started := false

	for _, line := range lines {
		lower := strings.ToLower(line)

		if containsMarker(lower) || houseNumberPattern.MatchString(line) || houseLabelPattern.MatchString(lower) {
			started = true
		}

		if started && (addrStopPattern.MatchString(line) ||
			strings.Contains(lower, "government") || strings.Contains(lower, "unique identification")) {
			break
		}

		if started {
			clean := cleanAddressLine(line, fields)
			if len(clean) > 5 && !containsLine(addressLines, clean) {
				addressLines = append(addressLines, clean)
			}
		}
	}

	// Fall back to whatever sits between the name line and the VTC line.
	if len(addressLines) == 0 && fields["name"] != nil {
		nameIdx, vtcIdx := -1, -1
		nameUpper := strings.ToUpper(*fields["name"])
		for i, line := range lines {
			if strings.Contains(strings.ToUpper(line), nameUpper) {
				nameIdx = i
			}
			if vtcPattern.MatchString(line) {
				vtcIdx = i
				break
			}
		}
		if nameIdx >= 0 && vtcIdx > nameIdx {
			for i := nameIdx + 1; i < vtcIdx; i++ {
				clean := strings.TrimSpace(multiSpacePattern.ReplaceAllString(addrCharPattern.ReplaceAllString(lines[i], " "), " "))
				if containsFieldValue(clean, fields["name"]) || containsFieldValue(clean, fields["father_name"]) {
					continue
				}
				if len(clean) > 5 && !containsLine(addressLines, clean) {
					addressLines = append(addressLines, clean)
				}
			}
		}
	}

	if len(addressLines) > 0 {
		setField(fields, "address", strings.Join(addressLines, ", "))
	}
}

func cleanAddressLine(line string, fields map[string]*string) string {
	clean := addrCharPattern.ReplaceAllString(line, " ")
	clean = multiSpacePattern.ReplaceAllString(clean, " ")
	if fields["name"] != nil {
		clean = removeInsensitive(clean, *fields["name"])
	}
	if fields["father_name"] != nil {
		clean = removeInsensitive(clean, *fields["father_name"])
	}
	return strings.Trim(clean, " ,.-")
}

func containsMarker(lower string) bool {
	for _, marker := range addressMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}

func containsFieldValue(s string, val *string) bool {
	return val != nil && strings.Contains(strings.ToUpper(s), strings.ToUpper(*val))
}
