package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	panIDPattern       = regexp.MustCompile(`\b([A-Z]{5}[0-9]{4}[A-Z])\b`)
	panDOBLabelPattern = regexp.MustCompile(`(DOB|DATE OF BIRTH)[:\s]*([0-9]{2}[/-][0-9]{2}[/-][0-9]{4})`)
	panDatePattern     = regexp.MustCompile(`\b[0-9]{2}[/-][0-9]{2}[/-][0-9]{4}\b`)
	panNameLine        = regexp.MustCompile(`(?i)NAME\s*[:\-]?\s*(.+)`)
	panFatherLine      = regexp.MustCompile(`(?i)FATHER'?S?\s*NAME\s*[:\-]?\s*(.+)`)
)

func extractPAN(text string, _ []domain.SpatialBox) Extraction {
	fields := newFields(domain.DocTypePAN)
	lines := splitLines(text)
	upper := strings.ToUpper(text)

	if m := panIDPattern.FindStringSubmatch(upper); m != nil {
		setField(fields, "pan", m[1])
	}

	if m := panDOBLabelPattern.FindStringSubmatch(upper); m != nil {
		setField(fields, "dob", m[2])
	} else if m := panDatePattern.FindString(text); m != "" {
		setField(fields, "dob", m)
	}

	for i, ln := range lines {
		up := strings.ToUpper(ln)
		if strings.Contains(up, "NAME") && fields["name"] == nil {
			if m := panNameLine.FindStringSubmatch(ln); m != nil {
				if v := normalizeName(m[1]); v != "" {
					setField(fields, "name", v)
				}
			} else if i+1 < len(lines) {
				if v := normalizeName(lines[i+1]); v != "" {
					setField(fields, "name", v)
				}
			}
		}
		if strings.Contains(up, "FATHER") && fields["father_name"] == nil {
			if m := panFatherLine.FindStringSubmatch(ln); m != nil {
				if v := normalizeName(m[1]); v != "" {
					setField(fields, "father_name", v)
				}
			} else if i+1 < len(lines) {
				if v := normalizeName(lines[i+1]); v != "" {
					setField(fields, "father_name", v)
				}
			}
		}
	}

	return Extraction{Fields: fields}
}
