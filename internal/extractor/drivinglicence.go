package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	dlIDPattern        = regexp.MustCompile(`\b([A-Z]{2}[0O]?\d{6,20})\b`)
	dlIDLoosePattern   = regexp.MustCompile(`\b([A-Z]{2}[0O]?\s*\d[\d\s]{5,20})\b`)
	dlNameToken        = regexp.MustCompile(`(?i)\bNAME\b`)
	dlNameLine         = regexp.MustCompile(`(?i)Name\s*[:\-]?\s*(.+)`)
	dlSignatureNoise   = regexp.MustCompile(`(?i)Holder.?s Signature`)
	dlRelationToken    = regexp.MustCompile(`(?i)\b(S/O|D/O|W/O|FATHER)\b`)
	dlRelationLine     = regexp.MustCompile(`(?i)(?:S/O|D/O|W/O|FATHER'?S NAME)[:\-]?\s*(.+)`)
	dlAddressPrefix    = regexp.MustCompile(`(?i).*ADDRESS\s*[:\-]?\s*`)
	dlDatePattern      = regexp.MustCompile(`\d{2}[/-]\d{2}[/-]\d{4}`)
)

// dlDateLabels are tried in order; each labelled date is consumed before the
// remaining dates fill the remaining slots in text order.
var dlDateLabels = []struct {
	pattern *regexp.Regexp
	field   string
}{
	{regexp.MustCompile(`(?i)(?:Date of Birth|DOB)[\s:]*(\d{2}[/-]\d{2}[/-]\d{4})`), "dob"},
	{regexp.MustCompile(`(?i)(?:Issue Date|Date of First Issue)[\s:]*(\d{2}[/-]\d{2}[/-]\d{4})`), "issue_date"},
	{regexp.MustCompile(`(?i)(?:Validity|Valid Till)[\s:]*(\d{2}[/-]\d{2}[/-]\d{4})`), "valid_till"},
}

func extractDrivingLicence(text string, _ []domain.SpatialBox) Extraction {
	fields := newFields(domain.DocTypeDrivingLicence)
	if strings.TrimSpace(text) == "" {
		return Extraction{Fields: fields}
	}
	lines := splitLines(text)

	for _, ln := range lines {
		if m := dlIDPattern.FindStringSubmatch(strings.ReplaceAll(ln, " ", "")); m != nil {
			setField(fields, "dl_number", m[1])
			break
		}
	}
	if fields["dl_number"] == nil {
		if m := dlIDLoosePattern.FindStringSubmatch(strings.Join(lines, " ")); m != nil {
			setField(fields, "dl_number", strings.ReplaceAll(m[1], " ", ""))
		}
	}

	for _, ln := range lines {
		if dlNameToken.MatchString(ln) {
			if m := dlNameLine.FindStringSubmatch(ln); m != nil {
				if v := normalizeName(dlSignatureNoise.ReplaceAllString(m[1], "")); v != "" {
					setField(fields, "name", v)
				}
				break
			}
		}
	}

	for _, ln := range lines {
		if dlRelationToken.MatchString(ln) {
			if m := dlRelationLine.FindStringSubmatch(ln); m != nil {
				if v := normalizeName(m[1]); v != "" {
					setField(fields, "father_name", v)
				}
				break
			}
		}
	}

	var addrLines []string
	for i, ln := range lines {
		if strings.Contains(strings.ToUpper(ln), "ADDRESS") {
			if part := strings.TrimSpace(dlAddressPrefix.ReplaceAllString(ln, "")); part != "" {
				addrLines = append(addrLines, part)
			}
			for j := i + 1; j < len(lines); j++ {
				addrLines = append(addrLines, lines[j])
			}
			break
		}
	}
	if len(addrLines) > 0 {
		setField(fields, "address", strings.Join(addrLines, ", "))
	}

	assignDLDates(text, fields)

	return Extraction{Fields: fields}
}

func assignDLDates(text string, fields map[string]*string) {
	all := dlDatePattern.FindAllString(text, -1)
	var unique []string
	seen := make(map[string]bool)
	for _, d := range all {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}

	for _, labelled := range dlDateLabels {
		if m := labelled.pattern.FindStringSubmatch(text); m != nil {
			setField(fields, labelled.field, m[1])
			unique = removeDate(unique, m[1])
		}
	}

	if fields["issue_date"] == nil && len(unique) > 0 {
		setField(fields, "issue_date", unique[0])
		unique = unique[1:]
	}
	if fields["valid_till"] == nil && len(unique) > 0 {
		setField(fields, "valid_till", unique[0])
	}
}

func removeDate(dates []string, date string) []string {
	for i, d := range dates {
		if d == date {
			return append(dates[:i:i], dates[i+1:]...)
		}
	}
	return dates
}
