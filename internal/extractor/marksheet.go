package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	schoolLabelLine    = regexp.MustCompile(`(?i)^SCHOOL\s*[:\-]?\s*(.+)`)
	institutionLine    = regexp.MustCompile(`(?i)\b(SCHOOL|INSTITUTE|COLLEGE)\b`)
	rollToken          = regexp.MustCompile(`(?i)\bROLL\b`)
	rollNumberLine     = regexp.MustCompile(`(?i)\bROLL\s*(?:NO)?\.?\s*[:\-]?\s*([0-9]{7,12})\b`)
	bareRollNumber     = regexp.MustCompile(`^[0-9]{7,12}$`)
	msDOBLabelled      = regexp.MustCompile(`(?i)\b(?:DOB|DATE\s*OF\s*BIRTH)[\s:\-]*([0-3]?\d[/\-.][01]?\d[/\-.]\d{4})\b`)
	msDOBBare          = regexp.MustCompile(`\b([0-3]?\d[/\-.][01]?\d[/\-.]\d{4})\b`)
	examYearLine       = regexp.MustCompile(`(?i)EXAMINATION\s+held\s+in\s+\w+-?(20\d{2})`)
	cgpaPattern        = regexp.MustCompile(`(?i)(CGPA|GPA|GRADE\s*POINT)[\s.:;\-]*([0-9]{1,2}\.[0-9]{1,2})`)
	candidateAnchor    = regexp.MustCompile(`(?i)\b(REGULAR|ROLL|PC/)`)
	certifiedThatLine  = regexp.MustCompile(`(?i)CERTIFIED\s+THAT\s+([A-Z\s]+)`)
	fatherNameLabelled = regexp.MustCompile(`(?i)FATHER'?S\s+NAME\s+([A-Z\s]+)`)
	motherNameLabelled = regexp.MustCompile(`(?i)MOTHER'?S\s+NAME\s+([A-Z\s]+)`)
)

func extractMarksheet(text string, _ []domain.SpatialBox) Extraction {
	fields := newFields(domain.DocTypeMarksheet)
	lines := splitLines(text)

	for _, ln := range lines {
		if schoolLabelLine.MatchString(ln) {
			setField(fields, "school_name", strings.TrimSpace(ln))
			break
		}
	}
	if fields["school_name"] == nil {
		for _, ln := range lines {
			if institutionLine.MatchString(ln) {
				setField(fields, "school_name", strings.TrimSpace(ln))
				break
			}
		}
	}

	for i, ln := range lines {
		if !rollToken.MatchString(ln) {
			continue
		}
		if m := rollNumberLine.FindStringSubmatch(ln); m != nil && !strings.Contains(m[1], "/") {
			setField(fields, "roll_no", m[1])
			break
		}
		if i+1 < len(lines) && bareRollNumber.MatchString(strings.TrimSpace(lines[i+1])) {
			setField(fields, "roll_no", strings.TrimSpace(lines[i+1]))
			break
		}
	}

	if m := msDOBLabelled.FindStringSubmatch(text); m != nil {
		setField(fields, "dob", m[1])
	} else if m := msDOBBare.FindStringSubmatch(text); m != nil {
		setField(fields, "dob", m[1])
	}

	for _, ln := range lines {
		if m := examYearLine.FindStringSubmatch(ln); m != nil {
			setField(fields, "year", m[1])
			break
		}
	}

	if m := cgpaPattern.FindStringSubmatch(text); m != nil {
		setField(fields, "cgpa", m[2])
	}

	// Candidate block: names sit on the three lines after the roll/regular
	// anchor, each with or without its printed label.
	for i, line := range lines {
		if !candidateAnchor.MatchString(line) {
			continue
		}
		if i+1 < len(lines) {
			if m := certifiedThatLine.FindStringSubmatch(lines[i+1]); m != nil {
				setField(fields, "student_name", strings.TrimSpace(m[1]))
			} else {
				setField(fields, "student_name", strings.TrimSpace(lines[i+1]))
			}
		}
		if i+2 < len(lines) {
			if m := fatherNameLabelled.FindStringSubmatch(lines[i+2]); m != nil {
				setField(fields, "father_name", strings.TrimSpace(m[1]))
			} else {
				setField(fields, "father_name", strings.TrimSpace(lines[i+2]))
			}
		}
		if i+3 < len(lines) {
			if m := motherNameLabelled.FindStringSubmatch(lines[i+3]); m != nil {
				setField(fields, "mother_name", strings.TrimSpace(m[1]))
			} else {
				setField(fields, "mother_name", strings.TrimSpace(lines[i+3]))
			}
		}
		break
	}

	return Extraction{Fields: fields, Table: parseSubjectTable(lines)}
}
