package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	gradePattern       = regexp.MustCompile(`(?i)\bA[1-4]\b|\bA1\b|\bA2\b|\bB\b|\bC\b|\bD\b|\bE\b|\bF\b`)
	marksPattern       = regexp.MustCompile(`\b([0-9]{1,3})(?:\.\d+)?\b`)
	subjectStopWords   = regexp.MustCompile(`\b(FIRST|SECOND|THIRD|FOURTH|FIFTH|LANGUAGE|CURRICULAR|CO-CURRICULAR|AREA|VALUE|EDUCATION|WORK|&|AND|THE|SUBJECT|SUBJECTS|GRADE|POINT|CODE)\b`)
	subjectPunctuation = regexp.MustCompile(`[():\-|,.\\/]`)
	alphaTokenPattern  = regexp.MustCompile(`^[A-Za-z]+$`)
)

// cleanSubject reduces a raw subject cell to its most significant token.
func cleanSubject(subject string) string {
	if subject == "" {
		return ""
	}
	s := strings.ToUpper(subject)
	s = subjectStopWords.ReplaceAllString(s, " ")
	s = subjectPunctuation.ReplaceAllString(s, " ")
	s = strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
	tokens := strings.Fields(s)
	for i := len(tokens) - 1; i >= 0; i-- {
		if len(tokens[i]) >= 3 && alphaTokenPattern.MatchString(tokens[i]) {
			return titleCase(tokens[i])
		}
	}
	if s == "" {
		return ""
	}
	return titleCase(s)
}

// parseSubjectTable scans sliding 4-line windows for a subject + grade + marks
// triple, then falls back to the vertical layout (subject line, grade line,
// marks line). Rows are deduplicated on (subject, grade, marks).
func parseSubjectTable(lines []string) []domain.SubjectRow {
	var rows []domain.SubjectRow
	if len(lines) == 0 {
		return rows
	}

	n := len(lines)
	used := make(map[int]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}

		end := i + 4
		if end > n {
			end = n
		}
		window := strings.Join(lines[i:end], " ")
		upWindow := strings.ToUpper(window)

		gLoc := gradePattern.FindStringIndex(upWindow)
		mMatch := marksPattern.FindStringSubmatch(upWindow)

		if gLoc != nil && mMatch != nil {
			subject := cleanSubject(strings.TrimSpace(window[:gLoc[0]]))
			if subject != "" {
				rows = append(rows, domain.SubjectRow{
					Subject: subject,
					Grade:   strings.TrimSpace(upWindow[gLoc[0]:gLoc[1]]),
					Marks:   strings.TrimSpace(mMatch[1]),
				})
				for k := i; k < end; k++ {
					used[k] = true
				}
				continue
			}
		}

		if i+2 < n {
			gNext := gradePattern.FindString(strings.ToUpper(lines[i+1]))
			mNext := marksPattern.FindStringSubmatch(strings.ToUpper(lines[i+2]))
			if gNext != "" && mNext != nil {
				subject := cleanSubject(lines[i])
				if subject != "" {
					rows = append(rows, domain.SubjectRow{
						Subject: subject,
						Grade:   strings.TrimSpace(gNext),
						Marks:   strings.TrimSpace(mNext[1]),
					})
					used[i] = true
					used[i+1] = true
					used[i+2] = true
				}
			}
		}
	}

	seen := make(map[string]bool, len(rows))
	var dedup []domain.SubjectRow
	for _, r := range rows {
		key := strings.ToUpper(r.Subject) + "\x00" + r.Grade + "\x00" + r.Marks
		if seen[key] {
			continue
		}
		seen[key] = true
		dedup = append(dedup, r)
	}
	return dedup
}
