package extractor

import (
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	voterIDPattern      = regexp.MustCompile(`\b([A-Z]{3,4}[0-9]{6,10})\b`)
	epicLabelPattern    = regexp.MustCompile(`(?i)Epic no\.?\s*[:\-]?\s*([A-Z0-9]{6,20})`)
	voterNameLine       = regexp.MustCompile(`(?i)Name[ ,:/-]*([A-Za-z .'-]+)`)
	voterFatherLine     = regexp.MustCompile(`(?i)Father'?s Name\s*[:;+\-_]*\s*([A-Za-z .'-]+)`)
	voterDOBLabelled    = regexp.MustCompile(`(?i)Date of Birth[ /:]*([0-9]{2}[-/][0-9]{2}[-/][0-9]{4})`)
	voterDOBBare        = regexp.MustCompile(`([0-9]{2}[-/][0-9]{2}[-/][0-9]{4})`)
	voterGenderPattern  = regexp.MustCompile(`(?i)(Sex|Gender)\s*[:;+\-_]*\s*(Male|Female|Other)`)
	alphaWordPattern    = regexp.MustCompile(`^[A-Za-z]+$`)
)

// extractVoter resolves fields from spatial label/value boxes when a detector
// supplied them; box extraction is authoritative once any field resolves, and
// the regex pass runs only otherwise.
func extractVoter(text string, boxes []domain.SpatialBox) Extraction {
	fields := newFields(domain.DocTypeVoterID)

	if len(boxes) > 0 {
		for _, box := range boxes {
			label := strings.ToLower(box.Text)
			if label == "" {
				continue
			}
			switch {
			case strings.Contains(label, "name") && !strings.Contains(label, "father") && !strings.Contains(label, "husband"):
				fillFromBoxes(fields, "name", box, boxes)
			case strings.Contains(label, "father"):
				fillFromBoxes(fields, "father_name", box, boxes)
			case strings.Contains(label, "husband"):
				fillFromBoxes(fields, "husband_name", box, boxes)
			case strings.Contains(label, "birth"):
				fillFromBoxes(fields, "dob", box, boxes)
			case strings.Contains(label, "gender"):
				fillFromBoxes(fields, "gender", box, boxes)
			case strings.Contains(label, "epic no") || (strings.Contains(label, "epic") && strings.Contains(label, "no")):
				fillFromBoxes(fields, "voter_id", box, boxes)
			}
		}
		if anyResolved(fields) {
			return Extraction{Fields: fields}
		}
	}

	lines := splitLines(text)

	if m := voterIDPattern.FindStringSubmatch(text); m != nil {
		setField(fields, "voter_id", m[1])
	} else if m := epicLabelPattern.FindStringSubmatch(text); m != nil {
		setField(fields, "voter_id", m[1])
	}

	if m := voterNameLine.FindStringSubmatch(text); m != nil {
		if v := normalizeName(m[1]); v != "" {
			setField(fields, "name", v)
		}
	}

	for _, ln := range lines {
		m := voterFatherLine.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		var words []string
		for _, w := range strings.Fields(m[1]) {
			if alphaWordPattern.MatchString(w) && len(w) > 1 {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			if len(words) > 3 {
				words = words[:3]
			}
			setField(fields, "father_name", normalizeName(strings.Join(words, " ")))
			break
		}
	}

	if m := voterDOBLabelled.FindStringSubmatch(text); m != nil {
		setField(fields, "dob", m[1])
	} else if m := voterDOBBare.FindStringSubmatch(text); m != nil {
		setField(fields, "dob", m[1])
	}

	if m := voterGenderPattern.FindStringSubmatch(text); m != nil {
		setField(fields, "gender", capitalize(m[2]))
	}

	return Extraction{Fields: fields}
}

func fillFromBoxes(fields map[string]*string, key string, label domain.SpatialBox, boxes []domain.SpatialBox) {
	if fields[key] != nil {
		return
	}
	if val := rightOf(label, boxes); val != "" {
		setField(fields, key, val)
	}
}
