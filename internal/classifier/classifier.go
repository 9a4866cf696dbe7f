package classifier

import (
	"log"
	"regexp"
	"strings"

	"drishti/internal/domain"
)

var (
	panNumberPattern     = regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)
	aadhaarNumberPattern = regexp.MustCompile(`\b\d{4}\s*\d{4}\s*\d{4}\b`)
	voterNumberPattern   = regexp.MustCompile(`\b[A-Z]{3,4}[0-9]{6,10}\b`)
	dlNumberPattern      = regexp.MustCompile(`\b[A-Z]{2}[0-9O]{6,20}\b`)
	fatherLabelPattern   = regexp.MustCompile(`\bFATHER'?S? NAME\b`)
	datePattern          = regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b`)
	relationPattern      = regexp.MustCompile(`\b(S/O|D/O|C/O)\b`)
	epicNoPattern        = regexp.MustCompile(`\bEPIC\s*NO\b`)
	partNoPattern        = regexp.MustCompile(`\bPART\s*NO\b`)
	validTillPattern     = regexp.MustCompile(`\bVALID\s*(TILL|UPTO)\b`)
	vehicleClassPattern  = regexp.MustCompile(`\b(LMV|MCWG|TRANS)\b`)
	gradeTokenPattern    = regexp.MustCompile(`\b(A1|A2|B1|B2|C1|C2|GRADE|CGPA)\b`)
	institutionPattern   = regexp.MustCompile(`\b(SCHOOL|COLLEGE|INSTITUTE)\b`)
	rollNoPattern        = regexp.MustCompile(`\bROLL\s*NO\b`)
)

// probe is the uppercased text plus the leading windows some signals are
// restricted to (issuer headers sit near the top of a card or sheet).
type probe struct {
	txt     string
	head300 string
	head500 string
}

// signal awards (or, for penalties, deducts) points when match fires.
type signal struct {
	points int
	match  func(p probe) bool
}

// typeSignals holds the per-type scoring tables. Point values are hand-tuned
// against a labelled capture set; do not round them off.
var typeSignals = map[domain.DocumentType][]signal{
	domain.DocTypePAN: {
		{50, func(p probe) bool { return panNumberPattern.MatchString(p.txt) }},
		{40, func(p probe) bool { return strings.Contains(p.head500, "INCOME TAX") }},
		{30, func(p probe) bool { return strings.Contains(p.head500, "PERMANENT ACCOUNT") }},
		{20, func(p probe) bool { return strings.Contains(p.txt, "GOVT. OF INDIA INCOME TAX") }},
		{15, func(p probe) bool { return fatherLabelPattern.MatchString(p.txt) }},
		{10, func(p probe) bool { return datePattern.MatchString(p.txt) }},
		{-30, func(p probe) bool { return containsAny(p.txt, "AADHAAR", "ELECTION", "DRIVING") }},
		{-20, func(p probe) bool {
			return strings.Contains(p.txt, "APPLICATION") || strings.Contains(p.head300, "FORM")
		}},
	},
	domain.DocTypeAadhaar: {
		{50, func(p probe) bool { return aadhaarNumberPattern.MatchString(p.txt) }},
		{40, func(p probe) bool { return strings.Contains(p.head500, "UIDAI") }},
		{30, func(p probe) bool { return containsAny(p.txt, "AADHAAR", "AADHAR") }},
		{25, func(p probe) bool { return strings.Contains(p.txt, "UNIQUE IDENTIFICATION") }},
		{20, func(p probe) bool { return strings.Contains(p.txt, "GOVERNMENT OF INDIA") }},
		{15, func(p probe) bool { return relationPattern.MatchString(p.txt) }},
		{10, func(p probe) bool { return strings.Contains(p.txt, "VID") }},
		{-30, func(p probe) bool { return containsAny(p.txt, "INCOME TAX", "ELECTION") }},
		{-25, func(p probe) bool {
			return strings.Contains(p.txt, "ENROLMENT") || strings.Contains(p.head300, "APPLICATION")
		}},
	},
	domain.DocTypeVoterID: {
		{50, func(p probe) bool { return voterNumberPattern.MatchString(p.txt) }},
		{40, func(p probe) bool { return strings.Contains(p.head500, "ELECTION COMMISSION") }},
		{30, func(p probe) bool { return strings.Contains(p.head500, "ELECTORAL") }},
		{25, func(p probe) bool { return strings.Contains(p.txt, "ELECTOR") }},
		{20, func(p probe) bool { return epicNoPattern.MatchString(p.txt) }},
		{15, func(p probe) bool { return partNoPattern.MatchString(p.txt) }},
		{-30, func(p probe) bool { return containsAny(p.txt, "AADHAAR", "INCOME TAX", "DRIVING") }},
	},
	domain.DocTypeDrivingLicence: {
		{50, func(p probe) bool { return dlNumberPattern.MatchString(p.txt) }},
		{40, func(p probe) bool { return containsAny(p.head500, "DRIVING LICENCE", "DRIVING LICENSE") }},
		{30, func(p probe) bool { return strings.Contains(p.head500, "TRANSPORT") }},
		{25, func(p probe) bool { return validTillPattern.MatchString(p.txt) }},
		{20, func(p probe) bool { return strings.Contains(p.txt, "MOTOR VEHICLE") }},
		{15, func(p probe) bool { return vehicleClassPattern.MatchString(p.txt) }},
		{-30, func(p probe) bool { return containsAny(p.txt, "AADHAAR", "INCOME TAX", "ELECTION") }},
		{-25, func(p probe) bool {
			return strings.Contains(p.txt, "LEARNER") || strings.Contains(p.head300, "APPLICATION")
		}},
	},
	domain.DocTypeMarksheet: {
		{50, func(p probe) bool { return gradeTokenPattern.MatchString(p.txt) }},
		{40, func(p probe) bool { return strings.Contains(p.head500, "BOARD OF") }},
		{35, func(p probe) bool { return strings.Contains(p.head500, "EXAMINATION") }},
		{30, func(p probe) bool { return strings.Contains(p.txt, "MARKS") }},
		{25, func(p probe) bool { return strings.Contains(p.txt, "MARKSHEET") }},
		{20, func(p probe) bool { return institutionPattern.MatchString(p.txt) }},
		{20, func(p probe) bool { return rollNoPattern.MatchString(p.txt) }},
		{15, func(p probe) bool { return strings.Contains(p.txt, "SUBJECT") }},
		{-30, func(p probe) bool { return containsAny(p.txt, "SAMPLE PAPER", "PRACTICE") }},
	},
}

// ScoreWeighted runs the weighted scoring pass over the recognized text and
// maps the winning score onto a 0-100 confidence. Scores >= 100 compress
// toward 95, [70,100) pass through, [50,70) compress toward 50, below 50 pass
// through. All-zero scores yield Unknown with confidence 0.
func ScoreWeighted(text string) domain.ClassificationResult {
	scores := make(map[domain.DocumentType]int, len(domain.DocumentTypes))
	for _, dt := range domain.DocumentTypes {
		scores[dt] = 0
	}
	if strings.TrimSpace(text) == "" {
		return domain.ClassificationResult{DocumentType: domain.DocTypeUnknown, Confidence: 0, Scores: scores}
	}

	txt := strings.ToUpper(text)
	p := probe{txt: txt, head300: head(txt, 300), head500: head(txt, 500)}

	for _, dt := range domain.DocumentTypes {
		total := 0
		for _, s := range typeSignals[dt] {
			if s.match(p) {
				total += s.points
			}
		}
		if total < 0 {
			total = 0
		}
		scores[dt] = total
	}

	best := domain.DocTypeUnknown
	bestScore := 0
	for _, dt := range domain.DocumentTypes {
		if scores[dt] > bestScore {
			best = dt
			bestScore = scores[dt]
		}
	}
	if bestScore == 0 {
		return domain.ClassificationResult{DocumentType: domain.DocTypeUnknown, Confidence: 0, Scores: scores}
	}

	var confidence int
	switch {
	case bestScore >= 100:
		confidence = 70 + (bestScore-70)/2
		if confidence > 95 {
			confidence = 95
		}
	case bestScore >= 70:
		confidence = bestScore
	case bestScore >= 50:
		confidence = 50 + (bestScore-50)/2
	default:
		confidence = bestScore
	}

	return domain.ClassificationResult{DocumentType: best, Confidence: confidence, Scores: scores}
}

// Classify combines the two strategies: the weighted scorer wins outright at
// confidence >= 70; otherwise the precision-oriented keyword pass resolves the
// type, and a weighted guess at confidence >= 50 still beats declaring
// Unknown. Any non-Unknown answer is preferred over Unknown when there is some
// evidence.
func Classify(text string) domain.ClassificationResult {
	weighted := ScoreWeighted(text)
	if weighted.Confidence >= 70 {
		return weighted
	}

	keyword := MatchKeywords(text)
	log.Printf("classifier: keyword fallback gave %q (weighted was %d%% for %q)",
		keyword, weighted.Confidence, weighted.DocumentType)

	if keyword != domain.DocTypeUnknown {
		// Keyword rules are exact-match triggers and carry no numeric
		// confidence; report the weighted diagnostics alongside.
		return domain.ClassificationResult{
			DocumentType: keyword,
			Confidence:   weighted.Confidence,
			Scores:       weighted.Scores,
		}
	}
	if weighted.Confidence >= 50 {
		return weighted
	}
	return domain.ClassificationResult{DocumentType: domain.DocTypeUnknown, Confidence: 0, Scores: weighted.Scores}
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
