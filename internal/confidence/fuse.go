package confidence

import (
	"math"

	"drishti/internal/domain"
)

// Fusion weights. OCR engine confidence carries the most signal, pattern
// shape next, then image quality and business plausibility.
const (
	weightOCR      = 0.40
	weightPattern  = 0.30
	weightQuality  = 0.20
	weightBusiness = 0.10
)

// DefaultImageQuality stands in when no quality score accompanies the scan.
const DefaultImageQuality = 75.0

// Signals carries the per-scan measurements shared by every field.
type Signals struct {
	// OCRAverage is the mean word-level OCR confidence, 0-100. When nil the
	// field's own pattern score proxies for it.
	OCRAverage *float64
	// ImageQuality is the 0-100 capture quality score; nil falls back to
	// DefaultImageQuality.
	ImageQuality *float64
}

// Fuse combines the four signals into one 0-100 score and returns the
// per-signal breakdown alongside it.
func Fuse(fieldName string, value *string, sig Signals) (int, domain.ConfidenceBreakdown) {
	pattern := PatternConfidence(fieldName, value)
	business := BusinessConfidence(fieldName, value)

	ocr := float64(pattern)
	if sig.OCRAverage != nil {
		ocr = *sig.OCRAverage
	}
	quality := DefaultImageQuality
	if sig.ImageQuality != nil {
		quality = *sig.ImageQuality
	}

	final := int(math.Round(
		weightOCR*ocr +
			weightPattern*float64(pattern) +
			weightQuality*quality +
			weightBusiness*float64(business)))

	breakdown := domain.ConfidenceBreakdown{
		TesseractOCR:  math.Round(ocr*10) / 10,
		PatternMatch:  pattern,
		ImageQuality:  math.Round(quality*10) / 10,
		BusinessRules: business,
	}
	return final, breakdown
}
