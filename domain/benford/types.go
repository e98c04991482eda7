package benford

// DigitStats holds the tabulated result for one leading digit 1..9.
// ObservedPct and ExpectedPct are percentages (0..100); DeviationPct is
// signed (observed minus expected).
type DigitStats struct {
	Digit         int     `json:"digit"`
	ObservedCount int     `json:"observed_count"`
	ObservedPct   float64 `json:"observed_pct"`
	ExpectedPct   float64 `json:"expected_pct"`
	DeviationPct  float64 `json:"deviation_pct"`
}

// Summary aggregates the nine digit buckets.
// MAD is the mean absolute deviation on proportion scale (deviations divided
// back by 100 before averaging); ChiSquare is the goodness-of-fit statistic
// over observed vs expected counts.
type Summary struct {
	TotalCount int     `json:"total_count"`
	MAD        float64 `json:"mad"`
	ChiSquare  float64 `json:"chi_square"`
}

// Result couples the per-digit table with its summary.
// INVARIANTS:
// - Digits[i].Digit == i+1 for i in 0..8
// - sum of ObservedCount over all digits == Summary.TotalCount
// - sum of ObservedPct ~= 100 and sum of ExpectedPct ~= 100
type Result struct {
	Digits  [DigitCount]DigitStats `json:"digits"`
	Summary Summary                `json:"summary"`
}

// DigitCount is the number of leading-digit buckets (digits 1 through 9).
const DigitCount = 9

// Conformity labels a MAD value against Nigrini's reference bands.
type Conformity string

const (
	ConformityClose      Conformity = "Close conformity"
	ConformityAcceptable Conformity = "Acceptable conformity"
	ConformityMarginal   Conformity = "Marginally acceptable"
	ConformityNone       Conformity = "Nonconformity"
)

// Nigrini MAD band upper bounds (proportion scale, exclusive).
const (
	madCloseMax      = 0.006
	madAcceptableMax = 0.012
	madMarginalMax   = 0.015
)

// ClassifyMAD maps a MAD value to its conformity band.
func ClassifyMAD(mad float64) Conformity {
	switch {
	case mad < madCloseMax:
		return ConformityClose
	case mad < madAcceptableMax:
		return ConformityAcceptable
	case mad < madMarginalMax:
		return ConformityMarginal
	default:
		return ConformityNone
	}
}

// Conformity returns the summary's MAD band.
func (s Summary) Conformity() Conformity {
	return ClassifyMAD(s.MAD)
}
