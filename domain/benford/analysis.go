package benford

import (
	"math"

	"digitlens/domain/core"
)

// expectedPct holds the theoretical Benford distribution as percentages,
// computed once from log10(1 + 1/d) in double precision. Rounding happens
// only at the presentation boundary, never here.
var expectedPct = func() [DigitCount]float64 {
	var pct [DigitCount]float64
	for d := 1; d <= DigitCount; d++ {
		pct[d-1] = 100 * math.Log10(1+1/float64(d))
	}
	return pct
}()

// ExpectedPct returns the theoretical share of leading digit d as a
// percentage. Panics if d is outside 1..9; callers tabulating via FirstDigit
// can never produce such a digit.
func ExpectedPct(d int) float64 {
	if d < 1 || d > DigitCount {
		panic("benford: digit out of range")
	}
	return expectedPct[d-1]
}

// AnalyzeCounts reduces tabulated digit counts to per-digit statistics and a
// summary. Returns core.ErrInsufficientData when the counts are all zero:
// observed percentages are undefined without at least one observation.
func AnalyzeCounts(counts [DigitCount]int) (*Result, error) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, core.NewInsufficientDataError(0)
	}

	res := &Result{}
	sumAbsDev := 0.0
	chiSquare := 0.0
	for i, c := range counts {
		observedPct := 100 * float64(c) / float64(total)
		deviationPct := observedPct - expectedPct[i]
		res.Digits[i] = DigitStats{
			Digit:         i + 1,
			ObservedCount: c,
			ObservedPct:   observedPct,
			ExpectedPct:   expectedPct[i],
			DeviationPct:  deviationPct,
		}

		sumAbsDev += math.Abs(deviationPct) / 100
		expectedCount := expectedPct[i] / 100 * float64(total)
		diff := float64(c) - expectedCount
		chiSquare += diff * diff / expectedCount
	}

	res.Summary = Summary{
		TotalCount: total,
		MAD:        sumAbsDev / DigitCount,
		ChiSquare:  chiSquare,
	}
	return res, nil
}

// Analyze tabulates an amount series and reduces it in one step. Zeros and
// non-finite values are excluded before tabulation; if nothing survives the
// filter the analysis fails with core.ErrInsufficientData.
func Analyze(amounts []float64) (*Result, error) {
	counts, total, _ := Tabulate(amounts)
	if total == 0 {
		return nil, core.NewInsufficientDataError(len(amounts))
	}
	return AnalyzeCounts(counts)
}
