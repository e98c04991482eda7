package benford

import "math"

// FirstDigit returns the first significant decimal digit of v's magnitude.
// ok is false for zero and non-finite values; those carry no leading digit
// under Benford's Law and are excluded from tabulation. Sign and decimal
// point position never affect the result: FirstDigit(-53.1) == 5,
// FirstDigit(0.0042) == 4, FirstDigit(4200) == 4.
func FirstDigit(v float64) (digit int, ok bool) {
	m := math.Abs(v)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, false
	}
	for m >= 10 {
		m /= 10
	}
	for m < 1 {
		m *= 10
	}
	digit = int(m)
	if digit > 9 {
		// Rounding near a power-of-ten boundary can leave m a hair over 10.
		digit = 9
	}
	return digit, true
}

// Tabulate counts leading digits over an amount series. counts[i] holds the
// observations for digit i+1. excluded reports how many values carried no
// leading digit (zeros and non-finite values).
func Tabulate(amounts []float64) (counts [DigitCount]int, total, excluded int) {
	for _, v := range amounts {
		d, ok := FirstDigit(v)
		if !ok {
			excluded++
			continue
		}
		counts[d-1]++
		total++
	}
	return counts, total, excluded
}
