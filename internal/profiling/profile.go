package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"digitlens/domain/benford"
)

// AmountProfile summarizes the magnitude distribution of the amounts
// that entered the digit analysis
type AmountProfile struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Magnitudes returns the absolute values of the amounts that carry a
// first digit, in input order. The exclusion rule is the digit
// extractor's, so the profile describes exactly the analyzed population.
func Magnitudes(amounts []float64) []float64 {
	magnitudes := make([]float64, 0, len(amounts))
	for _, v := range amounts {
		if _, ok := benford.FirstDigit(v); ok {
			magnitudes = append(magnitudes, math.Abs(v))
		}
	}
	return magnitudes
}

// ProfileAmounts computes summary statistics over the analyzed
// magnitudes. Quartiles need at least four values; smaller datasets
// return an error and the profile is omitted from the report.
func ProfileAmounts(amounts []float64) (AmountProfile, error) {
	profile := AmountProfile{}
	data := Magnitudes(amounts)
	profile.Count = len(data)

	mean, err := stats.Mean(data)
	if err != nil {
		return profile, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return profile, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return profile, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return profile, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return profile, err
	}

	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return profile, err
	}

	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return profile, err
	}

	profile.Mean = mean
	profile.Median = median
	profile.StdDev = stdDev
	profile.Min = min
	profile.Max = max
	profile.Q25 = q25
	profile.Q75 = q75

	return profile, nil
}
