package profiling

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// chiSquareDF is the degrees of freedom of the nine-digit
// goodness-of-fit test (nine categories minus one).
const chiSquareDF = 8

// ChiSquareAssessment interprets a chi-square statistic against the
// reference distribution for the first-digit test
type ChiSquareAssessment struct {
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
	CriticalValue05  float64 `json:"critical_value_05"`
	RejectAt05       bool    `json:"reject_at_05"`
}

// AssessChiSquare computes the p-value and the 5% critical value for
// the statistic under a chi-square distribution with 8 degrees of freedom
func AssessChiSquare(statistic float64) ChiSquareAssessment {
	chiDist := distuv.ChiSquared{K: chiSquareDF}
	pValue := 1 - chiDist.CDF(statistic)
	critical := chiDist.Quantile(0.95)

	return ChiSquareAssessment{
		Statistic:        statistic,
		DegreesOfFreedom: chiSquareDF,
		PValue:           pValue,
		CriticalValue05:  critical,
		RejectAt05:       statistic > critical,
	}
}
