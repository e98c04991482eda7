package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitudes_FiltersLikeDigitExtraction(t *testing.T) {
	amounts := []float64{-100, 0, 200, math.NaN(), -300, math.Inf(1), 400}

	got := Magnitudes(amounts)

	assert.Equal(t, []float64{100, 200, 300, 400}, got)
}

func TestProfileAmounts_SummaryStatistics(t *testing.T) {
	amounts := []float64{-100, 0, 200, -300, 400}

	profile, err := ProfileAmounts(amounts)
	require.NoError(t, err)

	assert.Equal(t, 4, profile.Count)
	assert.InDelta(t, 250.0, profile.Mean, 1e-9)
	assert.InDelta(t, 250.0, profile.Median, 1e-9)
	assert.InDelta(t, 111.803, profile.StdDev, 0.001)
	assert.InDelta(t, 100.0, profile.Min, 1e-9)
	assert.InDelta(t, 400.0, profile.Max, 1e-9)
	assert.InDelta(t, 100.0, profile.Q25, 1e-9)
	assert.InDelta(t, 300.0, profile.Q75, 1e-9)
}

func TestProfileAmounts_NoUsableValues(t *testing.T) {
	_, err := ProfileAmounts([]float64{0, 0, 0})
	require.Error(t, err)
}

func TestAssessChiSquare_ZeroStatistic(t *testing.T) {
	assessment := AssessChiSquare(0)

	assert.InDelta(t, 1.0, assessment.PValue, 1e-9)
	assert.False(t, assessment.RejectAt05)
	assert.Equal(t, 8, assessment.DegreesOfFreedom)
}

func TestAssessChiSquare_CriticalValue(t *testing.T) {
	assessment := AssessChiSquare(10)

	// Reference value for chi-square df=8 at the 5% level
	assert.InDelta(t, 15.507, assessment.CriticalValue05, 0.01)
	assert.False(t, assessment.RejectAt05)
	assert.Greater(t, assessment.PValue, 0.05)
}

func TestAssessChiSquare_LargeStatisticRejects(t *testing.T) {
	assessment := AssessChiSquare(100)

	assert.True(t, assessment.RejectAt05)
	assert.Less(t, assessment.PValue, 0.001)
}
