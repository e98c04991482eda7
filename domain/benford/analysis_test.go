package benford

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitlens/domain/core"
)

// TestExpectedPct_SumsToHundred verifies the theoretical table is a
// distribution regardless of any input data
func TestExpectedPct_SumsToHundred(t *testing.T) {
	sum := 0.0
	for d := 1; d <= DigitCount; d++ {
		sum += ExpectedPct(d)
	}
	assert.InDelta(t, 100.0, sum, 1e-6)
}

// TestExpectedPct_ReferenceValues checks the table against the published
// Benford percentages (2dp)
func TestExpectedPct_ReferenceValues(t *testing.T) {
	want := []float64{30.10, 17.61, 12.49, 9.69, 7.92, 6.69, 5.80, 5.12, 4.58}
	for d := 1; d <= DigitCount; d++ {
		assert.InDelta(t, want[d-1], ExpectedPct(d), 0.005, "digit %d", d)
	}
}

// TestAnalyze_OneAmountPerDigit runs the uniform scenario: one amount per
// leading digit, 100 through 900
func TestAnalyze_OneAmountPerDigit(t *testing.T) {
	amounts := []float64{100, 200, 300, 400, 500, 600, 700, 800, 900}

	res, err := Analyze(amounts)
	require.NoError(t, err)

	assert.Equal(t, 9, res.Summary.TotalCount)
	for i, ds := range res.Digits {
		assert.Equal(t, i+1, ds.Digit)
		assert.Equal(t, 1, ds.ObservedCount)
		assert.InDelta(t, 100.0/9, ds.ObservedPct, 1e-9)
	}

	// deviation for digit 1: 11.11% observed vs 30.10% expected
	wantDev := 100.0/9 - 100*math.Log10(2)
	assert.InDelta(t, wantDev, res.Digits[0].DeviationPct, 1e-9)
	assert.InDelta(t, -18.99, res.Digits[0].DeviationPct, 0.005)
}

// TestAnalyze_SkewedDataset runs the fraud-shaped scenario: 900 amounts with
// leading digit 1 and 100 with leading digit 9
func TestAnalyze_SkewedDataset(t *testing.T) {
	amounts := make([]float64, 0, 1000)
	for i := 0; i < 900; i++ {
		amounts = append(amounts, 100)
	}
	for i := 0; i < 100; i++ {
		amounts = append(amounts, 900)
	}

	res, err := Analyze(amounts)
	require.NoError(t, err)

	assert.Equal(t, 1000, res.Summary.TotalCount)
	assert.Equal(t, 900, res.Digits[0].ObservedCount)
	assert.Equal(t, 100, res.Digits[8].ObservedCount)
	assert.InDelta(t, 90.0, res.Digits[0].ObservedPct, 1e-9)
	assert.InDelta(t, 59.90, res.Digits[0].DeviationPct, 0.005)

	assert.Greater(t, res.Summary.MAD, madMarginalMax)
	assert.Greater(t, res.Summary.ChiSquare, 100.0)
	assert.Equal(t, ConformityNone, res.Summary.Conformity())
}

// TestAnalyze_InsufficientData verifies empty and all-zero inputs fail
// before producing statistics
func TestAnalyze_InsufficientData(t *testing.T) {
	for name, amounts := range map[string][]float64{
		"empty":    {},
		"all zero": {0, 0, 0},
	} {
		res, err := Analyze(amounts)
		assert.Nil(t, res, name)
		assert.ErrorIs(t, err, core.ErrInsufficientData, name)
	}
}

// TestAnalyze_SummaryNonNegative verifies MAD and chi-square are never
// negative across varied datasets
func TestAnalyze_SummaryNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		amounts := make([]float64, 200)
		for i := range amounts {
			amounts[i] = (1 + rng.Float64()*9) * math.Pow(10, float64(rng.Intn(7)))
		}

		res, err := Analyze(amounts)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Summary.MAD, 0.0)
		assert.GreaterOrEqual(t, res.Summary.ChiSquare, 0.0)

		sumPct := 0.0
		for _, ds := range res.Digits {
			sumPct += ds.ObservedPct
		}
		assert.InDelta(t, 100.0, sumPct, 1e-6)
	}
}

// TestAnalyze_OrderIndependence verifies that input order never changes the
// result: the analysis is a reduction over a multiset
func TestAnalyze_OrderIndependence(t *testing.T) {
	amounts := []float64{12.5, 0.003, 981, 44, 44, 70000, 2.2, 655, 13, 900.01}
	shuffled := make([]float64, len(amounts))
	copy(shuffled, amounts)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a, err := Analyze(amounts)
	require.NoError(t, err)
	b, err := Analyze(shuffled)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestClassifyMAD_Bands checks the Nigrini band edges
func TestClassifyMAD_Bands(t *testing.T) {
	tests := []struct {
		mad  float64
		want Conformity
	}{
		{0.0, ConformityClose},
		{0.0059, ConformityClose},
		{0.006, ConformityAcceptable},
		{0.0119, ConformityAcceptable},
		{0.012, ConformityMarginal},
		{0.0149, ConformityMarginal},
		{0.015, ConformityNone},
		{0.5, ConformityNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyMAD(tc.mad), "mad=%v", tc.mad)
	}
}
