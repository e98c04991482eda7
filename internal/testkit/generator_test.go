package testkit

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitlens/adapters/excel"
	"digitlens/domain/benford"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 100

	first, err := Generate(cfg)
	require.NoError(t, err)
	second, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Amounts, second.Amounts)

	cfg.Seed = 43
	third, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, first.Amounts, third.Amounts)
}

func TestGenerate_Shape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 25

	ds, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"EntryID", "PostingDate", "Account", "Amount", "AbsoluteAmount"}, ds.Headers)
	require.Len(t, ds.Rows, 25)
	require.Len(t, ds.Amounts, 25)
	assert.Equal(t, "JE-000001", ds.Rows[0][0])
	assert.Equal(t, "JE-000025", ds.Rows[24][0])
}

func TestGenerate_AmountsMatchFormattedRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 200

	ds, err := Generate(cfg)
	require.NoError(t, err)

	for i, row := range ds.Rows {
		amount, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		assert.Equal(t, ds.Amounts[i], amount)

		abs, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)
		assert.Equal(t, math.Abs(ds.Amounts[i]), abs)
	}
}

func TestGenerate_BenfordConformity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 10000

	ds, err := Generate(cfg)
	require.NoError(t, err)

	result, err := benford.Analyze(ds.Amounts)
	require.NoError(t, err)

	assert.Equal(t, 10000, result.Summary.TotalCount)
	for _, row := range result.Digits {
		assert.Positive(t, row.ObservedCount, "digit %d missing", row.Digit)
	}
	assert.Less(t, result.Summary.MAD, 0.012)
}

func TestGenerate_SkewInjection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 5000
	cfg.Seed = 7
	cfg.SkewDigit = 9
	cfg.SkewShare = 0.4

	ds, err := Generate(cfg)
	require.NoError(t, err)

	nines := 0
	for _, v := range ds.Amounts {
		if digit, ok := benford.FirstDigit(v); ok && digit == 9 {
			nines++
		}
	}
	share := float64(nines) / float64(cfg.Rows)
	assert.Greater(t, share, 0.35)

	result, err := benford.Analyze(ds.Amounts)
	require.NoError(t, err)
	assert.Greater(t, result.Summary.MAD, 0.015)
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"bad skew digit", func(c *Config) { c.SkewDigit = 11 }},
		{"bad skew share", func(c *Config) { c.SkewShare = 1.5 }},
		{"inverted range", func(c *Config) { c.MinExp = 5; c.MaxExp = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := Generate(cfg)
			require.Error(t, err)
		})
	}
}

func TestWriteCSV_LoadsBackThroughFileSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 50

	ds, err := Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "je_samples.csv")
	require.NoError(t, WriteCSV(path, ds))

	src := excel.NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AbsoluteAmount", stats.Column)
	require.Len(t, amounts, 50)
	for i, v := range amounts {
		assert.Equal(t, math.Abs(ds.Amounts[i]), v)
	}
}

func TestWriteXLSX_LoadsBackThroughFileSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 50

	ds, err := Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "je_samples.xlsx")
	require.NoError(t, WriteXLSX(path, ds))

	src := excel.NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AbsoluteAmount", stats.Column)
	require.Len(t, amounts, 50)
	for i, v := range amounts {
		assert.Equal(t, math.Abs(ds.Amounts[i]), v)
	}
}
