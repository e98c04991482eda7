package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Dataset is the in-memory representation of a synthetic journal-entry
// set. Rows hold the formatted strings that land in the output file;
// Amounts holds the matching signed values for validation and tests.
//
// Columns:
// - EntryID
// - PostingDate
// - Account
// - Amount
// - AbsoluteAmount
type Dataset struct {
	Headers []string
	Rows    [][]string

	Amounts []float64
}

// Config controls the synthetic journal generator
type Config struct {
	Rows      int
	Seed      int64
	StartDate time.Time

	// Magnitude range: amounts are drawn log-uniformly across
	// [10^MinExp, 10^MaxExp), which makes their first digits follow
	// Benford's law
	MinExp float64
	MaxExp float64

	// Fraud injection: SkewShare of the rows get an amount forced to
	// start with SkewDigit. Zero values disable the injection.
	SkewDigit int
	SkewShare float64
}

func DefaultConfig() Config {
	return Config{
		Rows:      2000,
		Seed:      42,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MinExp:    0,
		MaxExp:    5,
	}
}

var accounts = []string{"6000", "6100", "6200", "7100", "7200", "8100"}

// creditShare is the fraction of entries posted with a negative sign
const creditShare = 0.35

func Generate(cfg Config) (*Dataset, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("rows must be > 0")
	}
	if cfg.MaxExp <= cfg.MinExp {
		return nil, fmt.Errorf("magnitude range must satisfy max exp > min exp")
	}
	if cfg.SkewDigit != 0 && (cfg.SkewDigit < 1 || cfg.SkewDigit > 9) {
		return nil, fmt.Errorf("skew digit must be between 1 and 9")
	}
	if cfg.SkewShare < 0 || cfg.SkewShare > 1 {
		return nil, fmt.Errorf("skew share must be between 0 and 1")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	headers := []string{"EntryID", "PostingDate", "Account", "Amount", "AbsoluteAmount"}
	rows := make([][]string, cfg.Rows)
	amounts := make([]float64, cfg.Rows)

	for i := 0; i < cfg.Rows; i++ {
		date := cfg.StartDate.AddDate(0, 0, rng.Intn(365))
		account := accounts[rng.Intn(len(accounts))]

		var magnitude float64
		if cfg.SkewDigit != 0 && rng.Float64() < cfg.SkewShare {
			// Force the leading digit: mantissa in [d, d+1) scaled
			// into the configured magnitude range
			mantissa := float64(cfg.SkewDigit) + rng.Float64()
			exponent := math.Floor(cfg.MinExp + rng.Float64()*(cfg.MaxExp-cfg.MinExp))
			magnitude = mantissa * math.Pow(10, exponent)
		} else {
			exponent := cfg.MinExp + rng.Float64()*(cfg.MaxExp-cfg.MinExp)
			magnitude = math.Pow(10, exponent)
		}

		signed := magnitude
		if rng.Float64() < creditShare {
			signed = -magnitude
		}

		// Keep the numeric series equal to the formatted cell value
		rounded := math.Round(signed*100) / 100
		amounts[i] = rounded

		rows[i] = []string{
			fmt.Sprintf("JE-%06d", i+1),
			date.Format("2006-01-02"),
			account,
			fToStr(rounded, 2),
			fToStr(math.Abs(rounded), 2),
		}
	}

	return &Dataset{
		Headers: headers,
		Rows:    rows,
		Amounts: amounts,
	}, nil
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()

	// Ensure Sheet1 exists and is active.
	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	// Header row
	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < len(ds.Rows); r++ {
		rowIdx := r + 2
		for c, v := range ds.Rows[r] {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func fToStr(x float64, decimals int) string {
	p := math.Pow10(decimals)
	x = math.Round(x*p) / p
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
