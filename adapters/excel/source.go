package excel

import (
	"context"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"digitlens/domain/core"
	"digitlens/ports"
)

// FileSource adapts tabular journal files to the AmountSource port.
// It resolves the amount column from a preference list and parses
// numeric cells, counting blanks and unparseable values separately.
type FileSource struct {
	path    string
	sheet   string
	columns []string
}

// NewFileSource creates an amount source over an XLSX or CSV file
func NewFileSource(path, sheet string, columns []string) *FileSource {
	return &FileSource{path: path, sheet: sheet, columns: columns}
}

// Describe returns static information about the configured source
func (s *FileSource) Describe() ports.SourceInfo {
	kind := "xlsx"
	if strings.ToLower(filepath.Ext(s.path)) == ".csv" {
		kind = "csv"
	}
	return ports.SourceInfo{
		Kind:   kind,
		Name:   s.path,
		Column: strings.Join(s.columns, ","),
	}
}

// Amounts loads the raw amount values in row order
func (s *FileSource) Amounts(ctx context.Context) ([]float64, ports.LoadStats, error) {
	stats := ports.LoadStats{}

	reader := NewDataReader(s.path, s.sheet)
	data, err := reader.ReadData()
	if err != nil {
		return nil, stats, core.NewDataSourceError(s.path, err)
	}

	column, ok := resolveAmountColumn(data.Headers, s.columns)
	if !ok {
		return nil, stats, core.NewMissingColumnError(s.path, s.columns)
	}
	stats.Column = column
	log.Printf("[AmountSource] Using amount column %q", column)

	amounts := make([]float64, 0, len(data.Rows))
	for _, row := range data.Rows {
		stats.RowsScanned++
		cell, exists := row[column]
		if !exists || cell == "" {
			stats.SkippedBlank++
			continue
		}
		value, err := parseAmount(cell)
		if err != nil {
			stats.SkippedBadValue++
			continue
		}
		amounts = append(amounts, value)
		stats.ValuesLoaded++
	}

	log.Printf("[AmountSource] Loaded %d amounts (%d rows scanned, %d blank, %d non-numeric)",
		stats.ValuesLoaded, stats.RowsScanned, stats.SkippedBlank, stats.SkippedBadValue)

	return amounts, stats, nil
}

// parseAmount parses a cell into a float. Excel number formats can
// render thousands separators into the cell text, so a comma-stripped
// retry is attempted before the value counts as non-numeric.
func parseAmount(cell string) (float64, error) {
	value, err := strconv.ParseFloat(cell, 64)
	if err == nil {
		return value, nil
	}
	if strings.Contains(cell, ",") {
		return strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	}
	return 0, err
}

// resolveAmountColumn picks the first configured column present in the
// headers. Exact matches win; a case-insensitive match is the fallback.
func resolveAmountColumn(headers, preferred []string) (string, bool) {
	for _, want := range preferred {
		for _, h := range headers {
			if h == want {
				return h, true
			}
		}
	}
	for _, want := range preferred {
		for _, h := range headers {
			if strings.EqualFold(h, want) {
				return h, true
			}
		}
	}
	return "", false
}
