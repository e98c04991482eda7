package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"digitlens/domain/core"
)

func TestFileSource_ColumnPreference(t *testing.T) {
	path := writeTempCSV(t, "EntryID,AbsoluteAmount,Amount\nJE-1,500,-500\nJE-2,42.5,-42.5\n")

	src := NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{500, 42.5}, amounts)
	assert.Equal(t, "AbsoluteAmount", stats.Column)
	assert.Equal(t, 2, stats.RowsScanned)
	assert.Equal(t, 2, stats.ValuesLoaded)
	assert.Equal(t, "csv", src.Describe().Kind)
}

func TestFileSource_FallbackColumn(t *testing.T) {
	path := writeTempCSV(t, "EntryID,Amount\nJE-1,-500\n")

	src := NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{-500}, amounts)
	assert.Equal(t, "Amount", stats.Column)
}

func TestFileSource_CaseInsensitiveFallback(t *testing.T) {
	path := writeTempCSV(t, "EntryID,amount\nJE-1,77\n")

	src := NewFileSource(path, "Sheet1", []string{"Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{77}, amounts)
	assert.Equal(t, "amount", stats.Column)
}

func TestFileSource_SkipCounts(t *testing.T) {
	path := writeTempCSV(t, "EntryID,Amount\nJE-1,100\nJE-2,\nJE-3,n/a\nJE-4,250.75\n")

	src := NewFileSource(path, "Sheet1", []string{"Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 250.75}, amounts)
	assert.Equal(t, 4, stats.RowsScanned)
	assert.Equal(t, 2, stats.ValuesLoaded)
	assert.Equal(t, 1, stats.SkippedBlank)
	assert.Equal(t, 1, stats.SkippedBadValue)
}

func TestFileSource_ThousandsFormattedCells(t *testing.T) {
	path := writeTempCSV(t, "EntryID,Amount\nJE-1,\"1,234.56\"\n")

	src := NewFileSource(path, "Sheet1", []string{"Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{1234.56}, amounts)
	assert.Equal(t, 0, stats.SkippedBadValue)
}

func TestFileSource_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "EntryID,Description\nJE-1,travel\n")

	src := NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	_, _, err := src.Amounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDataSource)
	assert.Contains(t, err.Error(), "AbsoluteAmount")
}

func TestFileSource_FileNotFound(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.csv"), "Sheet1", []string{"Amount"})
	_, _, err := src.Amounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDataSource)
}

func TestFileSource_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"EntryID", "AbsoluteAmount", "Account"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"JE-1", 523.17, "6000"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"JE-2", 0.042, "6010"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src := NewFileSource(path, "Sheet1", []string{"AbsoluteAmount", "Amount"})
	amounts, stats, err := src.Amounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{523.17, 0.042}, amounts)
	assert.Equal(t, "AbsoluteAmount", stats.Column)
	assert.Equal(t, "xlsx", src.Describe().Kind)
}
