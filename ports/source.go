package ports

import (
	"context"
)

// AmountSource supplies the raw amount series from a tabular data source.
// Implementations only read: values come back in source order, unfiltered
// (zeros and signs included), and the caller owns all Benford semantics.
type AmountSource interface {
	// Describe reports where the amounts come from, for logs and the run
	// manifest. Must not touch the underlying source.
	Describe() SourceInfo

	// Amounts loads the full series. Fails with core.ErrDataSource when the
	// source is unreadable or the designated amount column is absent.
	Amounts(ctx context.Context) ([]float64, LoadStats, error)
}

// SourceInfo identifies an amount source.
type SourceInfo struct {
	Kind   string `json:"kind"`   // "xlsx", "csv", "postgres"
	Name   string `json:"name"`   // file path or DSN-derived label
	Column string `json:"column"` // resolved amount column, if known up front
}

// LoadStats counts what happened during a load. RowsScanned covers every
// data row seen; ValuesLoaded is the length of the returned series; blank
// and non-numeric cells are skipped without failing the load.
type LoadStats struct {
	RowsScanned     int    `json:"rows_scanned"`
	ValuesLoaded    int    `json:"values_loaded"`
	SkippedBlank    int    `json:"skipped_blank"`
	SkippedBadValue int    `json:"skipped_bad_value"`
	Column          string `json:"column"` // the column actually used
}
