package app

import (
	"digitlens/domain/benford"
	"digitlens/domain/core"
	"digitlens/internal/profiling"
	"digitlens/ports"
)

// RunManifest is the audit record of one analysis run: where the
// amounts came from, a fingerprint of exactly which values were
// analyzed, the load counters and the full statistical result.
type RunManifest struct {
	RunID       core.RunID                     `json:"run_id"`
	Source      ports.SourceInfo               `json:"source"`
	Fingerprint core.DatasetHash               `json:"fingerprint"`
	LoadStats   ports.LoadStats                `json:"load_stats"`
	Result      *benford.Result                `json:"result"`
	Conformity  benford.Conformity             `json:"conformity"`
	ChiSquare   *profiling.ChiSquareAssessment `json:"chi_square,omitempty"`
	Profile     *profiling.AmountProfile       `json:"amount_profile,omitempty"`
	DurationMs  int64                          `json:"duration_ms"`
	CreatedAt   core.Timestamp                 `json:"created_at"`
}

// NewRunManifest assembles the manifest for a completed analysis
func NewRunManifest(runID core.RunID, source ports.SourceInfo, amounts []float64, stats ports.LoadStats, result *benford.Result) *RunManifest {
	return &RunManifest{
		RunID:       runID,
		Source:      source,
		Fingerprint: core.FingerprintAmounts(amounts),
		LoadStats:   stats,
		Result:      result,
		Conformity:  result.Summary.Conformity(),
		CreatedAt:   core.Now(),
	}
}
