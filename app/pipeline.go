package app

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"digitlens/domain/benford"
	"digitlens/domain/core"
	"digitlens/internal"
	"digitlens/internal/profiling"
	"digitlens/internal/render"
	"digitlens/ports"
)

// Pipeline wires the analysis stages in order: load amounts, analyze
// first digits, profile the magnitudes, render and publish artifacts.
// Every stage failure carries the sentinel of the stage that failed.
type Pipeline struct {
	source   ports.AmountSource
	renderer *render.Renderer
	logger   *internal.Logger
}

// RunResult contains the outcome of one pipeline run
type RunResult struct {
	Manifest  *RunManifest `json:"manifest"`
	Published []string     `json:"published"`
	RuntimeMs int64        `json:"runtime_ms"`
}

// NewPipeline creates an analysis pipeline
func NewPipeline(source ports.AmountSource, renderer *render.Renderer, logger *internal.Logger) *Pipeline {
	return &Pipeline{
		source:   source,
		renderer: renderer,
		logger:   logger,
	}
}

// Run executes one full analysis and publishes the report artifacts
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	startTime := time.Now()
	runID := core.NewRunID()
	info := p.source.Describe()
	p.logger.Info("run %s: loading amounts from %s source %s", runID, info.Kind, info.Name)

	amounts, stats, err := p.source.Amounts(ctx)
	if err != nil {
		return nil, err
	}

	result, err := benford.Analyze(amounts)
	if err != nil {
		return nil, err
	}
	p.logger.Info("run %s: %d of %d amounts carry a first digit", runID, result.Summary.TotalCount, len(amounts))

	assessment := profiling.AssessChiSquare(result.Summary.ChiSquare)

	var profilePtr *profiling.AmountProfile
	if profile, err := profiling.ProfileAmounts(amounts); err != nil {
		p.logger.Warn("run %s: amount profile skipped: %v", runID, err)
	} else {
		profilePtr = &profile
	}

	manifest := NewRunManifest(runID, info, amounts, stats, result)
	manifest.ChiSquare = &assessment
	manifest.Profile = profilePtr
	manifest.DurationMs = time.Since(startTime).Milliseconds()

	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, core.NewRenderError(render.ManifestFile, err)
	}

	reportMD := render.BuildMarkdownReport(render.ReportData{
		Result:    result,
		Profile:   profilePtr,
		ChiSquare: &assessment,
	})

	artifacts := []render.Artifact{
		{Name: render.ReportFile, Body: []byte(reportMD)},
		{Name: render.HTMLReportFile, Body: render.BuildHTMLReport(reportMD)},
		{Name: render.ObservedChartFile, Body: []byte(render.BuildObservedExpectedChart(result))},
		{Name: render.DeviationChartFile, Body: []byte(render.BuildDeviationChart(result))},
		{Name: render.ManifestFile, Body: manifestJSON},
	}
	if err := p.renderer.Publish(artifacts); err != nil {
		return nil, err
	}

	published := make([]string, len(artifacts))
	for i, artifact := range artifacts {
		published[i] = filepath.Join(p.renderer.OutputDir(), artifact.Name)
	}

	p.logger.Info("run %s: MAD %.4f (%s), chi-square %.2f, %d artifacts published to %s",
		runID, result.Summary.MAD, manifest.Conformity, result.Summary.ChiSquare,
		len(published), p.renderer.OutputDir())

	return &RunResult{
		Manifest:  manifest,
		Published: published,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}
