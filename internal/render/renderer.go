package render

import (
	"log"
	"os"
	"path/filepath"

	"digitlens/domain/core"
)

// Artifact is a named output file ready to publish
type Artifact struct {
	Name string
	Body []byte
}

// Renderer publishes report artifacts to the output directory.
// Artifacts are written to a staging directory first and nothing
// reaches a final path until every write has succeeded, so a failed
// run cannot leave a half-updated report behind.
type Renderer struct {
	outputDir string
}

// NewRenderer creates a renderer targeting the given output directory
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// OutputDir returns the configured output directory
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

// Publish stages all artifacts and moves them to their final paths,
// overwriting anything a previous run left there
func (r *Renderer) Publish(artifacts []Artifact) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return core.NewRenderError(r.outputDir, err)
	}

	staging, err := os.MkdirTemp(r.outputDir, ".staging-")
	if err != nil {
		return core.NewRenderError(r.outputDir, err)
	}
	defer os.RemoveAll(staging)

	for _, artifact := range artifacts {
		if err := os.WriteFile(filepath.Join(staging, artifact.Name), artifact.Body, 0o644); err != nil {
			return core.NewRenderError(artifact.Name, err)
		}
	}

	for _, artifact := range artifacts {
		final := filepath.Join(r.outputDir, artifact.Name)
		if err := os.Rename(filepath.Join(staging, artifact.Name), final); err != nil {
			return core.NewRenderError(artifact.Name, err)
		}
		log.Printf("[Renderer] Published %s (%d bytes)", final, len(artifact.Body))
	}

	return nil
}
