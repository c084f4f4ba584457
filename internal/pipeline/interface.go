package pipeline

import (
	"context"

	"github.com/kuraken88/pdf2mp4/internal/document"
)

// Orchestrator drives the per-page pipeline and the final concatenation
type Orchestrator interface {
	Run(ctx context.Context, docPath, outputPath string, rng document.PageRange) (*RunReport, error)
}

// RunReport summarizes one conversion run.
type RunReport struct {
	Results         []PageResult
	ManifestEntries int
	OutputPath      string
	// OutputCreated reconciles the encoder's exit status with the output
	// file's actual existence and probed duration; it is the authoritative
	// success signal, not the exit status alone.
	OutputCreated  bool
	OutputDuration float64
	WorkDir        string
}

// Failed returns the results of pages that ended in the Failed state.
func (r *RunReport) Failed() []PageResult {
	var failed []PageResult
	for _, res := range r.Results {
		if res.State == StateFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
