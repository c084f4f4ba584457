package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kuraken88/pdf2mp4/internal/document"
	"github.com/kuraken88/pdf2mp4/internal/narration"
)

// ErrNoClips means every page in the range failed, leaving nothing to
// concatenate.
var ErrNoClips = errors.New("no page clips were produced")

// Run converts one document into a narrated video. Pages are processed
// strictly in order; per-page failures are contained, and concatenation runs
// over whatever clips exist at the end. A partial video beats no video.
func (o *implOrchestrator) Run(ctx context.Context, docPath, outputPath string, rng document.PageRange) (*RunReport, error) {
	layout := NewLayout(o.cfg.Paths.WorkDir, docPath)
	if err := os.MkdirAll(layout.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create working directory %s: %w", layout.Dir, err)
	}

	doc, err := o.open(docPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	total := doc.PageCount()
	start, end := rng.Clamp(total)
	o.logger.Info(ctx, "Document opened: %d pages, processing pages %d through %d", total, start+1, end)

	// Resolved once, reused read-only by every page's mix.
	bgPath, bgOK := o.background.Resolve(ctx, layout.TonePath())
	if !bgOK {
		o.logger.Info(ctx, "Proceeding without background track")
	}

	report := &RunReport{OutputPath: outputPath, WorkDir: layout.Dir}
	for i := start; i < end; i++ {
		res := o.processPage(ctx, doc, i, layout, bgPath)
		report.Results = append(report.Results, res)
	}

	manifest := BuildManifest(report.Results)
	report.ManifestEntries = manifest.Len()
	if manifest.Len() == 0 {
		return report, fmt.Errorf("%s: %w", docPath, ErrNoClips)
	}

	if err := manifest.WriteFile(layout.ManifestPath()); err != nil {
		return report, err
	}

	o.logger.Info(ctx, "Combining %d clips into %s", manifest.Len(), outputPath)
	concatErr := o.encoder.Concat(ctx, layout.ManifestPath(), outputPath)
	o.verifyOutput(ctx, report, concatErr)

	if concatErr != nil {
		return report, concatErr
	}
	if !report.OutputCreated {
		return report, fmt.Errorf("encoder exited cleanly but output %s is missing or unreadable", outputPath)
	}
	return report, nil
}

// verifyOutput reconciles the encoder's exit status with the output file's
// existence and its probed duration. Some encoders exit 0 without producing
// a file, and vice versa; failure in either signal means failure.
func (o *implOrchestrator) verifyOutput(ctx context.Context, report *RunReport, concatErr error) {
	info, statErr := os.Stat(report.OutputPath)
	exists := statErr == nil && info.Size() > 0

	if concatErr == nil && !exists {
		o.logger.Error(ctx, "Encoder reported success but produced no output at %s", report.OutputPath)
		return
	}
	if concatErr != nil {
		if exists {
			o.logger.Warn(ctx, "Output file exists at %s despite encoder failure; treating run as failed", report.OutputPath)
		}
		return
	}

	duration, err := o.encoder.Duration(ctx, report.OutputPath)
	if err != nil {
		o.logger.Error(ctx, "Output %s is not readable as media: %v", report.OutputPath, err)
		return
	}

	report.OutputCreated = true
	report.OutputDuration = duration
}

// processPage walks one page through the state machine. Any stage error
// moves the page straight to Failed and the batch continues.
func (o *implOrchestrator) processPage(ctx context.Context, doc document.Document, index int, layout Layout, bgPath string) PageResult {
	res := PageResult{Index: index, State: StatePending}
	clipPath := layout.ClipPath(index)

	switch status := LookupClip(clipPath); status {
	case CacheHit:
		o.logger.Info(ctx, "Page %d: clip already exists, skipping", index+1)
		res.State = StateSkipped
		res.ClipPath = clipPath
		return res
	case CacheStale:
		o.logger.Warn(ctx, "Page %d: discarding stale clip %s", index+1, clipPath)
		if err := os.Remove(clipPath); err != nil {
			return o.fail(ctx, res, fmt.Errorf("remove stale clip: %w", err))
		}
	}

	page, err := doc.ExtractPage(ctx, index, layout.ImagePath(index))
	if err != nil {
		return o.fail(ctx, res, err)
	}
	res.State = StateExtracted
	o.logger.Info(ctx, "Page %d: extracted %d characters", index+1, len(page.Text))

	lang := o.cfg.TTS.Language
	text := narration.Build(page.Text, lang)
	if o.polisher != nil {
		polished, perr := o.polisher.Polish(ctx, text, lang)
		if perr != nil {
			o.logger.Warn(ctx, "Page %d: narration polish failed, using plain text: %v", index+1, perr)
		} else {
			text = polished
		}
	}
	res.Narration = text
	res.State = StateNarrated

	audioPath := layout.NarrationPath(index)
	if err := o.synth.Synthesize(ctx, text, lang, audioPath); err != nil {
		return o.fail(ctx, res, err)
	}
	o.logger.Info(ctx, "Page %d: narration synthesized", index+1)

	mixedPath := o.encoder.Mix(ctx, audioPath, bgPath, layout.MixPath(index))
	res.State = StateMixed

	if err := o.encoder.Render(ctx, page.ImagePath, mixedPath, clipPath); err != nil {
		return o.fail(ctx, res, err)
	}
	res.State = StateRendered
	o.logger.Info(ctx, "Page %d: clip rendered", index+1)

	res.ClipPath = clipPath
	res.State = StateRegistered
	return res
}

func (o *implOrchestrator) fail(ctx context.Context, res PageResult, err error) PageResult {
	o.logger.Error(ctx, "Page %d failed after %s: %v", res.Index+1, res.State, err)
	res.Err = err
	res.State = StateFailed
	return res
}
