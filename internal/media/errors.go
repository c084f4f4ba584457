package media

import "fmt"

// MixError reports a failed narration/background mix. It is only ever
// logged: the mixer falls back to narration-only audio.
type MixError struct {
	Narration string
	Err       error
}

func (e *MixError) Error() string {
	return fmt.Sprintf("mix %s with background: %v", e.Narration, e.Err)
}

func (e *MixError) Unwrap() error {
	return e.Err
}

// RenderError reports a failed clip render. Page-scoped: the page's clip is
// absent, so it stays eligible for reprocessing on the next run.
type RenderError struct {
	Image string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render clip for %s: %v", e.Image, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ConcatError reports a failed final concatenation. Fatal for the run: all
// per-page work is already done, so the caller surfaces it loudly.
type ConcatError struct {
	Manifest string
	Err      error
}

func (e *ConcatError) Error() string {
	return fmt.Sprintf("concatenate clips from %s: %v", e.Manifest, e.Err)
}

func (e *ConcatError) Unwrap() error {
	return e.Err
}
