package tts

import "fmt"

// SynthesisError reports a failed synthesis for one page. Page-scoped: the
// caller logs it and moves on to the next page.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesize narration: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
