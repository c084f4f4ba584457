package tts

import (
	"context"
	"fmt"
	"os"
)

// Synthesize runs the TTS binary to speak text into an audio file at outPath.
// The gtts-cli argument convention: text as the trailing positional argument,
// language via --lang, output file via --output.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, lang, outPath string) error {
	if text == "" {
		return &SynthesisError{Err: fmt.Errorf("empty narration text")}
	}

	s.logger.Debug(ctx, "Synthesizing %d characters (%s) -> %s", len(text), lang, outPath)

	args := []string{
		"--lang", lang,
		"--output", outPath,
		"--", text,
	}

	if _, err := s.executor.ExecuteTimeout(ctx, s.timeout, s.binary, args...); err != nil {
		return &SynthesisError{Err: err}
	}

	// Some TTS tools exit 0 but write nothing on upstream errors.
	info, err := os.Stat(outPath)
	if err != nil {
		return &SynthesisError{Err: fmt.Errorf("no audio file produced: %w", err)}
	}
	if info.Size() == 0 {
		return &SynthesisError{Err: fmt.Errorf("empty audio file produced at %s", outPath)}
	}

	return nil
}
