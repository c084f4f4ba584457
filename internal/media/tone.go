package media

import (
	"context"
	"fmt"
)

// toneVolume keeps the generated bed quiet before the mixer attenuates it
// further.
const toneVolume = 0.3

// AmbientTone synthesizes a long sine-wave bed via the lavfi source. Used
// as the fallback background track when no local asset exists.
func (e *implEncoder) AmbientTone(ctx context.Context, outPath string) error {
	args := []string{
		"-y",
		"-f", "lavfi",
		"-i", fmt.Sprintf("sine=frequency=%d:duration=%d", e.cfg.Audio.ToneFrequency, e.cfg.Audio.ToneSeconds),
		"-filter:a", fmt.Sprintf("volume=%.2f", toneVolume),
		outPath,
	}

	if _, err := e.executor.ExecuteTimeout(ctx, e.timeout, e.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("generate ambient tone: %w", err)
	}

	return nil
}
