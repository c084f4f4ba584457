package media

import (
	"context"
	"fmt"
)

// Mix overlays the background track under the narration. The narration stays
// dominant and the output lasts as long as the longer input. With no
// background, or when ffmpeg fails, the narration file is used as-is.
func (e *implEncoder) Mix(ctx context.Context, narrationPath, backgroundPath, outPath string) string {
	if backgroundPath == "" {
		return narrationPath
	}

	filter := fmt.Sprintf(
		"[0:a]volume=%.2f[a0];[1:a]volume=%.2f[a1];[a0][a1]amix=inputs=2:duration=longest",
		e.cfg.Audio.NarrationVolume, e.cfg.Audio.BackgroundVolume,
	)

	args := []string{
		"-y",
		"-i", narrationPath,
		"-i", backgroundPath,
		"-filter_complex", filter,
		outPath,
	}

	if _, err := e.executor.ExecuteTimeout(ctx, e.timeout, e.cfg.FFmpeg.BinaryPath, args...); err != nil {
		mixErr := &MixError{Narration: narrationPath, Err: err}
		e.logger.Warn(ctx, "Background mix failed, using narration only: %v", mixErr)
		return narrationPath
	}

	return outPath
}
