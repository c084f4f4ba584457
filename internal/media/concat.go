package media

import "context"

// Concat stitches the manifest's clips into the final output without
// re-encoding. All clips share identical codec parameters, which concat
// demuxer stream-copy depends on.
func (e *implEncoder) Concat(ctx context.Context, manifestPath, outPath string) error {
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		outPath,
	}

	if _, err := e.executor.ExecuteTimeout(ctx, e.timeout, e.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return &ConcatError{Manifest: manifestPath, Err: err}
	}

	return nil
}
