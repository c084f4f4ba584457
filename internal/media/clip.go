package media

import "context"

// Render encodes a still image plus an audio track into a video clip. The
// clip lasts exactly as long as the audio (-shortest against a looped image).
// Codec settings are fixed for every clip so the final concatenation can run
// in stream-copy mode.
func (e *implEncoder) Render(ctx context.Context, imagePath, audioPath, outPath string) error {
	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", e.cfg.FFmpeg.VideoCodec,
		"-tune", e.cfg.FFmpeg.Tune,
		"-c:a", e.cfg.FFmpeg.AudioCodec,
		"-b:a", e.cfg.FFmpeg.AudioBitrate,
		"-pix_fmt", e.cfg.FFmpeg.PixelFormat,
		"-shortest",
		outPath,
	}

	if _, err := e.executor.ExecuteTimeout(ctx, e.timeout, e.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return &RenderError{Image: imagePath, Err: err}
	}

	return nil
}
