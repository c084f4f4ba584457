package media

import "context"

// Encoder defines the media-encoder operations the pipeline needs. All
// methods shell out to ffmpeg/ffprobe; none inspect media themselves.
type Encoder interface {
	// Mix combines narration and background audio into outPath. If the
	// background is absent or mixing fails, the narration path itself is
	// returned: mixing is an enhancement and never fails a page.
	Mix(ctx context.Context, narrationPath, backgroundPath, outPath string) string

	// Render produces a still-image video clip lasting the audio's duration,
	// with fixed codec settings so clips concatenate without re-encoding.
	Render(ctx context.Context, imagePath, audioPath, outPath string) error

	// Concat stitches the clips listed in the manifest file into outPath.
	Concat(ctx context.Context, manifestPath, outPath string) error

	// AmbientTone synthesizes a long low-volume tone to use as a background
	// bed when no asset is available.
	AmbientTone(ctx context.Context, outPath string) error

	// Duration reports a media file's playable duration in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}

// BackgroundProvider resolves the shared background track for a run
type BackgroundProvider interface {
	// Resolve returns the background track path, or ok=false when no track
	// could be obtained; callers then skip mixing entirely.
	Resolve(ctx context.Context, tonePath string) (path string, ok bool)
}
