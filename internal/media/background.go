package media

import (
	"context"
	"os"

	"github.com/kuraken88/pdf2mp4/internal/config"
	"github.com/kuraken88/pdf2mp4/internal/logger"
)

type implBackground struct {
	assetPath string
	encoder   Encoder
	logger    logger.Logger
}

// NewBackgroundProvider creates the run's background track provider
func NewBackgroundProvider(cfg *config.Config, enc Encoder, log logger.Logger) BackgroundProvider {
	return &implBackground{
		assetPath: cfg.Audio.BackgroundPath,
		encoder:   enc,
		logger:    log,
	}
}

// Resolve picks the background bed for this run: a pre-existing local asset
// when one is present, otherwise a generated ambient tone at tonePath. Called
// once per run; every page's mix reuses the result read-only.
func (b *implBackground) Resolve(ctx context.Context, tonePath string) (string, bool) {
	if info, err := os.Stat(b.assetPath); err == nil && !info.IsDir() && info.Size() > 0 {
		b.logger.Info(ctx, "Using background track: %s", b.assetPath)
		return b.assetPath, true
	}

	if err := b.encoder.AmbientTone(ctx, tonePath); err != nil {
		b.logger.Warn(ctx, "No background track available, narration only: %v", err)
		return "", false
	}

	b.logger.Info(ctx, "Generated ambient background track: %s", tonePath)
	return tonePath, true
}
