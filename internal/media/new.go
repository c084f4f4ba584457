package media

import (
	"time"

	"github.com/kuraken88/pdf2mp4/internal/config"
	"github.com/kuraken88/pdf2mp4/internal/logger"
	"github.com/kuraken88/pdf2mp4/pkg/executor"
)

type implEncoder struct {
	cfg      *config.Config
	timeout  time.Duration
	executor executor.Executor
	logger   logger.Logger
}

// NewEncoder creates an Encoder shelling out to ffmpeg and ffprobe
func NewEncoder(cfg *config.Config, exec executor.Executor, log logger.Logger) Encoder {
	return &implEncoder{
		cfg:      cfg,
		timeout:  time.Duration(cfg.FFmpeg.TimeoutSeconds) * time.Second,
		executor: exec,
		logger:   log,
	}
}
