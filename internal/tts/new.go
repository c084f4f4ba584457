package tts

import (
	"time"

	"github.com/kuraken88/pdf2mp4/internal/config"
	"github.com/kuraken88/pdf2mp4/internal/logger"
	"github.com/kuraken88/pdf2mp4/pkg/executor"
)

type implSynthesizer struct {
	binary   string
	timeout  time.Duration
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Synthesizer wrapping the configured TTS binary
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		binary:   cfg.TTS.BinaryPath,
		timeout:  time.Duration(cfg.TTS.TimeoutSeconds) * time.Second,
		executor: exec,
		logger:   log,
	}
}
