package pipeline

import (
	"github.com/kuraken88/pdf2mp4/internal/config"
	"github.com/kuraken88/pdf2mp4/internal/document"
	"github.com/kuraken88/pdf2mp4/internal/logger"
	"github.com/kuraken88/pdf2mp4/internal/media"
	"github.com/kuraken88/pdf2mp4/internal/narration"
	"github.com/kuraken88/pdf2mp4/internal/tts"
)

type implOrchestrator struct {
	cfg        *config.Config
	open       document.Opener
	synth      tts.Synthesizer
	encoder    media.Encoder
	background media.BackgroundProvider
	polisher   narration.Polisher // nil when polishing is disabled
	logger     logger.Logger
}

// New creates an Orchestrator over the given collaborators
func New(
	cfg *config.Config,
	open document.Opener,
	synth tts.Synthesizer,
	enc media.Encoder,
	bg media.BackgroundProvider,
	polisher narration.Polisher,
	log logger.Logger,
) Orchestrator {
	return &implOrchestrator{
		cfg:        cfg,
		open:       open,
		synth:      synth,
		encoder:    enc,
		background: bg,
		polisher:   polisher,
		logger:     log,
	}
}
