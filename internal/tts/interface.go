package tts

import "context"

// Synthesizer defines the interface for turning text into a spoken audio file
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang, outPath string) error
}
