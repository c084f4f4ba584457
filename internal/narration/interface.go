package narration

import "context"

// Polisher rewrites built narration text into a more natural spoken script.
// Polishing is an enhancement: callers fall back to the input text on error.
type Polisher interface {
	Polish(ctx context.Context, text, lang string) (string, error)
}
