package watcher

import "context"

// Watcher defines the interface for drop-folder monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConvertHandler converts one dropped document
type ConvertHandler func(ctx context.Context, docPath string) error
