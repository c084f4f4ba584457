package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/kuraken88/pdf2mp4/internal/logger"
)

// New creates a Watcher that converts PDFs dropped into inputDir, running at
// most maxConcurrent conversions at once.
func New(inputDir string, handler ConvertHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:  inputDir,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
