package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type probeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
	Size     string `json:"size"`
}

type probeResult struct {
	Format probeFormat `json:"format"`
}

// Duration asks ffprobe for the file's container duration in seconds.
func (e *implEncoder) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-hide_banner",
		"-show_format",
		"-of", "json",
		"--", path,
	}

	out, err := e.executor.ExecuteTimeout(ctx, e.timeout, e.cfg.FFmpeg.ProbePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var result probeResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(result.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", result.Format.Duration, err)
	}

	return duration, nil
}
