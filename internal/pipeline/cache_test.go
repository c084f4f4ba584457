package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupClip(t *testing.T) {
	dir := t.TempDir()

	full := filepath.Join(dir, "full.mp4")
	if err := os.WriteFile(full, []byte("mp4data"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.mp4")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want CacheStatus
	}{
		{"existing clip is a hit", full, CacheHit},
		{"missing clip is a miss", filepath.Join(dir, "nope.mp4"), CacheMiss},
		{"zero-byte clip is stale", empty, CacheStale},
		{"directory is stale", dir, CacheStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupClip(tt.path); got != tt.want {
				t.Errorf("LookupClip(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
