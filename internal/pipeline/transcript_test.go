package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTranscript(t *testing.T) {
	out := filepath.Join(t.TempDir(), "transcript.docx")

	results := []PageResult{
		{Index: 0, State: StateRegistered, Narration: "Page one narration."},
		{Index: 1, State: StateSkipped},
		{Index: 2, State: StateFailed},
	}

	if err := WriteTranscript("doc", results, out); err != nil {
		t.Fatalf("WriteTranscript() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("transcript file is empty")
	}
}
