package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildManifestSkipsFailedPages(t *testing.T) {
	results := []PageResult{
		{Index: 0, State: StateRegistered, ClipPath: "a_page_1.mp4"},
		{Index: 1, State: StateFailed, Err: errors.New("tts down")},
		{Index: 2, State: StateSkipped, ClipPath: "a_page_3.mp4"},
		{Index: 3, State: StateRegistered, ClipPath: "a_page_4.mp4"},
	}

	m := BuildManifest(results)
	got := m.Paths()
	want := []string{"a_page_1.mp4", "a_page_3.mp4", "a_page_4.mp4"}

	if len(got) != len(want) {
		t.Fatalf("manifest paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manifest[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManifestOrderIsVisitationOrder(t *testing.T) {
	var results []PageResult
	for i := 0; i < 5; i++ {
		results = append(results, PageResult{Index: i, State: StateRegistered, ClipPath: string(rune('a' + i))})
	}

	m := BuildManifest(results)
	paths := m.Paths()
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Errorf("manifest not in ascending order: %v", paths)
		}
	}
}

func TestManifestWriteFile(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{}
	m.Add(filepath.Join(dir, "doc_page_1.mp4"))
	m.Add(filepath.Join(dir, "doc_page_2.mp4"))

	manifestPath := filepath.Join(dir, "list.txt")
	if err := m.WriteFile(manifestPath); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("manifest has %d lines, want 2: %q", len(lines), string(data))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "file '") || !strings.HasSuffix(line, "'") {
			t.Errorf("line %d not a quoted file directive: %q", i, line)
		}
		if !filepath.IsAbs(strings.TrimSuffix(strings.TrimPrefix(line, "file '"), "'")) {
			t.Errorf("line %d path not absolute: %q", i, line)
		}
	}
}

func TestQuoteConcatPath(t *testing.T) {
	got := quoteConcatPath("/tmp/it's here/page.mp4")
	want := `/tmp/it'\''s here/page.mp4`
	if got != want {
		t.Errorf("quoteConcatPath() = %q, want %q", got, want)
	}
}
