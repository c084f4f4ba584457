package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest is the ordered list of clip paths fed to the concatenator.
// Entries appear in page-visitation order, which the orchestrator keeps
// strictly ascending by page index.
type Manifest struct {
	paths []string
}

// BuildManifest reduces the per-page results into the manifest. Only pages
// whose clip actually exists contribute an entry: registered pages from this
// run and cache-skipped pages from earlier runs. Failed pages are left out
// so the concatenator is never handed a missing file.
func BuildManifest(results []PageResult) *Manifest {
	m := &Manifest{}
	for _, res := range results {
		switch res.State {
		case StateRegistered, StateSkipped:
			m.Add(res.ClipPath)
		}
	}
	return m
}

func (m *Manifest) Add(path string) {
	m.paths = append(m.paths, path)
}

func (m *Manifest) Len() int {
	return len(m.paths)
}

func (m *Manifest) Paths() []string {
	return append([]string(nil), m.paths...)
}

// WriteFile writes the manifest in ffmpeg concat-demuxer form: one
// single-quoted absolute path directive per line.
func (m *Manifest) WriteFile(path string) error {
	var b strings.Builder
	for _, p := range m.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve clip path %s: %w", p, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", quoteConcatPath(abs))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// quoteConcatPath escapes single quotes the way the concat demuxer expects:
// close the quote, emit an escaped quote, reopen.
func quoteConcatPath(p string) string {
	return strings.ReplaceAll(p, "'", `'\''`)
}
