package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Layout derives every intermediate file name deterministically from the
// document's base name and a page number. Determinism is what makes the
// clip cache work across runs.
type Layout struct {
	Dir  string
	Base string
}

// NewLayout builds the working-directory layout for one document. Spaces in
// the document name become underscores so the names survive shell quoting.
func NewLayout(workRoot, docPath string) Layout {
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, " ", "_")

	return Layout{
		Dir:  filepath.Join(workRoot, base),
		Base: base,
	}
}

// page files carry 1-based page numbers, matching what a reader expects
// when poking around the working directory.

func (l Layout) ImagePath(index int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_page_%d.png", l.Base, index+1))
}

func (l Layout) NarrationPath(index int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_page_%d.mp3", l.Base, index+1))
}

func (l Layout) MixPath(index int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_page_%d_mix.mp3", l.Base, index+1))
}

func (l Layout) ClipPath(index int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_page_%d.mp4", l.Base, index+1))
}

func (l Layout) TonePath() string {
	return filepath.Join(l.Dir, "background_tone.mp3")
}

func (l Layout) ManifestPath() string {
	return filepath.Join(l.Dir, "list.txt")
}
