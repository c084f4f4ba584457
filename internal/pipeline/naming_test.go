package pipeline

import (
	"path/filepath"
	"testing"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout("tmp_pdf", "/docs/My Report.pdf")

	if l.Base != "My_Report" {
		t.Errorf("Base = %q, want My_Report", l.Base)
	}
	if l.Dir != filepath.Join("tmp_pdf", "My_Report") {
		t.Errorf("Dir = %q", l.Dir)
	}
}

func TestLayoutPageNames(t *testing.T) {
	l := NewLayout("work", "book.pdf")

	tests := []struct {
		got  string
		want string
	}{
		{l.ImagePath(0), filepath.Join("work", "book", "book_page_1.png")},
		{l.NarrationPath(0), filepath.Join("work", "book", "book_page_1.mp3")},
		{l.MixPath(2), filepath.Join("work", "book", "book_page_3_mix.mp3")},
		{l.ClipPath(9), filepath.Join("work", "book", "book_page_10.mp4")},
		{l.ManifestPath(), filepath.Join("work", "book", "list.txt")},
		{l.TonePath(), filepath.Join("work", "book", "background_tone.mp3")},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("layout path = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	a := NewLayout("w", "dir/doc.pdf")
	b := NewLayout("w", "dir/doc.pdf")
	if a.ClipPath(4) != b.ClipPath(4) {
		t.Error("layout must derive identical names across runs")
	}
}
