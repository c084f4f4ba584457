package watcher

import "testing"

func TestIsPDF(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"/in/dir/slides.Pdf", true},
		{"movie.mp4", false},
		{"notes.txt", false},
		{"pdf", false},
	}

	for _, tt := range tests {
		if got := isPDF(tt.path); got != tt.want {
			t.Errorf("isPDF(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
