package document

import "testing"

func TestPageRangeClamp(t *testing.T) {
	tests := []struct {
		name      string
		rng       PageRange
		total     int
		wantStart int
		wantEnd   int
	}{
		{"full document", PageRange{}, 5, 0, 5},
		{"count to end", PageRange{Start: 2}, 5, 2, 5},
		{"exact subset", PageRange{Start: 1, Count: 2}, 5, 1, 3},
		{"count clamped to total", PageRange{Start: 3, Count: 10}, 5, 3, 5},
		{"negative start", PageRange{Start: -2, Count: 2}, 5, 0, 2},
		{"start beyond end", PageRange{Start: 9}, 5, 5, 5},
		{"empty document", PageRange{Start: 0, Count: 3}, 0, 0, 0},
		{"count hits total exactly", PageRange{Start: 2, Count: 3}, 5, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.rng.Clamp(tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Clamp(%d) = [%d, %d), want [%d, %d)", tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
