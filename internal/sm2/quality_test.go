package sm2

import "testing"

func TestDefaultQualityMap(t *testing.T) {
	m := DefaultQualityMap()
	tests := []struct {
		pct  float64
		want int
	}{
		{100, 5},
		{95, 5},
		{90, 5},
		{89.9, 4},
		{75, 4},
		{60, 3},
		{50, 3},
		{49.9, 2},
		{35, 2},
		{30, 1},
		{20, 1},
		{19.9, 0},
		{0, 0},
		{-5, 0},  // clamped
		{120, 5}, // clamped
	}
	for _, tt := range tests {
		if got := m.Quality(tt.pct); got != tt.want {
			t.Errorf("Quality(%v) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestNewQualityMapRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		bands []Band
	}{
		{"empty", nil},
		{"quality above scale", []Band{{MinPct: 0, Quality: 6}}},
		{"negative quality", []Band{{MinPct: 0, Quality: -1}}},
		{"threshold above 100", []Band{{MinPct: 101, Quality: 5}, {MinPct: 0, Quality: 0}}},
		{"no catch-all", []Band{{MinPct: 50, Quality: 3}}},
		{"duplicate threshold", []Band{{MinPct: 50, Quality: 3}, {MinPct: 50, Quality: 2}, {MinPct: 0, Quality: 0}}},
	}
	for _, tt := range tests {
		if _, err := NewQualityMap(tt.bands); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestNewQualityMapSortsBands(t *testing.T) {
	m, err := NewQualityMap([]Band{
		{MinPct: 0, Quality: 0},
		{MinPct: 80, Quality: 5},
		{MinPct: 40, Quality: 3},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := m.Quality(85); got != 5 {
		t.Errorf("Quality(85) = %d, want 5", got)
	}
	if got := m.Quality(40); got != 3 {
		t.Errorf("Quality(40) = %d, want 3", got)
	}
	if got := m.Quality(10); got != 0 {
		t.Errorf("Quality(10) = %d, want 0", got)
	}
}
