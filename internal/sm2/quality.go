package sm2

import (
	"fmt"
	"sort"
)

// Band maps a minimum performance percentage to a quality score.
type Band struct {
	MinPct  int `json:"min_pct"`
	Quality int `json:"quality"`
}

// QualityMap converts a performance percentage into an SM-2 quality
// score through an ordered band table. The table is configuration, not
// a constant: subjects tune it through their syllabus file.
type QualityMap struct {
	bands []Band // sorted by MinPct descending
}

// NewQualityMap validates and builds a quality map. The table must be
// non-empty, contain a catch-all band at MinPct 0, keep every quality
// within 0..5, and not define two bands with the same threshold.
func NewQualityMap(bands []Band) (*QualityMap, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("quality map: no bands")
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinPct > sorted[j].MinPct })

	for i, b := range sorted {
		if b.Quality < 0 || b.Quality > 5 {
			return nil, fmt.Errorf("quality map: band %d quality %d outside [0, 5]", i, b.Quality)
		}
		if b.MinPct < 0 || b.MinPct > 100 {
			return nil, fmt.Errorf("quality map: band %d threshold %d outside [0, 100]", i, b.MinPct)
		}
		if i > 0 && sorted[i-1].MinPct == b.MinPct {
			return nil, fmt.Errorf("quality map: duplicate threshold %d", b.MinPct)
		}
	}
	if sorted[len(sorted)-1].MinPct != 0 {
		return nil, fmt.Errorf("quality map: missing catch-all band at 0%%")
	}

	return &QualityMap{bands: sorted}, nil
}

// DefaultQualityMap is the standard grading table:
// >=90 -> 5, >=75 -> 4, >=50 -> 3, >=35 -> 2, >=20 -> 1, else 0.
func DefaultQualityMap() *QualityMap {
	m, err := NewQualityMap([]Band{
		{MinPct: 90, Quality: 5},
		{MinPct: 75, Quality: 4},
		{MinPct: 50, Quality: 3},
		{MinPct: 35, Quality: 2},
		{MinPct: 20, Quality: 1},
		{MinPct: 0, Quality: 0},
	})
	if err != nil {
		panic(err) // table above is statically valid
	}
	return m
}

// Quality returns the quality score for a performance percentage.
// Percentages are clamped to [0, 100] before lookup.
func (m *QualityMap) Quality(pct float64) int {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	for _, b := range m.bands {
		if pct >= float64(b.MinPct) {
			return b.Quality
		}
	}
	return m.bands[len(m.bands)-1].Quality
}

// Bands returns a copy of the band table, highest threshold first.
func (m *QualityMap) Bands() []Band {
	out := make([]Band, len(m.bands))
	copy(out, m.bands)
	return out
}
