package mask

import (
	"math"
	"testing"
)

func TestCommitBatching(t *testing.T) {
	m := New(8, 8)
	m.SetScratch(3, 4)

	if m.Committed(3, 4) {
		t.Error("committed bit visible before Commit")
	}
	if !m.Scratch(3, 4) {
		t.Error("scratch bit not set")
	}

	m.Commit()
	if !m.Committed(3, 4) {
		t.Error("committed bit missing after Commit")
	}
}

func TestClearDiscLocality(t *testing.T) {
	const w, h = 32, 32
	const cx, cy, r = 15, 15, 5.0

	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetScratch(x, y)
		}
	}
	m.Commit()

	m.ClearDisc(cx, cy, r, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			inside := dist <= r
			if m.Scratch(x, y) == inside {
				t.Errorf("scratch(%d,%d) = %v at distance %g", x, y, m.Scratch(x, y), dist)
			}
			if m.Committed(x, y) == inside {
				t.Errorf("committed(%d,%d) = %v at distance %g", x, y, m.Committed(x, y), dist)
			}
		}
	}
}

func TestClearDiscBoundaryInclusive(t *testing.T) {
	m := New(16, 16)
	// (8,5) is at distance exactly 3 from (5,5).
	m.SetScratch(8, 5)
	m.Commit()

	m.ClearDisc(5, 5, 3, nil)

	if m.Scratch(8, 5) {
		t.Error("pixel at exact radius distance should be cleared")
	}
}

func TestClearDiscIdempotent(t *testing.T) {
	m := New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetScratch(x, y)
		}
	}
	m.Commit()

	snapshot := func() []bool {
		out := make([]bool, 0, 16*16)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				out = append(out, m.Scratch(x, y), m.Committed(x, y))
			}
		}
		return out
	}

	m.ClearDisc(7, 7, 4, nil)
	first := snapshot()
	m.ClearDisc(7, 7, 4, nil)
	second := snapshot()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("state diverged after second identical clear at index %d", i)
		}
	}
}

func TestClearDiscTouchesClearPixels(t *testing.T) {
	m := New(16, 16)
	touched := 0
	m.ClearDisc(7, 7, 2, func(x, y int) { touched++ })

	// Clearing an all-clear mask still reports every disc pixel so the
	// caller can reset ages there.
	if touched == 0 {
		t.Error("onClear never invoked for unmasked pixels")
	}
}

func TestClearDiscAtEdge(t *testing.T) {
	m := New(8, 8)
	m.SetScratch(0, 0)
	m.Commit()

	// Disc centred outside the grid still clears the overlapping corner.
	m.ClearDisc(-1, -1, 2, nil)

	if m.Scratch(0, 0) {
		t.Error("corner pixel inside off-grid disc should be cleared")
	}
}

func TestCount(t *testing.T) {
	m := New(8, 8)
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}

	m.SetScratch(1, 1)
	m.SetScratch(2, 2)
	m.SetScratch(2, 2) // setting twice counts once

	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}
