// Package mask maintains the persistent bitmap of static pixels.
//
// The mask is kept in two representations: a scratch bitmap that the
// staleness tracker mutates freely, and a committed bitmap that the
// renderer reads. Commit synchronizes them as one batched step, so a
// redraw never observes a half-updated mask. Pointer healing is the one
// operation that writes both representations at once; after it they must
// never diverge.
package mask

// Mask is a width×height grid of booleans; true marks a pixel as static
// and eligible for the bar overlay.
type Mask struct {
	width  int
	height int

	scratch   []bool
	committed []bool
}

// New allocates a cleared mask.
func New(width, height int) *Mask {
	return &Mask{
		width:     width,
		height:    height,
		scratch:   make([]bool, width*height),
		committed: make([]bool, width*height),
	}
}

// Width returns the mask's width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask's height in pixels.
func (m *Mask) Height() int { return m.height }

// Scratch reports the scratch bit at (x, y).
func (m *Mask) Scratch(x, y int) bool {
	return m.scratch[y*m.width+x]
}

// SetScratch marks (x, y) static in the scratch representation only. The
// change becomes visible to the renderer at the next Commit.
func (m *Mask) SetScratch(x, y int) {
	m.scratch[y*m.width+x] = true
}

// Committed reports the render-visible bit at (x, y).
func (m *Mask) Committed(x, y int) bool {
	return m.committed[y*m.width+x]
}

// Commit copies the scratch representation into the committed one.
func (m *Mask) Commit() {
	copy(m.committed, m.scratch)
}

// ClearDisc clears every pixel within radius r of (cx, cy), boundary
// inclusive, in both representations simultaneously. onClear, if non-nil,
// is invoked for every pixel inside the disc whether or not it was set;
// the caller uses it to reset pixel ages. Idempotent per pixel.
func (m *Mask) ClearDisc(cx, cy int, r float64, onClear func(x, y int)) {
	if r < 0 {
		return
	}
	ri := int(r)
	r2 := r * r
	for y := max(0, cy-ri); y <= min(m.height-1, cy+ri); y++ {
		dy := float64(y - cy)
		for x := max(0, cx-ri); x <= min(m.width-1, cx+ri); x++ {
			dx := float64(x - cx)
			if dx*dx+dy*dy > r2 {
				continue
			}
			i := y*m.width + x
			m.scratch[i] = false
			m.committed[i] = false
			if onClear != nil {
				onClear(x, y)
			}
		}
	}
}

// Count returns the number of set scratch bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.scratch {
		if b {
			n++
		}
	}
	return n
}
