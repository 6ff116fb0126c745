// Package stale tracks per-pixel age and promotes long-static pixels.
package stale

import (
	"image"

	"github.com/burnbar/overlay/internal/mask"
)

// Tracker holds one 8-bit age counter per pixel. A pixel's age grows by one
// for every capture cycle in which all three of its colour channels stay
// within the change threshold; any larger change resets it to zero. A pixel
// whose age reaches maxAge is promoted into the mask and its age resets.
type Tracker struct {
	width  int
	height int

	maxAge    uint8
	threshold int

	ages []uint8
}

// NewTracker allocates a zeroed age map. maxAge must fit in a uint8; the
// config layer validates that before construction.
func NewTracker(width, height, maxAge, threshold int) *Tracker {
	return &Tracker{
		width:     width,
		height:    height,
		maxAge:    uint8(maxAge),
		threshold: threshold,
		ages:      make([]uint8, width*height),
	}
}

// Advance runs one diff cycle between the current and previous snapshots,
// aging unchanged pixels and promoting those that hit maxAge into m's
// scratch representation. Masked pixels are skipped entirely: once the bar
// is drawn over them their captured content is no longer trustworthy, so
// diffing them would be meaningless. Only a pointer heal unfreezes them.
//
// identical short-circuits the per-channel compare for frames the capture
// source reports byte-identical; every unmasked pixel then ages by one,
// which is exactly what comparing all-zero diffs would do.
//
// Returns the number of pixels promoted; when it is non-zero the caller
// must commit the mask before the next redraw.
func (t *Tracker) Advance(cur, prev *image.RGBA, m *mask.Mask, identical bool) int {
	promoted := 0
	for y := 0; y < t.height; y++ {
		crow := cur.Pix[y*cur.Stride:]
		prow := prev.Pix[y*prev.Stride:]
		for x := 0; x < t.width; x++ {
			if m.Scratch(x, y) {
				continue
			}
			different := false
			if !identical {
				o := x * 4
				for c := 0; c < 3; c++ {
					d := int(crow[o+c]) - int(prow[o+c])
					if d < 0 {
						d = -d
					}
					if d >= t.threshold {
						different = true
						break
					}
				}
			}
			i := y*t.width + x
			if different {
				t.ages[i] = 0
				continue
			}
			t.ages[i]++
			if t.ages[i] >= t.maxAge {
				m.SetScratch(x, y)
				t.ages[i] = 0
				promoted++
			}
		}
	}
	return promoted
}

// Reset zeroes the age at (x, y). Pointer healing calls this for every
// pixel inside the cleaning disc, masked or not.
func (t *Tracker) Reset(x, y int) {
	t.ages[y*t.width+x] = 0
}

// Age returns the current age of (x, y).
func (t *Tracker) Age(x, y int) uint8 {
	return t.ages[y*t.width+x]
}
