// Package bar animates and composites the scrolling anti-burn-in bar.
package bar

import (
	"image"
	"image/color"
	"time"
)

// Animator advances the bar's horizontal phase. The offset stays in
// [0, width) and wraps; on resize it is rescaled proportionally so the
// bar keeps its visual position relative to the screen width.
type Animator struct {
	offset    int
	increment int
	width     int
}

// NewAnimator creates an animator for the given surface width.
func NewAnimator(increment, width int) *Animator {
	return &Animator{increment: increment, width: width}
}

// Offset returns the current bar phase.
func (a *Animator) Offset() int { return a.offset }

// Width returns the width the animator is tracking.
func (a *Animator) Width() int { return a.width }

// Tick advances the bar by one increment, wrapping modulo width.
func (a *Animator) Tick() {
	a.offset = (a.offset + a.increment) % a.width
}

// Rescale adjusts the offset for a new width so the bar's position is
// preserved proportionally. Must run before dimension-keyed buffers are
// reallocated, while the old width is still known.
func (a *Animator) Rescale(newWidth int) {
	a.offset = a.offset * newWidth / a.width
	a.width = newWidth
}

// TickPeriod derives the animation cadence so one full traversal of the
// width takes approximately the given wall-clock duration.
func (a *Animator) TickPeriod(traversal time.Duration) time.Duration {
	p := traversal * time.Duration(a.increment) / time.Duration(a.width)
	if p < time.Millisecond {
		p = time.Millisecond
	}
	return p
}

// Masked is the view of the committed mask the compositor needs.
type Masked interface {
	Committed(x, y int) bool
}

// Compositor renders the repeating two-stop gradient bar into an overlay
// frame: bar colour inside the band wherever the mask is set, transparent
// everywhere else so the real screen content shows through.
type Compositor struct {
	color    color.RGBA
	fraction float64
}

// NewCompositor creates a compositor with the given bar colour and the
// bar's width as a fraction of one period.
func NewCompositor(c color.RGBA, fraction float64) *Compositor {
	return &Compositor{color: c, fraction: fraction}
}

// InBand reports whether column x falls inside the bar band for the given
// offset, with the pattern tiled at period width.
func (c *Compositor) InBand(x, offset, width int) bool {
	phase := ((x-offset)%width + width) % width
	return float64(phase) < c.fraction*float64(width)
}

// Render writes the overlay frame for the given committed mask and bar
// offset. dst must match the mask geometry; every pixel is written, so no
// prior clear is needed.
func (c *Compositor) Render(dst *image.RGBA, m Masked, offset int) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()

	// Band membership is row-invariant.
	band := make([]bool, w)
	for x := 0; x < w; x++ {
		band[x] = c.InBand(x, offset, w)
	}

	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			o := x * 4
			if band[x] && m.Committed(x, y) {
				row[o] = c.color.R
				row[o+1] = c.color.G
				row[o+2] = c.color.B
				row[o+3] = c.color.A
			} else {
				row[o] = 0
				row[o+1] = 0
				row[o+2] = 0
				row[o+3] = 0
			}
		}
	}
}
