// Package pointer provides platform-agnostic pointer position sources
package pointer

// Source reports the current pointer position in integer device
// coordinates relative to the display.
type Source interface {
	Position() (x, y int, err error)
}

// scaled maps device coordinates from one geometry onto another, clamped
// to the target bounds of the surface.
type scaled struct {
	src          Source
	fromW, fromH int
	target       func() (w, h int)
}

// Scaled wraps src so positions reported in a fromW×fromH device space
// land in the surface's space. target is queried on every poll because the
// surface can resize at any time.
func Scaled(src Source, fromW, fromH int, target func() (w, h int)) Source {
	return &scaled{src: src, fromW: fromW, fromH: fromH, target: target}
}

func (s *scaled) Position() (int, int, error) {
	x, y, err := s.src.Position()
	if err != nil {
		return 0, 0, err
	}
	toW, toH := s.target()
	x = clamp(x*toW/s.fromW, 0, toW-1)
	y = clamp(y*toH/s.fromH, 0, toH-1)
	return x, y, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
