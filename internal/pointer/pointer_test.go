package pointer

import (
	"fmt"
	"testing"
)

type fixedSource struct {
	x, y int
	err  error
}

func (f *fixedSource) Position() (int, int, error) {
	return f.x, f.y, f.err
}

func termSize(w, h int) func() (int, int) {
	return func() (int, int) { return w, h }
}

func TestScaledMapsCoordinates(t *testing.T) {
	// 1920x1080 device space onto an 80x24 surface.
	src := Scaled(&fixedSource{x: 960, y: 540}, 1920, 1080, termSize(80, 24))

	x, y, err := src.Position()
	if err != nil {
		t.Fatalf("Position() error: %v", err)
	}
	if x != 40 || y != 12 {
		t.Errorf("Position() = (%d, %d), want (40, 12)", x, y)
	}
}

func TestScaledClampsToBounds(t *testing.T) {
	src := Scaled(&fixedSource{x: 1920, y: 1080}, 1920, 1080, termSize(80, 24))

	x, y, _ := src.Position()
	if x != 79 || y != 23 {
		t.Errorf("Position() = (%d, %d), want clamped (79, 23)", x, y)
	}

	src = Scaled(&fixedSource{x: -5, y: -5}, 1920, 1080, termSize(80, 24))
	x, y, _ = src.Position()
	if x != 0 || y != 0 {
		t.Errorf("Position() = (%d, %d), want clamped (0, 0)", x, y)
	}
}

func TestScaledTracksTargetResize(t *testing.T) {
	w, h := 80, 24
	src := Scaled(&fixedSource{x: 960, y: 540}, 1920, 1080, func() (int, int) { return w, h })

	x, _, _ := src.Position()
	if x != 40 {
		t.Fatalf("x = %d, want 40", x)
	}

	w, h = 160, 48
	x, y, _ := src.Position()
	if x != 80 || y != 24 {
		t.Errorf("Position() = (%d, %d) after target resize, want (80, 24)", x, y)
	}
}

func TestScaledPropagatesError(t *testing.T) {
	src := Scaled(&fixedSource{err: fmt.Errorf("device gone")}, 1920, 1080, termSize(80, 24))

	if _, _, err := src.Position(); err == nil {
		t.Error("expected error from underlying source")
	}
}
