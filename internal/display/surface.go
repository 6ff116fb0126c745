// Package display defines the overlay surface boundary.
//
// Acquiring a borderless, input-transparent, always-on-top OS overlay
// window is outside the engine's scope; the engine only needs something it
// can size itself to and hand composited frames. The in-tree
// implementation is a terminal preview (one cell per engine pixel); a
// compositor-backed window would implement the same interface.
package display

import (
	"image"

	"github.com/burnbar/overlay/internal/mask"
)

// Surface is a drawable target sized to the full display, with alpha
// compositing support.
type Surface interface {
	// Size returns the surface dimensions in pixels. The engine
	// re-queries it on every redraw and reinitializes on change.
	Size() (width, height int)

	// Present displays an already-composited overlay frame together with
	// the committed 1-bit mask. Transparent overlay pixels pass the real
	// screen content through.
	Present(overlay *image.RGBA, m *mask.Mask) error

	// Done is closed when the surface is destroyed; the engine treats
	// that as shutdown.
	Done() <-chan struct{}

	// Close releases the surface. Idempotent.
	Close() error
}
