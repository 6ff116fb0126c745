package display

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/burnbar/overlay/internal/errors"
	"github.com/burnbar/overlay/internal/mask"
)

// TermSurface previews the overlay in a terminal, one cell per engine
// pixel. Bar pixels render as solid blocks in the bar colour, masked
// pixels outside the band as dim shade blocks, and pass-through pixels as
// blanks. Pressing q, Esc or Ctrl-C destroys the surface.
type TermSurface struct {
	screen tcell.Screen

	done     chan struct{}
	doneOnce sync.Once
	finiOnce sync.Once
}

// NewTermSurface initializes the terminal screen and starts its event
// loop.
func NewTermSurface() (*TermSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSurfaceUnavailable, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, errors.CodeSurfaceUnavailable, "failed to initialize terminal screen")
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.HideCursor()

	t := &TermSurface{screen: screen, done: make(chan struct{})}
	go t.eventLoop()
	return t, nil
}

func (t *TermSurface) eventLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.markDone()
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				t.markDone()
				return
			case ev.Rune() == 'q':
				t.markDone()
				return
			}
		case *tcell.EventResize:
			// The engine picks the new size up on its next redraw.
			t.screen.Sync()
		}
	}
}

func (t *TermSurface) markDone() {
	t.doneOnce.Do(func() { close(t.done) })
}

// Size implements Surface.
func (t *TermSurface) Size() (int, int) {
	return t.screen.Size()
}

// Present implements Surface.
func (t *TermSurface) Present(overlay *image.RGBA, m *mask.Mask) error {
	w, h := overlay.Rect.Dx(), overlay.Rect.Dy()
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := overlay.RGBAAt(x, y)
			switch {
			case px.A != 0:
				style := tcell.StyleDefault.Foreground(
					tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B)))
				t.screen.SetContent(x, y, '█', nil, style)
			case m.Committed(x, y):
				t.screen.SetContent(x, y, '░', nil, dim)
			default:
				t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	}
	t.screen.Show()
	return nil
}

// Done implements Surface.
func (t *TermSurface) Done() <-chan struct{} { return t.done }

// Close implements Surface.
func (t *TermSurface) Close() error {
	t.markDone()
	t.finiOnce.Do(t.screen.Fini)
	return nil
}

var _ Surface = (*TermSurface)(nil)
