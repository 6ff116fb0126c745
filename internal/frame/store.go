// Package frame holds the double-buffered screen snapshots.
package frame

import (
	"image"
	"image/draw"
)

// Store keeps two full-resolution snapshots of the display and swaps their
// roles on every capture: the buffer that was "previous" receives the new
// snapshot and becomes "current". Both buffers always share one geometry;
// a size change discards the store entirely.
type Store struct {
	bufs [2]*image.RGBA
	idx  int // index of the current buffer
}

// NewStore allocates both buffers at the given size, zero-filled.
func NewStore(width, height int) *Store {
	s := &Store{}
	for i := range s.bufs {
		s.bufs[i] = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return s
}

// Width returns the buffer width in pixels.
func (s *Store) Width() int { return s.bufs[0].Rect.Dx() }

// Height returns the buffer height in pixels.
func (s *Store) Height() int { return s.bufs[0].Rect.Dy() }

// Push copies img into the previous-role buffer and swaps roles, so img
// becomes the current snapshot and the old current becomes previous.
// img must match the store's geometry.
func (s *Store) Push(img *image.RGBA) {
	prev := 1 - s.idx
	draw.Draw(s.bufs[prev], s.bufs[prev].Rect, img, img.Rect.Min, draw.Src)
	s.idx = prev
}

// Current returns the most recent snapshot.
func (s *Store) Current() *image.RGBA { return s.bufs[s.idx] }

// Previous returns the snapshot before the current one.
func (s *Store) Previous() *image.RGBA { return s.bufs[1-s.idx] }
