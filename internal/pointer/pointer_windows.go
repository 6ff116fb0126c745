//go:build windows

package pointer

import (
	"github.com/lxn/win"

	"github.com/burnbar/overlay/internal/errors"
)

type windowsSource struct{}

// NewDeviceSource creates a pointer source backed by GetCursorPos.
func NewDeviceSource() (Source, error) {
	return &windowsSource{}, nil
}

func (w *windowsSource) Position() (int, int, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, errors.New(errors.CodePointerFailed, "GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}
