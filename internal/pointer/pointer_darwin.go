//go:build darwin

package pointer

import (
	"github.com/burnbar/overlay/internal/errors"
)

// NewDeviceSource is not implemented on darwin; querying the pointer needs
// CGo against CoreGraphics, which this build does not link.
func NewDeviceSource() (Source, error) {
	return nil, errors.New(errors.CodePointerFailed, "pointer polling not supported on darwin")
}
