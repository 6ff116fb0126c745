package capture

import (
	"image"

	"github.com/kbinani/screenshot"

	"github.com/burnbar/overlay/internal/errors"
)

// displayGrabber captures the primary display at native resolution.
type displayGrabber struct{}

func (displayGrabber) bounds() (int, int, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return 0, 0, errNoDisplay()
	}
	b := screenshot.GetDisplayBounds(0)
	return b.Dx(), b.Dy(), nil
}

func (displayGrabber) grab() (*image.RGBA, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, errNoDisplay()
	}
	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(0))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCaptureFailed, "failed to capture display")
	}
	return img, nil
}

var _ grabber = displayGrabber{}
