//go:build linux

package pointer

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/burnbar/overlay/internal/errors"
)

type linuxSource struct{}

// NewDeviceSource creates a pointer source backed by xdotool. Its absence
// is a fatal precondition: the overlay cannot heal without pointer input.
func NewDeviceSource() (Source, error) {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, errors.Wrap(err, errors.CodePointerFailed, "xdotool not found (required for pointer polling)")
	}
	return &linuxSource{}, nil
}

func (l *linuxSource) Position() (int, int, error) {
	out, err := exec.Command("xdotool", "getmouselocation", "--shell").Output()
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.CodePointerFailed, "xdotool getmouselocation failed")
	}
	return parseShellLocation(string(out))
}

// parseShellLocation extracts X and Y from xdotool's --shell output
// ("X=123\nY=456\nSCREEN=0\n...").
func parseShellLocation(out string) (int, int, error) {
	var x, y int
	var haveX, haveY bool
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		switch k {
		case "X":
			x, haveX = n, true
		case "Y":
			y, haveY = n, true
		}
	}
	if !haveX || !haveY {
		return 0, 0, errors.New(errors.CodePointerFailed, "unparseable xdotool output")
	}
	return x, y, nil
}
