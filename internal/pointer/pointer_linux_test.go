//go:build linux

package pointer

import "testing"

func TestParseShellLocation(t *testing.T) {
	out := "X=1133\nY=271\nSCREEN=0\nWINDOW=58720261\n"

	x, y, err := parseShellLocation(out)
	if err != nil {
		t.Fatalf("parseShellLocation() error: %v", err)
	}
	if x != 1133 || y != 271 {
		t.Errorf("parseShellLocation() = (%d, %d), want (1133, 271)", x, y)
	}
}

func TestParseShellLocationOrigin(t *testing.T) {
	x, y, err := parseShellLocation("X=0\nY=0\nSCREEN=0\n")
	if err != nil {
		t.Fatalf("parseShellLocation() error: %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("parseShellLocation() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestParseShellLocationGarbage(t *testing.T) {
	if _, _, err := parseShellLocation("no pointer here"); err == nil {
		t.Error("expected error for unparseable output")
	}
}
