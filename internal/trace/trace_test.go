package trace

import (
	"context"
	"testing"
)

func TestStartSpanAssignsID(t *testing.T) {
	_, s := StartSpan(context.Background(), "capture_pass")

	if s.id == "" {
		t.Error("span should have a generated ID")
	}
	if s.name != "capture_pass" {
		t.Errorf("name = %q, want capture_pass", s.name)
	}
	if s.parentID != "" {
		t.Error("root span should have no parent")
	}
}

func TestNestedSpanParent(t *testing.T) {
	ctx, parent := StartSpan(context.Background(), "redraw")
	_, child := StartSpan(ctx, "composite")

	if child.parentID != parent.id {
		t.Errorf("child parent = %q, want %q", child.parentID, parent.id)
	}
	if child.id == parent.id {
		t.Error("child should get a fresh span ID")
	}
}

func TestSetAttr(t *testing.T) {
	_, s := StartSpan(context.Background(), "capture_pass")
	s.SetAttr("promoted", 12)
	s.SetAttr("identical", true)

	if len(s.attrs) != 4 {
		t.Errorf("attrs length = %d, want 4 (two pairs)", len(s.attrs))
	}
	s.End()
}

func TestLoggerWithoutSpan(t *testing.T) {
	if Logger(context.Background()) == nil {
		t.Error("Logger should fall back to the default logger")
	}
}
