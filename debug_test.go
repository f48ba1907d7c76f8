package bough

import (
	"bytes"
	"strings"
	"testing"
)

// captureDebug turns debug mode on and redirects debug output for the
// duration of the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevDebug := debugOut, globalDebug
	debugOut = &buf
	globalDebug = true
	t.Cleanup(func() {
		debugOut = prevOut
		globalDebug = prevDebug
	})
	return &buf
}

func TestDebugLogsLayoutPass(t *testing.T) {
	buf := captureDebug(t)
	NewFlexLayout(FlexConfig{Name: "hud"}).SetContainer(NewBox(0, 0, 100, 10)).
		AddChild(NewBox(0, 0, 10, 10)).
		CalculateLayout()
	out := buf.String()
	if !strings.Contains(out, `[bough] layout "hud": row items=1`) {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "remaining=90.00") {
		t.Errorf("output missing remaining space: %q", out)
	}
}

func TestDebugSilentWhenDisabled(t *testing.T) {
	buf := captureDebug(t)
	globalDebug = false
	NewFlexLayout(FlexConfig{}).SetContainer(NewBox(0, 0, 100, 10)).
		AddChild(NewBox(0, 0, 10, 10)).
		CalculateLayout()
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugWarnsOnZeroWeightedShrink(t *testing.T) {
	buf := captureDebug(t)
	NewFlexLayout(FlexConfig{Name: "bar", Gap: 50}).SetContainer(NewBox(0, 0, 10, 10)).
		AddChild(NewBox(0, 0, 0, 10)).AddChild(NewBox(0, 0, 0, 10)).
		CalculateLayout()
	if !strings.Contains(buf.String(), `warning: layout "bar": overflow 40.00 with zero weighted size`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureDebug(t)
	parent := NewNode("n0")
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewNode("deep")
		parent.AddChild(child)
		parent = child
	}
	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("expected tree depth warning, got %q", buf.String())
	}
}
