package bough

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug gates every debug check and log line. Node and layout
// operations have no Scene pointer, so the flag is package level. Only valid
// with a single Scene; the most recent SetDebugMode call wins.
var globalDebug bool

// debugOut is where debug lines are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// SetDebug enables or disables debug checks and per-pass layout logging.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// layoutStats holds per-pass metrics. Only populated when debug is on.
type layoutStats struct {
	items     int
	mainSize  float64
	remaining float64
	duration  time.Duration
}

// debugLogLayout prints one line describing a finished layout pass.
func debugLogLayout(l *FlexLayout, stats layoutStats) {
	_, _ = fmt.Fprintf(debugOut,
		"[bough] layout %q: %s items=%d main=%.2f remaining=%.2f took=%v\n",
		l.cfg.Name, l.cfg.Direction, stats.items, stats.mainSize, stats.remaining, stats.duration)
}

func debugWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[bough] warning: "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("bough debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugWarn("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugWarn("node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugCheckItemCount warns if a layout holds more than 1000 items.
func debugCheckItemCount(l *FlexLayout) {
	if len(l.children) > debugMaxChildCount {
		debugWarn("layout %q has %d items (threshold %d)", l.cfg.Name, len(l.children), debugMaxChildCount)
	}
}
