package canopy

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut receives debug output. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugStats holds per-frame timing and traversal metrics.
// Only populated when Document.debug is true.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	eventCount   int
	surfaceCount int
	pendingCount int
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-control
// access panics, tree depth and child count warnings are printed, and
// per-frame stats are logged to stderr.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Document debug flag so that
// control operations (which may not belong to a document yet) can check it
// cheaply. Only valid with a single Document; multiple Documents with
// differing debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLog prints frame stats.
func (d *Document) debugLog(stats debugStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[canopy] update: %v | draw: %v | events: %d | surfaces: %d | pending: %d\n",
		stats.updateTime, stats.drawTime, stats.eventCount, stats.surfaceCount, stats.pendingCount)
}

// DebugData prints the committed surface stack, bottom to top.
func (d *Document) DebugData() {
	_, _ = fmt.Fprintf(debugOut, "[canopy] surface count: %d\n", len(d.registry.surfaces))
	for i, s := range d.registry.surfaces {
		_, _ = fmt.Fprintf(debugOut, "[canopy] surface %d: %q controls=%d modal=%v\n",
			i, s.name, s.ChildCount(), s.Modal)
	}
	if n := len(d.registry.pending); n > 0 {
		_, _ = fmt.Fprintf(debugOut, "[canopy] pending changes: %d\n", n)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed
// control is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(c *Control, op string) {
	if c.disposed {
		panic(fmt.Sprintf("canopy debug: %s on disposed control %q", op, c.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Control) {
	depth := 0
	for p := c; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[canopy] warning: tree depth %d exceeds %d (control %q)\n",
			depth, debugMaxTreeDepth, c.Name)
	}
}

// debugCheckChildCount warns if a control has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Control) {
	if len(c.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[canopy] warning: control %q has %d children (threshold %d)\n",
			c.Name, len(c.children), debugMaxChildCount)
	}
}
