package tandem

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug mirrors the debug flag of the most recent Manager.SetDebugMode
// call so Object methods, which have no manager reference, can run checks.
var globalDebug bool

// debugOut receives every debug line. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugOutput redirects debug output, for example to a log file. nil
// restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

// debugf writes a prefixed debug line.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[tandem] "+format+"\n", args...)
}

// now is the clock for frame stats. It is only read in debug mode.
var now = time.Now

// frameStats holds per-frame timing and command metrics.
// Only populated when the manager is in debug mode.
type frameStats struct {
	inputTime    time.Duration
	updateTime   time.Duration
	presentTime  time.Duration
	commandCount int
}

// debugLog prints the frame stats.
func (m *Manager) debugLog(stats frameStats) {
	if !m.debug {
		return
	}
	total := stats.inputTime + stats.updateTime + stats.presentTime
	debugf("frame %d | input: %v | update: %v | present: %v | total: %v",
		m.frame, stats.inputTime, stats.updateTime, stats.presentTime, total)
	if stats.commandCount > 0 {
		debugf("commands: %d", stats.commandCount)
	}
}

// countCommands sums the recorded commands on every bound screen whose
// target is a CommandBuffer. Other surfaces count as zero.
func (m *Manager) countCommands() int {
	n := 0
	for screen := Screen(0); screen < numScreens; screen++ {
		if m.bound[screen] < 0 {
			continue
		}
		if buf, ok := m.platform.Target(screen).(*CommandBuffer); ok {
			n += buf.Len()
		}
	}
	return n
}

// debugMaxAttachDepth is the attachment depth above which a warning is logged.
const debugMaxAttachDepth = 32

// debugCheckAttachDepth warns if o sits deeper than debugMaxAttachDepth.
func debugCheckAttachDepth(o *Object) {
	depth := 0
	for p := o; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxAttachDepth {
		debugf("warning: attach depth %d exceeds %d (%s object)",
			depth, debugMaxAttachDepth, o.Kind)
	}
}
