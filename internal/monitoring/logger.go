// Package monitoring holds the diagnostic logger shared by the design stores,
// the HTTP API and the gRPC service.
package monitoring

import (
	"fmt"
	"log"
	"sync"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Recorder collects formatted log lines in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) logf(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

// Lines returns a copy of the recorded lines in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Capture redirects Logf into a new Recorder. Call restore to reinstate the
// previous logger. Capture is not safe to use from parallel tests.
func Capture() (rec *Recorder, restore func()) {
	prev := Logf
	rec = &Recorder{}
	Logf = rec.logf
	return rec, func() { Logf = prev }
}
