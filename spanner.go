package spannify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Spanner generates spans and keeps track of the nesting depth.
// Safe for concurrent use by multiple goroutines.
//
// The depth counter is shared by every Span created from one Spanner, on
// purpose: recursion and sequential calls on one goroutine nest correctly
// with no explicit tree structure. Concurrent goroutines sharing a Spanner
// stay race-free but produce interleaved lines; use one Spanner per
// goroutine when a coherent tree matters.
type Spanner struct {
	mu     sync.Mutex // Serializes sink writes.
	w      io.Writer
	depth  atomic.Int64
	config Config
}

// New creates a Spanner writing to w, with depth 0 and the default config.
// It never fails; acquiring the sink is the caller's job.
func New(w io.Writer) *Spanner {
	return &Spanner{
		w:      w,
		config: NewConfig(),
	}
}

// NewStdout creates a Spanner writing to standard output.
func NewStdout() *Spanner {
	return New(os.Stdout)
}

// NewFile creates a Spanner writing to an open file.
func NewFile(f *os.File) *Spanner {
	return New(f)
}

// NewBufferSpanner creates a Spanner backed by a fresh in-memory Buffer and
// returns both, for inspecting the rendered output afterwards.
func NewBufferSpanner() (*Spanner, *Buffer) {
	buf := NewBuffer()
	return New(buf), buf
}

// WithConfig replaces the configuration, returning a new Spanner that keeps
// the receiver's sink and current depth. The receiver should be discarded:
// reconfiguration is meant to happen once, right after construction, before
// any spans exist.
func (s *Spanner) WithConfig(cfg Config) *Spanner {
	next := &Spanner{
		w:      s.w,
		config: cfg,
	}
	next.depth.Store(s.depth.Load())
	return next
}

// Enter begins a span at LevelInfo. The returned Span must be finished
// exactly when the traced section ends, typically with defer:
//
//	defer spanner.Enter("load").Finish()
func (s *Spanner) Enter(name string) *Span {
	return s.enter(LevelInfo, name)
}

// EnterLevel begins a span at the given level. If the level is below the
// configured minimum the span is suppressed: depth is untouched, nothing is
// written, and Finish on the returned Span is a no-op.
func (s *Spanner) EnterLevel(level Level, name string) *Span {
	return s.enter(level, name)
}

// Enterf begins a LevelInfo span with a formatted name.
func (s *Spanner) Enterf(format string, args ...any) *Span {
	return s.enter(LevelInfo, fmt.Sprintf(format, args...))
}

// EnterLevelf begins a span at the given level with a formatted name.
func (s *Spanner) EnterLevelf(level Level, format string, args ...any) *Span {
	return s.enter(level, fmt.Sprintf(format, args...))
}

// Trace runs fn inside a LevelInfo span. The exit line is emitted even when
// fn panics; the panic itself propagates unchanged.
func (s *Spanner) Trace(name string, fn func()) {
	defer s.enter(LevelInfo, name).Finish()
	fn()
}

// TraceLevel runs fn inside a span at the given level.
func (s *Spanner) TraceLevel(level Level, name string, fn func()) {
	defer s.enter(level, name).Finish()
	fn()
}

// Depth returns the number of currently open, non-suppressed spans.
func (s *Spanner) Depth() int {
	return int(s.depth.Load())
}

// enter performs the entry half of the span lifecycle: the suppression
// decision, the atomic depth increment, and the enter-line write. The exit
// line is rendered here too, so Finish does no formatting work.
func (s *Spanner) enter(level Level, name string) *Span {
	span := &Span{parent: s, level: level}
	if level < s.config.Level {
		return span
	}

	// A single fetch-and-increment, so concurrent callers never observe
	// the same pre-increment depth.
	depth := int(s.depth.Add(1) - 1)

	enterMessage, dropMessage := renderMessages(name, depth, &s.config)
	span.dropMessage = dropMessage
	s.write(enterMessage)
	return span
}

// write appends one rendered line to the sink. Write errors are swallowed:
// tracing is best-effort and must never surface a failure into the traced
// program.
func (s *Spanner) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(line)
}
