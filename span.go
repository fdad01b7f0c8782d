package spannify

import (
	"strings"
	"sync/atomic"
)

// Span is the handle for one traced section. It is created only by a
// Spanner's Enter variants and must be finished exactly when the section
// ends - in the common case by deferring Finish at the call site that
// entered it.
//
// A Span must not outlive its Spanner, and only one Finish takes effect:
// the handle owns exactly one depth decrement for the one increment its
// creation performed.
type Span struct {
	parent      *Spanner
	dropMessage []byte
	level       Level
	done        atomic.Bool
}

// Finish emits the exit line and releases the depth held by this span.
// Safe to call multiple times - subsequent calls are no-ops. On a span that
// was suppressed at entry, Finish does nothing at all, so entry and exit
// suppression always agree.
func (sp *Span) Finish() {
	if !sp.done.CompareAndSwap(false, true) {
		return
	}
	if sp.level < sp.parent.config.Level {
		return
	}

	// Decrement before writing, mirroring enter; depth stays consistent
	// even when the sink is failing.
	sp.parent.depth.Add(-1)
	sp.parent.write(sp.dropMessage)
}

// renderMessages builds the enter and exit lines for a span at the given
// pre-increment depth. Both lines share the indentation; they differ only
// in the marker glyph.
//
// Each depth level consumes Tabwidth display columns: a bar glyph or blank
// in the first column (bar when Skip > 0 and the column index is a multiple
// of Skip), blanks in the rest. After the indentation comes the marker slot,
// which holds '┌'/'└' when the line's own depth hits the Skip rule and a
// blank otherwise.
func renderMessages(name string, depth int, cfg *Config) (enter, drop []byte) {
	var indent strings.Builder
	indent.Grow(depth*cfg.Tabwidth + 1)
	for i := 0; i < depth; i++ {
		if cfg.Skip > 0 && i%cfg.Skip == 0 {
			indent.WriteString(cfg.glyph(i))
		} else {
			indent.WriteByte(' ')
		}
		for pad := 1; pad < cfg.Tabwidth; pad++ {
			indent.WriteByte(' ')
		}
	}

	prefix := indent.String()
	enter = []byte(prefix + cfg.marker(depth, '┌') + name + "\n")
	drop = []byte(prefix + cfg.marker(depth, '└') + name + "\n")
	return enter, drop
}
