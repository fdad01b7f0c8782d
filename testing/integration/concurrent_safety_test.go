package integration

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/mikeyQwn/spannify"
)

// TestConcurrentBalance hammers one shared spanner from many goroutines and
// checks the invariants that survive interleaving: depth returns to zero,
// and every enter line has a matching exit line.
func TestConcurrentBalance(t *testing.T) {
	spanner, buf := spannify.NewBufferSpanner()

	var wg sync.WaitGroup
	goroutines := 20
	spansPerGoroutine := 50

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < spansPerGoroutine; j++ {
				outer := spanner.Enterf("worker-%d-outer", id)
				inner := spanner.Enterf("worker-%d-inner", id)
				inner.Finish()
				outer.Finish()
			}
		}(i)
	}
	wg.Wait()

	if depth := spanner.Depth(); depth != 0 {
		t.Errorf("expected depth 0 after all spans finished, got %d", depth)
	}

	expectedLines := goroutines * spansPerGoroutine * 4
	if lines := bytes.Count(buf.Bytes(), []byte("\n")); lines != expectedLines {
		t.Errorf("expected %d lines, got %d", expectedLines, lines)
	}
}

// TestConcurrentSuppression mixes emitted and suppressed spans across
// goroutines; suppression must never disturb the shared depth counter.
func TestConcurrentSuppression(t *testing.T) {
	spanner, buf := spannify.NewBufferSpanner()
	spanner = spanner.WithConfig(spannify.NewConfig().WithLevel(spannify.LevelInfo))

	var wg sync.WaitGroup
	goroutines := 10

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				emitted := spanner.EnterLevelf(spannify.LevelWarn, "loud-%d", id)
				suppressed := spanner.EnterLevelf(spannify.LevelDebug, "quiet-%d", id)
				suppressed.Finish()
				emitted.Finish()
			}
		}(i)
	}
	wg.Wait()

	if depth := spanner.Depth(); depth != 0 {
		t.Errorf("expected depth 0, got %d", depth)
	}

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("quiet")) {
		t.Error("suppressed spans leaked into the output")
	}
	expectedLines := goroutines * 100 * 2
	if lines := bytes.Count([]byte(out), []byte("\n")); lines != expectedLines {
		t.Errorf("expected %d lines, got %d", expectedLines, lines)
	}
}

// TestSpannerPerGoroutine is the recommended pattern for coherent trees
// under concurrency: each goroutine gets its own spanner and sink, and each
// tree comes out exactly as if it had run alone.
func TestSpannerPerGoroutine(t *testing.T) {
	goroutines := 8

	expected := func(id int) string {
		return fmt.Sprintf("┌task-%d\n|  step-%d\n|  step-%d\n└task-%d\n", id, id, id, id)
	}

	outputs := make([]*spannify.Buffer, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		spanner, buf := spannify.NewBufferSpanner()
		outputs[i] = buf

		wg.Add(1)
		go func(id int, s *spannify.Spanner) {
			defer wg.Done()
			task := s.Enterf("task-%d", id)
			s.Enterf("step-%d", id).Finish()
			task.Finish()
		}(i, spanner)
	}
	wg.Wait()

	for i, buf := range outputs {
		if got := buf.String(); got != expected(i) {
			t.Errorf("goroutine %d: expected %q, got %q", i, expected(i), got)
		}
	}
}
