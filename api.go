// Package spannify renders a live, human-readable tree of nested call-stack
// activity. Code enters and exits logical sections ("spans"), and spannify
// prints matching enter/exit markers indented to the current nesting depth.
//
// It is a debugging aid, not a telemetry pipeline: there are no timestamps,
// no attributes beyond a name, no sampling and no export. The output is the
// product.
//
// Core Components:.
//   - Spanner: Owns the sink, the shared depth counter and the configuration.
//   - Span: A scoped handle guaranteeing one matched exit per enter.
//   - Config: Immutable formatting and filtering rules.
//   - Buffer: A thread-safe in-memory sink, handy for tests.
//
// Basic Usage:.
//
//	spanner := spannify.NewStdout()
//
//	func fib(n int) int {
//		defer spanner.Enterf("fib(%d)", n).Finish()
//		if n < 3 {
//			return min(n, 1)
//		}
//		return fib(n-1) + fib(n-2)
//	}
//
// Enter evaluates immediately, Finish is deferred, so the one-liner above
// brackets the whole function body. Output for fib(5):
//
//	┌fib(5)
//	|  fib(4)
//	|   ┌fib(3)
//	|   ┆  fib(2)
//	|   ┆  fib(2)
//	|   ┆  fib(1)
//	|   ┆  fib(1)
//	|   └fib(3)
//	|   ┌fib(2)
//	|   └fib(2)
//	|  fib(4)
//	|  fib(3)
//	|   ┌fib(2)
//	|   └fib(2)
//	|   ┌fib(1)
//	|   └fib(1)
//	|  fib(3)
//	└fib(5)
//
// Thread Safety:.
//
// Spanner is safe for concurrent use by multiple goroutines: the depth
// counter is atomic and sink writes are serialized. Concurrent callers do
// not get a coherent single tree, though - lines from unrelated goroutines
// interleave arbitrarily. For a readable per-goroutine tree, give each
// goroutine its own Spanner.
//
// Failure Policy:.
//
// Tracing never changes program behavior. Sink write errors are swallowed
// and depth bookkeeping proceeds regardless, so the worst failure mode is
// missing output, never a crash or an altered return value.
package spannify

import "github.com/fatih/color"

// DepthMap maps an indentation column to the bar glyph drawn there.
// It must be pure: it is called once per displayed column per line.
type DepthMap func(depth int) rune

// ColorMap optionally colors the glyph drawn at a column. Returning nil
// leaves the glyph uncolored. Like DepthMap, it must be pure.
type ColorMap func(depth int) *color.Color
