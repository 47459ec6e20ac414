// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package writer provides a value-with-log carrier and composition of
// functions that return it.
//
// A [Writer] pairs a computed value with the log accumulated while
// computing it. Functions that would otherwise append to a shared,
// mutable log instead return their trace as part of their result, so
// every dependency of a function is visible in its signature and no
// synchronization is needed to call it from several goroutines.
//
// # Core
//
//   - [Writer]: Immutable (value, log) pair
//   - [New]: Construct a Writer; the log is stored verbatim
//   - [Writer.Value], [Writer.Log], [Writer.Run]: Accessors
//   - [Stage]: Any func(A) Writer[B]
//   - [Compose]: Sequence two stages, joining their logs with [Separator]
//
// # Log Joining
//
// Compose joins the first stage's log, a single space, and the second
// stage's log, in execution order. Fragments are never trimmed:
//
//	scream := func(s string) writer.Writer[string] {
//		return writer.New(strings.ToUpper(s), "used scream! ")
//	}
//	words := func(s string) writer.Writer[[]string] {
//		return writer.New(strings.Fields(s), "used words! ")
//	}
//
//	w := writer.Compose(scream, words)("hello world")
//	// w.Value() == []string{"HELLO", "WORLD"}
//	// w.Log()   == "used scream!  used words! "
//
// [ComposeWith] takes the separator as an argument.
//
// Nesting is free to group either way: Compose(Compose(f, g), h) and
// Compose(f, Compose(g, h)) produce the same log for the same input.
//
// # Sequencing Existing Writers
//
//   - [Bind]: Continue from a Writer with a stage (Compose(f, g)(x) == Bind(f(x), g))
//   - [Map]: Transform the value, log unchanged
//   - [Tell]: A Writer that only carries a log
//   - [Listen]: Expose the log alongside the value as a [Pair]
//   - [Censor]: Rewrite the log, value unchanged
//
// # Emitting
//
// [Emit] hands a finished Writer's log to a [log/slog.Logger] and returns
// the value. Nothing else in the package performs I/O.
package writer
