// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writer

// Writer pairs a computed value with the log accumulated while computing it.
// Writer[A] is immutable: fields are unexported and every operation returns
// a new instance.
//
// The zero Writer holds the zero value of A and an empty log.
type Writer[A any] struct {
	value A
	log   string
}

// New constructs a Writer from a value and a log.
// Both are stored as given. The log is not trimmed or otherwise normalized.
func New[A any](value A, log string) Writer[A] {
	return Writer[A]{value: value, log: log}
}

// Value returns the computed value.
//
// Reference types (slices, maps, pointers) are returned as stored; callers
// that mutate them through the result share that mutation with every copy
// of the Writer.
func (w Writer[A]) Value() A { return w.value }

// Log returns the accumulated log.
func (w Writer[A]) Log() string { return w.log }

// Run returns both the value and the log.
func (w Writer[A]) Run() (A, string) { return w.value, w.log }

// Tell creates a Writer carrying only a log.
func Tell(log string) Writer[struct{}] {
	return Writer[struct{}]{log: log}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Listen exposes the log alongside the value.
// The returned Writer keeps the same log.
func Listen[A any](w Writer[A]) Writer[Pair[A, string]] {
	return Writer[Pair[A, string]]{
		value: Pair[A, string]{Fst: w.value, Snd: w.log},
		log:   w.log,
	}
}

// Censor rewrites the log with f, leaving the value unchanged.
func Censor[A any](f func(string) string, w Writer[A]) Writer[A] {
	return Writer[A]{value: w.value, log: f(w.log)}
}
