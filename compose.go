// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writer

// Separator is placed between the logs of two sequenced stages.
//
// Fragments are joined verbatim: a fragment that already ends in a space
// produces a double space at the join point.
const Separator = " "

// Stage is a function producing a Writer.
// Any func(A) Writer[B] can be passed where a Stage[A, B] is expected.
type Stage[A, B any] = func(A) Writer[B]

// Compose sequences two stages into one.
// For input x it runs f(x), feeds the value to g, and returns g's value
// with the log f(x).Log() + Separator + g(...).Log().
//
// Compose(f, g)(x) is equivalent to Bind(f(x), g).
func Compose[A, B, C any](f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return ComposeWith(Separator, f, g)
}

// ComposeWith is Compose with a caller-chosen separator.
func ComposeWith[A, B, C any](sep string, f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return func(a A) Writer[C] {
		p1 := f(a)
		p2 := g(p1.value)
		return Writer[C]{value: p2.value, log: p1.log + sep + p2.log}
	}
}
