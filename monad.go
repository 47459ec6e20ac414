// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writer

// Sequencing over existing Writers.
//
// Bind and Map are the Writer counterparts of Compose: Bind continues a
// computation that has already produced a Writer, Map transforms the value
// without contributing to the log.

// Bind applies f to the value of w.
// The result carries f's value and the log w.Log() + Separator + f(...).Log().
func Bind[A, B any](w Writer[A], f Stage[A, B]) Writer[B] {
	next := f(w.value)
	return Writer[B]{value: next.value, log: w.log + Separator + next.log}
}

// Map applies a pure function to the value of w.
// The log is carried over unchanged, so no separator is added.
func Map[A, B any](w Writer[A], f func(A) B) Writer[B] {
	return Writer[B]{value: f(w.value), log: w.log}
}
