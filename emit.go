// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writer

import (
	"context"
	"log/slog"
)

// TraceKey is the attribute key under which Emit records a Writer's log.
const TraceKey = "trace"

// Emit writes the log of w to logger as a single record and returns the value.
// It is meant for the edge of a program, after a pipeline of stages has
// finished. A nil logger drops the log.
func Emit[A any](ctx context.Context, logger *slog.Logger, level slog.Level, msg string, w Writer[A]) A {
	if logger == nil {
		return w.value
	}
	logger.LogAttrs(ctx, level, msg, slog.String(TraceKey, w.log))
	return w.value
}
