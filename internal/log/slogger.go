/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Slogger is a printf-style logger that wraps an `slog.Logger`.
type Slogger struct {
	Logger *slog.Logger
}

func (w *Slogger) logf(ctx context.Context, level slog.Level, msg string, a []any) {
	w.Logger.Log(ctx, level, fmt.Sprintf(msg, a...))
}

func (w *Slogger) Fatal(msg string, a ...any) {
	w.FatalContext(context.Background(), msg, a...)
}

func (w *Slogger) FatalContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelError, msg, a)
	os.Exit(1)
}

func (w *Slogger) Error(msg string, a ...any) { w.logf(context.Background(), slog.LevelError, msg, a) }

func (w *Slogger) ErrorContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelError, msg, a)
}

func (w *Slogger) Warn(msg string, a ...any) { w.logf(context.Background(), slog.LevelWarn, msg, a) }

func (w *Slogger) WarnContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelWarn, msg, a)
}

func (w *Slogger) Info(msg string, a ...any) { w.logf(context.Background(), slog.LevelInfo, msg, a) }

func (w *Slogger) InfoContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelInfo, msg, a)
}

func (w *Slogger) Debug(msg string, a ...any) { w.logf(context.Background(), slog.LevelDebug, msg, a) }

func (w *Slogger) DebugContext(ctx context.Context, msg string, a ...any) {
	w.logf(ctx, slog.LevelDebug, msg, a)
}

func (w *Slogger) SLogger() *slog.Logger {
	return w.Logger
}

// With adds additional attributes (see package attribute) for structured logs.
// It should not be called more than once per log call.
func (w *Slogger) With(attributes ...any) *Slogger {
	return &Slogger{Logger: w.Logger.With(attributes...)}
}

// With returns an Slogger based on the default logger carrying the given attributes.
func With(attributes ...any) *Slogger {
	return (&Slogger{Logger: slog.Default()}).With(attributes...)
}

// WithCtx returns a logger based on the default logger whose log calls carry ctx, so that values known to the
// ContextHandler are added to every record.
func WithCtx(ctx context.Context, attributes ...any) *ContextSlogger {
	return &ContextSlogger{ctx: ctx, s: With(attributes...)}
}

// ContextSlogger binds an Slogger to a context.
type ContextSlogger struct {
	ctx context.Context
	s   *Slogger
}

func (c *ContextSlogger) Error(msg string, a ...any) { c.s.ErrorContext(c.ctx, msg, a...) }
func (c *ContextSlogger) Warn(msg string, a ...any)  { c.s.WarnContext(c.ctx, msg, a...) }
func (c *ContextSlogger) Info(msg string, a ...any)  { c.s.InfoContext(c.ctx, msg, a...) }
func (c *ContextSlogger) Debug(msg string, a ...any) { c.s.DebugContext(c.ctx, msg, a...) }
