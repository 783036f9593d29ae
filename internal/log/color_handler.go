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
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

var _ slog.Handler = (*ColorHandler)(nil)

// ColorHandler colors the message of each record according to its level before delegating to the wrapped handler.
type ColorHandler struct {
	handler slog.Handler
}

func NewColorHandler(h slog.Handler) *ColorHandler {
	return &ColorHandler{
		handler: h,
	}
}

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fatalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

func styleFor(l slog.Level) lipgloss.Style {
	switch {
	case l <= slog.LevelDebug:
		return debugStyle
	case l < slog.LevelWarn:
		return infoStyle
	case l < slog.LevelError:
		return warnStyle
	case l <= slog.LevelError+1:
		return errorStyle
	default:
		return fatalStyle
	}
}

func (c *ColorHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return c.handler.Enabled(ctx, l)
}

func (c *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = styleFor(r.Level).Render(r.Message)
	return c.handler.Handle(ctx, r)
}

func (c *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewColorHandler(c.handler.WithAttrs(attrs))
}

func (c *ColorHandler) WithGroup(name string) slog.Handler {
	return NewColorHandler(c.handler.WithGroup(name))
}
