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

package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
)

// IsTerminal returns whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Printer writes a human-readable line per outcome. On a terminal lines are colored and prefixed with a symbol,
// otherwise plain text is written.
type Printer struct {
	mu  sync.Mutex
	w   io.Writer
	tty bool

	ok, attention, failure, muted lipgloss.Style
}

// NewPrinter creates a Printer writing to w. Set tty if w is an interactive terminal.
func NewPrinter(w io.Writer, tty bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:         w,
		tty:       tty,
		ok:        r.NewStyle().Foreground(lipgloss.Color("10")),
		attention: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// LocalFound prints how many local templates were found in dir.
func (p *Printer) LocalFound(n int, dir string) {
	p.println(p.muted, fmt.Sprintf("%d local templates found in %s", n, dir))
}

// RemoteFound prints how many remote templates were listed.
func (p *Printer) RemoteFound(n int) {
	p.println(p.muted, fmt.Sprintf("%d remote templates found", n))
}

// Outcome prints o as `[i/N] message`, with i counting from 1. Skipped templates are not printed.
func (p *Printer) Outcome(o reconcile.Outcome) {
	if o.State == reconcile.StateSkipped {
		return
	}

	style, symbol := p.styleFor(o)
	line := fmt.Sprintf("[%d/%d] ", o.Ordinal+1, o.Total)
	if p.tty {
		line += symbol + " "
	}
	p.println(style, line+o.String())
}

// Summary prints how many outcomes ended in each state.
func (p *Printer) Summary(outcomes []reconcile.Outcome) {
	counts := make(map[reconcile.State]int)
	for _, o := range outcomes {
		counts[o.State]++
	}

	var parts []string
	for _, s := range reconcile.States() {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s, n))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}

	p.println(p.muted, "summary: "+strings.Join(parts, ", "))
}

func (p *Printer) styleFor(o reconcile.Outcome) (lipgloss.Style, string) {
	switch {
	case o.State.Ok(), o.State == reconcile.StateMatched && o.ContentMatch:
		return p.ok, "✅"
	case o.Err != nil:
		return p.failure, "❌"
	default:
		return p.attention, "⚠️"
	}
}

func (p *Printer) println(style lipgloss.Style, s string) {
	if p.tty {
		s = style.Render(s)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}
