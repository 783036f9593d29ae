//go:build unit

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

package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
	"github.com/dynatrace/sendgrid-manager/pkg/report"
)

func TestPrinter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, false)

	p.LocalFound(2, "templates")
	p.RemoteFound(3)
	p.Outcome(reconcile.Outcome{Ordinal: 0, Total: 3, Name: "welcome", State: reconcile.StateDownloadedNew})
	p.Outcome(reconcile.Outcome{Ordinal: 1, Total: 3, Name: "empty", State: reconcile.StateSkipped})
	p.Outcome(reconcile.Outcome{Ordinal: 2, Total: 3, Name: "invoice", State: reconcile.StateDiverged, Path: "templates/d-2.mailtemplate.tmp", Diff: reconcile.Diff{Plain: true, HTML: true}})

	assert.Equal(t, "2 local templates found in templates\n"+
		"3 remote templates found\n"+
		"[1/3] downloaded new welcome\n"+
		"[3/3] invoice html and plain bodies differ, writing tmp file templates/d-2.mailtemplate.tmp\n",
		buf.String())
}

func TestPrinter_TerminalOutputHasSymbols(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, true)

	p.Outcome(reconcile.Outcome{Ordinal: 0, Total: 3, Name: "a", State: reconcile.StateUnchanged})
	p.Outcome(reconcile.Outcome{Ordinal: 1, Total: 3, Name: "b", State: reconcile.StateFetchFailed, Err: errors.New("boom")})
	p.Outcome(reconcile.Outcome{Ordinal: 2, Total: 3, Name: "c", State: reconcile.StateNoActiveVersion})

	out := buf.String()
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "⚠️")
	assert.Contains(t, out, "error: failed to fetch b: boom")
}

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, false)

	p.Summary([]reconcile.Outcome{
		{State: reconcile.StateUnchanged},
		{State: reconcile.StateUnchanged},
		{State: reconcile.StateDiverged},
	})
	p.Summary(nil)

	assert.Equal(t, "summary: unchanged: 2, diverged: 1\nsummary: nothing to do\n", buf.String())
}
