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

package reconcile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
)

func TestOutcome_String(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		outcome reconcile.Outcome
		want    string
	}{
		{reconcile.Outcome{Name: "a", State: reconcile.StateDownloadedNew}, "downloaded new a"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateUnchanged}, "same template a"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateDiverged, Path: "d/x.mailtemplate.tmp", Diff: reconcile.Diff{Plain: true}}, "a plain-body=true html-body=false, writing tmp file d/x.mailtemplate.tmp"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateDiverged, Path: "p", Diff: reconcile.Diff{Plain: true, HTML: true}}, "a html and plain bodies differ, writing tmp file p"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateNoActiveVersion}, "error: no active version a"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateMultipleActiveVersions}, "error: multiple active versions: a"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateCorruptLocal, Path: "p", Err: boom}, "error while reading template p: boom"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateNoRemoteCounterpart}, `cannot find remote for "a"`},
		{reconcile.Outcome{Name: "a", State: reconcile.StateMatched, RemoteID: "d-1", ContentMatch: true}, `found local "a" as remote=d-1 with content matching true`},
		{reconcile.Outcome{Name: "a", State: reconcile.StateMatched, RemoteID: "d-1", Diff: reconcile.Diff{HTML: true}}, `found local "a" as remote=d-1 with content matching false (plain-body=false html-body=true)`},
		{reconcile.Outcome{Name: "a", State: reconcile.StateFetchFailed, Err: boom}, "error: failed to fetch a: boom"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateFailed}, "error: a: unknown error"},
		{reconcile.Outcome{Name: "a", State: reconcile.StateSkipped}, "skipped a: no versions"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome.State), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
		})
	}
}

func TestState_Ok(t *testing.T) {
	for _, s := range reconcile.States() {
		switch s {
		case reconcile.StateDownloadedNew, reconcile.StateUnchanged, reconcile.StateSkipped, reconcile.StateOverwritten:
			assert.True(t, s.Ok(), s)
		default:
			assert.False(t, s.Ok(), s)
		}
	}
}
