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

package reconcile

import (
	"fmt"
	"strings"
)

// State is the terminal classification of a single template.
type State string

const (
	StateDownloadedNew          State = "downloaded-new"
	StateUnchanged              State = "unchanged"
	StateDiverged               State = "diverged"
	StateNoActiveVersion        State = "no-active-version"
	StateMultipleActiveVersions State = "multiple-active-versions"
	StateCorruptLocal           State = "corrupt-local"
	StateOverwritten            State = "overwritten"
	StateNoRemoteCounterpart    State = "no-remote-counterpart"
	StateMatched                State = "matched"
	StateFetchFailed            State = "fetch-failed"
	StateFailed                 State = "failed"
	StateSkipped                State = "skipped"
)

// States returns all states in the order summaries list them.
func States() []State {
	return []State{
		StateDownloadedNew,
		StateUnchanged,
		StateDiverged,
		StateOverwritten,
		StateMatched,
		StateNoRemoteCounterpart,
		StateNoActiveVersion,
		StateMultipleActiveVersions,
		StateCorruptLocal,
		StateFetchFailed,
		StateFailed,
		StateSkipped,
	}
}

// Ok returns whether the state needs no attention.
func (s State) Ok() bool {
	switch s {
	case StateDownloadedNew, StateUnchanged, StateSkipped, StateOverwritten:
		return true
	default:
		return false
	}
}

// Diff tells which bodies of two templates differ.
type Diff struct {
	Plain bool `json:"plain"`
	HTML  bool `json:"html"`
}

// Any returns whether at least one body differs.
func (d Diff) Any() bool {
	return d.Plain || d.HTML
}

func (d Diff) String() string {
	if d.Plain && d.HTML {
		return "html and plain bodies differ"
	}
	return fmt.Sprintf("plain-body=%t html-body=%t", d.Plain, d.HTML)
}

// Outcome is the result of processing one template.
type Outcome struct {
	// Ordinal is the 0-based position of the template in the processed list, Total the length of that list.
	Ordinal int
	Total   int

	// TemplateID is the id of the remote template, empty for local templates without remote counterpart.
	TemplateID string
	Name       string
	State      State

	// Diff is set for StateDiverged and StateMatched.
	Diff Diff
	// ContentMatch is set for StateMatched.
	ContentMatch bool
	// RemoteID is the id of the matching remote template for StateMatched.
	RemoteID string
	// Path is the file written or inspected, if any.
	Path string
	// Err is set for StateCorruptLocal, StateFetchFailed and StateFailed.
	Err error
}

// String renders the outcome without its position, e.g. `downloaded new welcome (templates/d-1.mailtemplate)`.
func (o Outcome) String() string {
	switch o.State {
	case StateDownloadedNew:
		return fmt.Sprintf("downloaded new %s", o.Name)
	case StateUnchanged:
		return fmt.Sprintf("same template %s", o.Name)
	case StateDiverged:
		return fmt.Sprintf("%s %s, writing tmp file %s", o.Name, o.Diff, o.Path)
	case StateOverwritten:
		return fmt.Sprintf("replaced unreadable local file %s of %s", o.Path, o.Name)
	case StateNoActiveVersion:
		return fmt.Sprintf("error: no active version %s", o.Name)
	case StateMultipleActiveVersions:
		return fmt.Sprintf("error: multiple active versions: %s", o.Name)
	case StateCorruptLocal:
		return fmt.Sprintf("error while reading template %s: %s", o.Path, errString(o.Err))
	case StateNoRemoteCounterpart:
		return fmt.Sprintf("cannot find remote for %q", o.Name)
	case StateMatched:
		var b strings.Builder
		fmt.Fprintf(&b, "found local %q as remote=%s with content matching %t", o.Name, o.RemoteID, o.ContentMatch)
		if !o.ContentMatch {
			fmt.Fprintf(&b, " (%s)", o.Diff)
		}
		return b.String()
	case StateFetchFailed:
		return fmt.Sprintf("error: failed to fetch %s: %s", o.Name, errString(o.Err))
	case StateFailed:
		return fmt.Sprintf("error: %s: %s", o.Name, errString(o.Err))
	case StateSkipped:
		return fmt.Sprintf("skipped %s: no versions", o.Name)
	default:
		return fmt.Sprintf("%s %s", o.State, o.Name)
	}
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
