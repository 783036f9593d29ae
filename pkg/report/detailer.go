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

	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
)

type DetailType = string

const (
	// DetailTypeInfo indicates a detail of type info.
	DetailTypeInfo DetailType = "INFO"

	// DetailTypeWarn indicates a detail of type warning.
	DetailTypeWarn DetailType = "WARN"

	// DetailTypeError indicates a detail of type error.
	DetailTypeError DetailType = "ERROR"
)

// Detail represents additional information about the outcome of a template.
type Detail struct {
	// Type is the type of detail: info, warning or error.
	Type DetailType `json:"type"`

	// Message is the message of the detail.
	Message string `json:"msg"`
}

// DetailsOf derives the Details recorded for an outcome.
func DetailsOf(o reconcile.Outcome) []Detail {
	var details []Detail

	if o.Path != "" {
		details = append(details, Detail{Type: DetailTypeInfo, Message: fmt.Sprintf("file: %s", o.Path)})
	}

	if o.RemoteID != "" {
		details = append(details, Detail{Type: DetailTypeInfo, Message: fmt.Sprintf("remote: %s", o.RemoteID)})
	}

	switch o.State {
	case reconcile.StateDiverged:
		details = append(details, Detail{Type: DetailTypeWarn, Message: o.Diff.String()})
	case reconcile.StateMatched:
		if !o.ContentMatch {
			details = append(details, Detail{Type: DetailTypeWarn, Message: o.Diff.String()})
		}
	case reconcile.StateNoRemoteCounterpart, reconcile.StateNoActiveVersion, reconcile.StateMultipleActiveVersions:
		details = append(details, Detail{Type: DetailTypeWarn, Message: o.String()})
	}

	if o.Err != nil {
		details = append(details, Detail{Type: DetailTypeError, Message: o.Err.Error()})
	}

	return details
}
