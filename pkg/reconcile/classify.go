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

import "github.com/dynatrace/sendgrid-manager/pkg/sendgrid"

// Classification describes the active versions of a remote template.
type Classification int

const (
	// NoVersions means the template has no versions at all.
	NoVersions Classification = iota
	// NoActiveVersion means none of the versions is active.
	NoActiveVersion
	// MultipleActiveVersions means more than one version is active.
	MultipleActiveVersions
	// SingleActiveVersion means exactly one version is active and can be synced.
	SingleActiveVersion
)

func (c Classification) String() string {
	switch c {
	case NoVersions:
		return "no versions"
	case NoActiveVersion:
		return "no active version"
	case MultipleActiveVersions:
		return "multiple active versions"
	case SingleActiveVersion:
		return "single active version"
	default:
		return "unknown"
	}
}

// ClassifyActive returns the classification of t and, for SingleActiveVersion, the active version.
func ClassifyActive(t sendgrid.Template) (sendgrid.Version, Classification) {
	if len(t.Versions) == 0 {
		return sendgrid.Version{}, NoVersions
	}

	var active []sendgrid.Version
	for _, v := range t.Versions {
		if v.IsActive() {
			active = append(active, v)
		}
	}

	switch len(active) {
	case 0:
		return sendgrid.Version{}, NoActiveVersion
	case 1:
		return active[0], SingleActiveVersion
	default:
		return sendgrid.Version{}, MultipleActiveVersions
	}
}
