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

package featureflags

import (
	"fmt"
	"slices"
	"strings"
)

// AnyModified returns true if any feature flag value is different to its default.
func AnyModified() bool {
	return slices.ContainsFunc(All(), func(ff FeatureFlag) bool {
		enabled, def := ff.Value()
		return enabled != def
	})
}

// StateInfo builds a string message describing the current and default values of all feature flags,
// noting especially if any flag has been changed off its default value.
func StateInfo() string {
	s := strings.Builder{}

	if AnyModified() {
		s.WriteString("Lines starting with '!' indicate that a flag has been modified from its default value.\n\n")
	}

	s.WriteString("Feature Flags:\n\n")

	flags := All()
	slices.SortFunc(flags, func(a, b FeatureFlag) int { return strings.Compare(a.envName, b.envName) })
	for _, ff := range flags {
		enabled, def := ff.Value()
		modified := " "
		if enabled != def {
			modified = "!"
		}
		_, _ = fmt.Fprintf(&s, "%v\t%v: %v (default:%v)\n", modified, ff.envName, enabled, def)
	}

	return s.String()
}
