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

package timeutils

import (
	"sync"
	"time"
)

var (
	anchor     time.Time
	anchorOnce sync.Once
)

// TimeAnchor returns the time of the first call to TimeAnchor in this process.
// All files created during one invocation (log files, reports) use it for their names so they can be correlated.
func TimeAnchor() time.Time {
	anchorOnce.Do(func() {
		anchor = time.Now()
	})
	return anchor
}

// Clock returns the current time. Types taking a Clock can be given a fixed time in tests.
type Clock func() time.Time

// UTCNow is the default Clock, returning the current time in UTC.
func UTCNow() time.Time {
	return time.Now().UTC()
}
