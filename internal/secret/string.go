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

package secret

import "encoding/json"

const mask = "****"

// MaskedString holds a credential. Its formatted and JSON representations never contain the value.
type MaskedString string

// String returns a mask instead of the value.
func (s MaskedString) String() string {
	return mask
}

// GoString returns a mask instead of the value, also for %#v.
func (s MaskedString) GoString() string {
	return mask
}

// Value returns the actual value.
func (s MaskedString) Value() string {
	return string(s)
}

func (s MaskedString) MarshalJSON() ([]byte, error) {
	return json.Marshal(mask)
}
