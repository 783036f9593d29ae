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

package json

import (
	"encoding/json"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/log/attribute"
)

// MarshalIndent indents jsonContent by two spaces. Invalid content is returned unchanged.
func MarshalIndent(jsonContent []byte) []byte {
	indentedData, err := json.MarshalIndent(json.RawMessage(jsonContent), "", "  ")
	if err != nil {
		log.With(attribute.Error(err)).Warn("Failed to indent json content. Reason: %s", err)
		return jsonContent
	}
	return indentedData
}
