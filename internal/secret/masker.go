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

import (
	"encoding/json"
	"os"
	"strings"
)

// EnvMaskedKeys is a comma separated list of JSON keys whose string values are masked before API responses are logged.
const EnvMaskedKeys = "SENDGRID_MANAGER_MASKED_KEYS"

const maskedValue = "########"

var defaultMaskedKeys = []string{
	"credential",
	"key",
	"password",
	"secret",
	"token",
}

func maskedKeysFromEnv() []string {
	k, found := os.LookupEnv(EnvMaskedKeys)
	if !found {
		return defaultMaskedKeys
	}
	// an empty value disables masking
	return strings.FieldsFunc(k, func(c rune) bool { return c == ',' })
}

// Mask replaces string values of JSON object keys containing one of the masked keys (case-insensitive).
// Content that is not JSON is replaced entirely.
func Mask(data []byte) []byte {
	keys := maskedKeysFromEnv()
	if len(keys) == 0 {
		return data
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return []byte(`"NON-JSON CONTENT"`)
	}

	if !maskRecursive(v, keys) {
		return data
	}

	masked, err := json.Marshal(v)
	if err != nil {
		return data
	}
	return masked
}

func maskRecursive(data any, keys []string) (changed bool) {
	switch v := data.(type) {
	case map[string]any:
		for k, val := range v {
			if _, ok := val.(string); ok && matchesAny(k, keys) {
				v[k] = maskedValue
				changed = true
				continue
			}
			changed = maskRecursive(val, keys) || changed
		}
	case []any:
		for i := range v {
			changed = maskRecursive(v[i], keys) || changed
		}
	}
	return changed
}

func matchesAny(k string, keys []string) bool {
	k = strings.ToLower(k)
	for _, key := range keys {
		if strings.Contains(k, strings.ToLower(key)) {
			return true
		}
	}
	return false
}
