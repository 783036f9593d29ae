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

package attribute

import (
	"fmt"
	"log/slog"
)

// Template builds an attribute identifying a template by its remote id and name
func Template(id, name string) slog.Attr {
	return slog.Group("template",
		slog.String("id", id),
		slog.String("name", name))
}

// Path builds an attribute for a local file path
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// State builds an attribute containing the reconciliation state of a template.
func State[X ~string](s X) slog.Attr {
	return slog.Any("state", s)
}

// Error builds an attribute containing error information for structured logging
func Error(err error) slog.Attr {
	return slog.Any(
		"error",
		struct {
			Type    string `json:"type"`
			Details string `json:"details"`
		}{
			Type:    fmt.Sprintf("%T", err),
			Details: err.Error(),
		})
}
