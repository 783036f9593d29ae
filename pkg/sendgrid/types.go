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

package sendgrid

// Template is the metadata of a remote template as returned by the list endpoint. It does not carry content.
type Template struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Generation string    `json:"generation,omitempty"`
	UpdatedAt  string    `json:"updated_at,omitempty"`
	Versions   []Version `json:"versions"`
}

// Version is a revision of a remote template. At most one version of a template is expected to be active.
type Version struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Active     int    `json:"active"`
	Name       string `json:"name"`
	Subject    string `json:"subject,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// IsActive returns whether the version is the live revision of its template.
func (v Version) IsActive() bool {
	return v.Active == 1
}

// VersionContent is a single version including its bodies. PlainContent and HTMLContent are nil if the provider did
// not return the field.
type VersionContent struct {
	ID           string  `json:"id"`
	TemplateID   string  `json:"template_id"`
	Active       int     `json:"active"`
	Name         string  `json:"name"`
	Subject      string  `json:"subject,omitempty"`
	PlainContent *string `json:"plain_content"`
	HTMLContent  *string `json:"html_content"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}
