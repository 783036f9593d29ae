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

import "context"

//go:generate mockgen -source=client.go -destination=client_mock.go -package=sendgrid -write_package_comment=false Client

// Client is the remote template provider.
type Client interface {
	// ListTemplates returns the metadata of all remote templates, including their versions.
	ListTemplates(ctx context.Context) ([]Template, error)

	// GetVersion returns a single version of a template including its content.
	GetVersion(ctx context.Context, templateID, versionID string) (VersionContent, error)
}
