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

package version

// ApplicationName is the name of the tool, used in the user agent and log export.
const ApplicationName = "sendgrid-manager"

// Version is the version of the tool, set at build time with
// -ldflags "-X github.com/dynatrace/sendgrid-manager/pkg/version.Version=<version>"
var Version = "2.x"

// UserAgent returns the user agent sent with every provider request.
func UserAgent() string {
	return ApplicationName + "/" + Version
}
