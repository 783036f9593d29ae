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

// OverwriteCorruptLocal controls whether sync replaces a local template file that can not be parsed with the remote
// content. By default such files are reported and left untouched.
func OverwriteCorruptLocal() FeatureFlag {
	return FeatureFlag{
		envName:        "SENDGRID_MANAGER_OVERWRITE_CORRUPT_LOCAL",
		defaultEnabled: false,
	}
}

// LogToFile controls whether log files are written to the .logs directory.
func LogToFile() FeatureFlag {
	return FeatureFlag{
		envName:        "SENDGRID_MANAGER_LOG_FILE_ENABLED",
		defaultEnabled: false,
	}
}

// LogRequests controls whether the HTTP traffic with the provider is dumped into the .logs directory.
func LogRequests() FeatureFlag {
	return FeatureFlag{
		envName:        "SENDGRID_MANAGER_LOG_REQUESTS",
		defaultEnabled: false,
	}
}

// All lists every known feature flag.
func All() []FeatureFlag {
	return []FeatureFlag{
		OverwriteCorruptLocal(),
		LogToFile(),
		LogRequests(),
	}
}
