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

package environment

import (
	"os"
	"strconv"

	"github.com/dynatrace/sendgrid-manager/internal/log"
)

const (
	// ConcurrentRequestsEnvKey limits how many templates are fetched and written at the same time.
	ConcurrentRequestsEnvKey = "SENDGRID_MANAGER_CONCURRENT_REQUESTS"
	// ReportFilenameEnvKey names a JSONL file outcomes are additionally reported to.
	ReportFilenameEnvKey = "SENDGRID_MANAGER_REPORT_FILENAME"
	// APIKeyEnvKey holds the provider API key if neither a flag nor a config file supplies one.
	APIKeyEnvKey = "SG_API_KEY"
)

type intKnob struct {
	def         int
	description string
}

var intKnobs = map[string]intKnob{
	ConcurrentRequestsEnvKey: {def: 5, description: "Concurrent request limit"},
}

func lookupInt(env string) (value int, isDefault bool) {
	def := intKnobs[env].def

	val, ok := os.LookupEnv(env)
	if !ok {
		return def, true
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def, true
	}
	return parsed, false
}

// GetEnvValueInt returns the non-negative integer value of the environment variable env, or the known default of env
// (0 for unknown variables) if it is unset or invalid.
func GetEnvValueInt(env string) int {
	value, _ := lookupInt(env)
	return value
}

// GetEnvValueIntLog is GetEnvValueInt, additionally logging the resolved value at debug level.
func GetEnvValueIntLog(env string) int {
	value, isDefault := lookupInt(env)

	description := "Environment variable"
	if k, ok := intKnobs[env]; ok {
		description = k.description
	}

	if isDefault {
		log.Debug("%s: %d, '%s' environment variable is NOT set, using default value", description, value, env)
	} else {
		log.Debug("%s: %d, from '%s' environment variable", description, value, env)
	}

	return value
}

// GetEnvValueString returns the value of env, or def if it is unset or empty.
func GetEnvValueString(env string, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
