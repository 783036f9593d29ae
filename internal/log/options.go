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

package log

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// SENDGRID_MANAGER_LOG_FORMAT is an environment variable that specifies the format use when logging.
	// When set to "json", log entries are emitted as JSON lines. The plain text default logger is used in other cases.
	envVarLogFormat = "SENDGRID_MANAGER_LOG_FORMAT"

	// SENDGRID_MANAGER_LOG_TIME is an environment variable that specifies the time format used for timestamps when logging.
	// When set to "utc", timestamps are explicitly converted to UTC first.
	envVarLogTime = "SENDGRID_MANAGER_LOG_TIME"

	envVarLogSource = "SENDGRID_MANAGER_LOG_SOURCE"
	envVarLogColor  = "SENDGRID_MANAGER_LOG_COLOR"
)

func getHandlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   shouldAddSource(),
		Level:       level,
		ReplaceAttr: getReplaceAttrFunc(),
	}
}

func getHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if shouldUseJSON() {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

func getReplaceAttrFunc() func(groups []string, a slog.Attr) slog.Attr {
	useUTC := shouldUseUTC()
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key != slog.TimeKey || len(groups) > 0 {
			return a
		}

		t := a.Value.Time()
		if useUTC {
			t = t.UTC()
		}

		a.Value = slog.StringValue(t.Format(time.RFC3339))
		return a
	}
}

func shouldUseJSON() bool {
	v := os.Getenv(envVarLogFormat)
	return strings.ToLower(v) == "json"
}

func shouldUseUTC() bool {
	v := os.Getenv(envVarLogTime)
	return strings.ToLower(v) == "utc"
}

func shouldAddSource() bool {
	return getFlagValue(envVarLogSource, false)
}

func shouldAddColor() bool {
	return getFlagValue(envVarLogColor, false)
}

func getFlagValue(envName string, d bool) bool {
	if val, ok := os.LookupEnv(envName); ok {
		value, err := strconv.ParseBool(strings.ToLower(val))
		if err != nil {
			return d
		}
		return value
	}
	return d
}
