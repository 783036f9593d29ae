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

package errutils

import (
	"errors"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/log/attribute"
)

// PrettyPrintableError is implemented by errors that have a more readable form for users than Error.
type PrettyPrintableError interface {
	PrettyError() string
}

// ErrorString returns the pretty form of err if it has one.
func ErrorString(err error) string {
	if err == nil {
		return "<nil>"
	}

	var prettyPrintError PrettyPrintableError
	if errors.As(err, &prettyPrintError) {
		return prettyPrintError.PrettyError()
	}
	return err.Error()
}

// PrintError logs err as error. Nothing is logged for nil.
func PrintError(err error) {
	if err != nil {
		log.With(attribute.Error(err)).Error("%s", ErrorString(err))
	}
}

// PrintWarning logs err as warning. Nothing is logged for nil.
func PrintWarning(err error) {
	if err != nil {
		log.With(attribute.Error(err)).Warn("%s", ErrorString(err))
	}
}
