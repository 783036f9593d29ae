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

package template

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderInvalidFormat is returned if the content has less than four lines.
	ErrHeaderInvalidFormat = errors.New("header format invalid")
	// ErrHeaderInvalidStart is returned if the first line is not the Header.
	ErrHeaderInvalidStart = errors.New("header start invalid")
	// ErrHeaderInvalidName is returned if the name line is empty.
	ErrHeaderInvalidName = errors.New("header name invalid")
	// ErrHeaderInvalidEnd is returned if the line after the name is not the Separator.
	ErrHeaderInvalidEnd = errors.New("header end invalid")
	// ErrBodyPlainUnfinished is returned if no Separator follows the plain body.
	ErrBodyPlainUnfinished = errors.New("body unfinished plain body")
)

// ParseError is returned by Parse if content is not a valid template.
type ParseError struct {
	// Reason is one of the Err* sentinel errors of this package.
	Reason error
	// Actual holds the offending line for ErrHeaderInvalidStart and ErrHeaderInvalidEnd.
	Actual string
}

func (e *ParseError) Error() string {
	if errors.Is(e.Reason, ErrHeaderInvalidStart) || errors.Is(e.Reason, ErrHeaderInvalidEnd) {
		return fmt.Sprintf("%s %q", e.Reason, e.Actual)
	}
	return e.Reason.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// IsParseError returns whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
