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

// Package template implements the flat-file format mail templates are stored in locally.
//
// A template file looks like this:
//
//	SENDGRID-TEMPLATE
//	<template name>
//	######
//	<plain text body>
//	######
//	<html body>
//
// Neither the name nor the bodies are escaped. A name containing a newline, or a body containing a line that
// is exactly the separator, can not be represented.
package template

import (
	"bytes"
	"io"
	"strings"
)

const (
	// Header is the literal first line of every template file.
	Header = "SENDGRID-TEMPLATE"

	// Separator divides the header from the plain body and the plain body from the HTML body.
	Separator = "######"

	// FileExtension is the extension (without leading dot) of template files.
	FileExtension = "mailtemplate"

	// PendingExtension is the extension of files holding remote content that differs from an existing local file.
	PendingExtension = FileExtension + ".tmp"
)

// Template is a single mail template. Two templates are equal if all their fields are equal.
type Template struct {
	Name      string `json:"name"`
	PlainBody string `json:"plainBody"`
	HTMLBody  string `json:"htmlBody"`
}

// Encode returns the file representation of the template.
// A newline is appended to the plain body unless it already ends with one. The HTML body is always followed by a newline.
func (t Template) Encode() []byte {
	var b bytes.Buffer

	b.WriteString(Header)
	b.WriteByte('\n')
	b.WriteString(t.Name)
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(t.PlainBody)
	if !strings.HasSuffix(t.PlainBody, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(t.HTMLBody)
	b.WriteByte('\n')

	return b.Bytes()
}

// WriteTo writes the file representation of the template to w.
func (t Template) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Encode())
	return int64(n), err
}

// Parse reads a template from its file representation.
// Errors returned are of type *ParseError and match one of the Err* sentinels using errors.Is.
//
// Parse is not the exact inverse of Encode: a plain body ending with a newline loses it, and a carriage return
// directly before a line break is dropped from either body, as bodies are read line by line.
// Leading blank lines of the plain body are kept as they are, so "\n\nx" parses back to "\n\nx" rather than "x".
func Parse(content string) (Template, error) {
	parts := strings.SplitN(content, "\n", 4)
	if len(parts) != 4 {
		return Template{}, &ParseError{Reason: ErrHeaderInvalidFormat}
	}

	if parts[0] != Header {
		return Template{}, &ParseError{Reason: ErrHeaderInvalidStart, Actual: parts[0]}
	}

	name := parts[1]
	if name == "" {
		return Template{}, &ParseError{Reason: ErrHeaderInvalidName}
	}

	if parts[2] != Separator {
		return Template{}, &ParseError{Reason: ErrHeaderInvalidEnd, Actual: parts[2]}
	}

	lines := splitLines(parts[3])

	end := -1
	for i, l := range lines {
		if l == Separator {
			end = i
			break
		}
	}
	if end < 0 {
		return Template{}, &ParseError{Reason: ErrBodyPlainUnfinished}
	}

	return Template{
		Name:      name,
		PlainBody: strings.Join(lines[:end], "\n"),
		HTMLBody:  strings.Join(lines[end+1:], "\n"),
	}, nil
}

// splitLines splits s into lines. Lines end with "\n" or "\r\n", the line ending is not part of the line.
// A final line ending does not start another, empty, line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
