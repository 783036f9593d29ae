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
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName returns the name of the template file stored for the remote template with the given id.
func FileName(id string) string {
	return id + "." + FileExtension
}

// PendingFileName returns the name of the file holding diverged remote content for the template with the given id.
func PendingFileName(id string) string {
	return id + "." + PendingExtension
}

// HasFileExtension returns whether path carries the template FileExtension after a non-empty file stem.
// A file named just ".mailtemplate" does not count.
func HasFileExtension(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return ext == "."+FileExtension && len(base) > len(ext)
}

// ReadFile reads and parses the template file at path.
// I/O errors are wrapped as they are, so errors.Is(err, fs.ErrNotExist) works for missing files. Content errors
// wrap a *ParseError.
func ReadFile(fs afero.Fs, path string) (Template, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template file %q: %w", path, err)
	}

	t, err := Parse(string(content))
	if err != nil {
		return Template{}, fmt.Errorf("failed to parse template file %q: %w", path, err)
	}

	return t, nil
}

// WriteFile writes t to path, creating or truncating the file.
func WriteFile(fs afero.Fs, path string, t Template) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create template file %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close template file %q: %w", path, closeErr)
		}
	}()

	if _, err := t.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write template file %q: %w", path, err)
	}
	return nil
}
