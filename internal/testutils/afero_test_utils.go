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

package testutils

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TempFs creates a new [afero.Fs] file system within a temporary directory.
// The temp directory will be cleaned up automatically.
// Use this to create a file system for testing rather than afero.MemMapFs as it catches more bugs as it works with actual files.
func TempFs(t *testing.T) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
}

// WriteFiles writes each content of files to its file name within dir, creating dir if needed.
func WriteFiles(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0644))
	}
}

// ReadFile returns the content of path, failing the test if it can not be read.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}
