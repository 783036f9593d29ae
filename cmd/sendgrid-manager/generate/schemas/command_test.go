//go:build unit

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

package schemas

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchemas(t *testing.T) {
	fs := afero.NewMemMapFs()

	cmd := Command(fs)
	cmd.SetArgs([]string{"-o", "out"})
	require.NoError(t, cmd.Execute())

	content, err := afero.ReadFile(fs, filepath.Join("out", ConfigSchemaFileName))
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(content, &schema))
	assert.Contains(t, schema, "properties")
}

func TestGenerateSchemas_OutputFolderNotWritable(t *testing.T) {
	cmd := Command(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	cmd.SetArgs([]string{"-o", "out"})
	cmd.SilenceErrors = true

	assert.ErrorContains(t, cmd.Execute(), "failed to create output folder")
}
