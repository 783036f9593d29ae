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

package cmdutils

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFlags_Register(t *testing.T) {
	var g GlobalFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	g.Register(fs)

	require.NoError(t, fs.Parse([]string{"-k", "SG.key", "--url", "https://x", "-c", "cfg.yaml", "-v", "--log-file"}))

	assert.Equal(t, GlobalFlags{
		APIKey:     "SG.key",
		URL:        "https://x",
		ConfigPath: "cfg.yaml",
		Verbose:    true,
		LogToFile:  true,
	}, g)
}

func TestDirArg(t *testing.T) {
	assert.NoError(t, DirArg(nil, []string{"templates"}))
	assert.ErrorIs(t, DirArg(nil, nil), errDirMissing)
	assert.ErrorIs(t, DirArg(nil, []string{""}), errDirMissing)
	assert.ErrorIs(t, DirArg(nil, []string{"a", "b"}), errDirMissing)
}
