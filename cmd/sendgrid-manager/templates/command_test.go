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

package templates

import (
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/cmdutils"
)

// TestInvalidCliCommands is a very basic test testing that invalid commands error.
func TestInvalidCliCommands(t *testing.T) {
	commands := map[string]func(afero.Fs, Command, *cmdutils.GlobalFlags) *cobra.Command{
		"sync-to-dir": GetSyncCommand,
		"check":       GetCheckCommand,
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no directory", []string{}, "directory has to be provided as positional argument"},
		{"empty directory", []string{""}, "directory has to be provided as positional argument"},
		{"two directories", []string{"a", "b"}, "directory has to be provided as positional argument"},
		{"unknown flag", []string{"--test", "dir"}, "--test"},
	}

	for name, build := range commands {
		for _, tt := range tests {
			t.Run(name+" "+tt.name, func(t *testing.T) {
				commandMock := NewMockCommand(gomock.NewController(t))

				cmd := build(afero.NewMemMapFs(), commandMock, &cmdutils.GlobalFlags{})
				cmd.SetArgs(tt.args)
				cmd.SetOut(io.Discard)
				cmd.SetErr(io.Discard)

				err := cmd.Execute()
				assert.ErrorContains(t, err, tt.want)
			})
		}
	}
}

func TestSyncCommand_PassesOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	global := &cmdutils.GlobalFlags{APIKey: "key", Verbose: true}

	commandMock := NewMockCommand(gomock.NewController(t))
	commandMock.EXPECT().
		SyncToDirectory(gomock.Any(), fs, Options{Dir: "templates", GlobalFlags: cmdutils.GlobalFlags{APIKey: "key", Verbose: true}}).
		Return(nil)

	cmd := GetSyncCommand(fs, commandMock, global)
	cmd.SetArgs([]string{"templates"})

	assert.NoError(t, cmd.Execute())
}

func TestCheckCommand_ReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()

	commandMock := NewMockCommand(gomock.NewController(t))
	commandMock.EXPECT().
		Check(gomock.Any(), fs, Options{Dir: "templates"}).
		Return(errors.New("listing failed"))

	cmd := GetCheckCommand(fs, commandMock, &cmdutils.GlobalFlags{})
	cmd.SetArgs([]string{"templates"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.ErrorContains(t, cmd.Execute(), "listing failed")
}
