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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/cmdutils"
)

// GetSyncCommand returns the `sync-to-dir` command.
func GetSyncCommand(fs afero.Fs, command Command, global *cmdutils.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-to-dir DIR",
		Short: "Synchronize the templates on SendGrid to a local directory",
		Long: `Synchronize the templates on SendGrid to a local directory

The active version of every remote template is written to DIR/<template id>.mailtemplate.
Existing files are never overwritten: if a local file differs from the remote template,
the remote content is written to DIR/<template id>.mailtemplate.tmp instead.`,
		Example: `sendgrid-manager sync-to-dir templates
sendgrid-manager --key $MY_KEY sync-to-dir templates`,
		Args:   cmdutils.DirArg,
		PreRun: cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.SyncToDirectory(cmd.Context(), fs, Options{Dir: args[0], GlobalFlags: *global})
		},
	}
}

// GetCheckCommand returns the `check` command.
func GetCheckCommand(fs afero.Fs, command Command, global *cmdutils.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check DIR",
		Short: "Check the templates of a local directory against the ones on SendGrid",
		Long: `Check the templates of a local directory against the ones on SendGrid

For every template file in DIR the remote template of the same name is looked up and its
active version compared with the local content. Nothing is written.`,
		Example: `sendgrid-manager check templates`,
		Args:    cmdutils.DirArg,
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.Check(cmd.Context(), fs, Options{Dir: args[0], GlobalFlags: *global})
		},
	}
}
