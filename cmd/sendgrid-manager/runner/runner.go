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

package runner

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/cmdutils"
	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/generate"
	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/templates"
	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/version"
	"github.com/dynatrace/sendgrid-manager/internal/errutils"
	"github.com/dynatrace/sendgrid-manager/internal/featureflags"
	"github.com/dynatrace/sendgrid-manager/internal/log"
)

func Run() int {
	rootCmd := BuildCli(afero.NewOsFs())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errutils.PrintError(err)
		return 1
	}

	return 0
}

// BuildCli builds the root command with all sub-commands.
func BuildCli(fs afero.Fs) *cobra.Command {
	return BuildCliWithLogSpy(fs, &templates.DefaultCommand{}, nil)
}

// BuildCliWithLogSpy is BuildCli with a custom templates.Command and an additional writer receiving all logs.
func BuildCliWithLogSpy(fs afero.Fs, command templates.Command, logSpy io.Writer) *cobra.Command {
	global := &cmdutils.GlobalFlags{}

	rootCmd := &cobra.Command{
		Use:   "sendgrid-manager <command>",
		Short: "Synchronizes SendGrid email templates with a local directory",
		Long: `Synchronizes SendGrid email templates with a local directory

Examples:
  Download all templates into the directory 'templates'
    sendgrid-manager sync-to-dir templates
  Compare the templates in 'templates' with the ones on SendGrid
    sendgrid-manager check templates`,

		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.PrepareLogging(cmd.Context(), fs, global.Verbose, logSpy, global.LogToFile || featureflags.LogToFile().Enabled())
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// global flags
	global.Register(rootCmd.PersistentFlags())

	// commands
	rootCmd.AddCommand(templates.GetSyncCommand(fs, command, global))
	rootCmd.AddCommand(templates.GetCheckCommand(fs, command, global))
	rootCmd.AddCommand(generate.Command(fs))
	rootCmd.AddCommand(version.GetVersionCommand())

	return rootCmd
}
