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
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SilenceUsageCommand gives back a command that is just configured to skip printing of usage info.
// We use it as a PreRun hook to enforce the behavior of printing usage info when the command structure
// given by the user is faulty
func SilenceUsageCommand() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	}
}

// GlobalFlags are the persistent flags of the root command.
type GlobalFlags struct {
	// APIKey given with --key. Takes precedence over the configuration file and SG_API_KEY.
	APIKey string
	// URL of the SendGrid API given with --url.
	URL string
	// ConfigPath given with --config.
	ConfigPath string
	// Verbose enables debug logging.
	Verbose bool
	// LogToFile writes logs into the .logs directory.
	LogToFile bool
}

// Register adds the global flags to fs.
func (g *GlobalFlags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&g.APIKey, "key", "k", "", "The SendGrid API key. If not set, the key is read from the configuration file or the SG_API_KEY environment variable")
	fs.StringVar(&g.URL, "url", "", "The URL of the SendGrid API (default \"https://api.sendgrid.com\")")
	fs.StringVarP(&g.ConfigPath, "config", "c", "", "Path of the configuration file. If not set, 'sendgrid-manager.yaml' is read if it exists")
	fs.BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&g.LogToFile, "log-file", false, "Write logs into the '.logs' directory")
}

var errDirMissing = errors.New("directory has to be provided as positional argument")

// DirArg validates that exactly one non-empty directory argument is given.
func DirArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errDirMissing
	}
	return nil
}
