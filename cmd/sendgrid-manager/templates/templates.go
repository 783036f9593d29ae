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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/dynatrace/sendgrid-manager/cmd/sendgrid-manager/cmdutils"
	"github.com/dynatrace/sendgrid-manager/internal/environment"
	"github.com/dynatrace/sendgrid-manager/internal/errutils"
	"github.com/dynatrace/sendgrid-manager/internal/featureflags"
	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/secret"
	"github.com/dynatrace/sendgrid-manager/internal/trafficlogs"
	"github.com/dynatrace/sendgrid-manager/pkg/config"
	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
	"github.com/dynatrace/sendgrid-manager/pkg/report"
	"github.com/dynatrace/sendgrid-manager/pkg/sendgrid"
	"github.com/dynatrace/sendgrid-manager/pkg/version"
)

//go:generate mockgen -source=templates.go -destination=templates_mock.go -package=templates -write_package_comment=false Command

// Command is used to test the CLI commands properly without executing the actual sync or check.
//
// The actual implementations are in the [DefaultCommand] struct.
type Command interface {
	SyncToDirectory(ctx context.Context, fs afero.Fs, opts Options) error
	Check(ctx context.Context, fs afero.Fs, opts Options) error
}

// Options of a single invocation.
type Options struct {
	// Dir is the template directory.
	Dir string
	cmdutils.GlobalFlags
}

// ErrMissingAPIKey is returned if no API key is configured.
var ErrMissingAPIKey = fmt.Errorf("no API key given: use --key, the `apiKey` of the configuration file or the %s environment variable", environment.APIKeyEnvKey)

// ClientFactory creates the provider client of an invocation.
type ClientFactory func(ctx context.Context, url string, apiKey secret.MaskedString, opts ...sendgrid.Option) (sendgrid.Client, error)

// DefaultCommand is used to implement the [Command] interface.
type DefaultCommand struct {
	// Out receives the outcome lines. Defaults to os.Stdout.
	Out io.Writer
	// NewClient defaults to sendgrid.NewClient.
	NewClient ClientFactory
}

// make sure DefaultCommand implements the Command interface
var (
	_ Command = (*DefaultCommand)(nil)
)

type run struct {
	ctx        context.Context
	reconciler *reconcile.Reconciler
	printer    *report.Printer
	reporter   report.Reporter
	traffic    *trafficlogs.FileBasedLogger
}

func (d DefaultCommand) prepare(ctx context.Context, fs afero.Fs, opts Options, command string) (*run, error) {
	file, err := config.LoadOptional(fs, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg, err := file.Resolve()
	if err != nil {
		return nil, err
	}

	key, err := resolveAPIKey(opts.APIKey, cfg)
	if err != nil {
		return nil, err
	}

	url := firstNonEmpty(opts.URL, cfg.URL, sendgrid.DefaultURL)

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = environment.GetEnvValueIntLog(environment.ConcurrentRequestsEnvKey)
	}

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, log.CtxKeyRunID{}, runID)
	ctx = context.WithValue(ctx, log.CtxKeyCommand{}, command)

	var clientOpts []sendgrid.Option
	var traffic *trafficlogs.FileBasedLogger
	if featureflags.LogRequests().Enabled() {
		traffic = trafficlogs.NewFileBased(fs)
		clientOpts = append(clientOpts, sendgrid.WithHTTPListener(traffic.Listener()))
		log.WithCtx(ctx).Debug("Dumping HTTP traffic to %q and %q", trafficlogs.RequestFilePath(), trafficlogs.ResponseFilePath())
	}

	newClient := d.NewClient
	if newClient == nil {
		newClient = defaultClientFactory
	}
	client, err := newClient(ctx, url, key, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SendGrid client: %w", err)
	}

	var reporter report.Reporter = report.GetReporterFromContextOrDiscard(ctx)
	if reportFile := firstNonEmpty(cfg.ReportFile, environment.GetEnvValueString(environment.ReportFilenameEnvKey, "")); reportFile != "" {
		log.WithCtx(ctx).Debug("Writing report to %q", reportFile)
		reporter = report.NewDefaultReporter(fs, reportFile, runID)
		ctx = report.NewContextWithReporter(ctx, reporter)
	}

	out := d.Out
	tty := false
	if out == nil {
		out = os.Stdout
		tty = report.IsTerminal(os.Stdout)
	}

	overwrite := featureflags.OverwriteCorruptLocal()
	if overwrite.Enabled() {
		log.WithCtx(ctx).Warn("%s is enabled, unreadable local template files are replaced", overwrite.EnvName())
	}

	return &run{
		ctx: ctx,
		reconciler: reconcile.New(fs, opts.Dir, client, reconcile.Options{
			Concurrency:      concurrency,
			OverwriteCorrupt: overwrite.Enabled(),
		}),
		printer:  report.NewPrinter(out, tty),
		reporter: reporter,
		traffic:  traffic,
	}, nil
}

func defaultClientFactory(ctx context.Context, url string, apiKey secret.MaskedString, opts ...sendgrid.Option) (sendgrid.Client, error) {
	return sendgrid.NewClient(ctx, url, apiKey, append([]sendgrid.Option{sendgrid.WithUserAgent(version.UserAgent())}, opts...)...)
}

// resolveAPIKey picks the key of the flag, the configuration file or the environment, in this order.
func resolveAPIKey(flag string, cfg config.Config) (secret.MaskedString, error) {
	if flag != "" {
		return secret.MaskedString(flag), nil
	}
	if cfg.APIKey.Value() != "" {
		return cfg.APIKey, nil
	}
	if v := os.Getenv(environment.APIKeyEnvKey); v != "" {
		return secret.MaskedString(v), nil
	}
	return "", ErrMissingAPIKey
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SyncToDirectory downloads the remote templates into opts.Dir.
func (d DefaultCommand) SyncToDirectory(ctx context.Context, fs afero.Fs, opts Options) error {
	r, err := d.prepare(ctx, fs, opts, "sync-to-dir")
	if err != nil {
		return err
	}
	defer r.stop()

	log.WithCtx(r.ctx).Info("Synchronizing templates to %q", opts.Dir)

	outcomes, err := r.reconciler.Sync(r.ctx)
	if err != nil {
		return err
	}

	r.printer.RemoteFound(len(outcomes))
	r.publish(report.TypeSync, outcomes)
	return nil
}

// Check compares the templates in opts.Dir with the remote ones.
func (d DefaultCommand) Check(ctx context.Context, fs afero.Fs, opts Options) error {
	r, err := d.prepare(ctx, fs, opts, "check")
	if err != nil {
		return err
	}
	defer r.stop()

	local, errs := reconcile.LoadLocal(fs, opts.Dir)
	errutils.PrintWarning(reconcile.LoadError(errs))

	r.printer.LocalFound(local.Len(), opts.Dir)
	if local.Len() == 0 {
		return nil
	}

	outcomes, remoteCount, err := r.reconciler.Check(r.ctx, local)
	if err != nil {
		return err
	}

	r.printer.RemoteFound(remoteCount)

	r.publish(report.TypeCheck, outcomes)
	return nil
}

func (r *run) publish(kind report.RecordType, outcomes []reconcile.Outcome) {
	for _, o := range outcomes {
		r.printer.Outcome(o)
		r.reporter.ReportOutcome(kind, o)
	}
	r.printer.Summary(outcomes)
}

func (r *run) stop() {
	r.reporter.Stop()
	if summary := r.reporter.GetSummary(); summary != "" {
		log.WithCtx(r.ctx).Info("Report summary:\n%s", summary)
	}
	if r.traffic != nil {
		if err := r.traffic.Close(); err != nil {
			log.WithCtx(r.ctx).Warn("%v", err)
		}
	}
}
