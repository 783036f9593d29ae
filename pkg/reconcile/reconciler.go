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

// Package reconcile compares remote templates with the template files of a local directory.
//
// Sync downloads remote templates into the directory without ever overwriting a file that differs from the remote
// content; Check reports for each local template whether a remote template of the same name exists and matches.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/dynatrace/sendgrid-manager/internal/concurrency"
	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/log/attribute"
	"github.com/dynatrace/sendgrid-manager/pkg/sendgrid"
	"github.com/dynatrace/sendgrid-manager/pkg/template"
)

var (
	// ErrMissingPlainContent is returned if the active version of a template has no plain content.
	ErrMissingPlainContent = errors.New("active version has no plain content")
	// ErrMissingHTMLContent is returned if the active version of a template has no html content.
	ErrMissingHTMLContent = errors.New("active version has no html content")
)

// Options configure a Reconciler.
type Options struct {
	// Concurrency limits how many templates are processed at the same time. Values <= 0 mean no limit.
	Concurrency int
	// OverwriteCorrupt replaces local files that can not be parsed instead of reporting them.
	OverwriteCorrupt bool
}

// Reconciler syncs and checks the templates of one directory against a provider.
type Reconciler struct {
	fs     afero.Fs
	dir    string
	client sendgrid.Client
	opts   Options
}

// New creates a Reconciler for dir.
func New(fs afero.Fs, dir string, client sendgrid.Client, opts Options) *Reconciler {
	return &Reconciler{
		fs:     fs,
		dir:    dir,
		client: client,
		opts:   opts,
	}
}

// Sync downloads the active version of every remote template into the directory and returns one Outcome per remote
// template, in the order the provider listed them.
// Only a failure to list the remote templates or to create the directory is returned as error, everything that goes
// wrong for a single template is reported in its Outcome.
func (r *Reconciler) Sync(ctx context.Context) ([]Outcome, error) {
	remote, err := r.client.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote templates: %w", err)
	}

	if err := r.fs.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", r.dir, err)
	}

	limiter := concurrency.NewLimiter(r.opts.Concurrency)
	defer limiter.Close()

	return concurrency.Map(limiter, remote, func(i int, t sendgrid.Template) Outcome {
		o := r.syncTemplate(log.WithTemplate(ctx, t.ID, t.Name), t)
		o.Ordinal, o.Total = i, len(remote)
		return o
	}), nil
}

func (r *Reconciler) syncTemplate(ctx context.Context, t sendgrid.Template) Outcome {
	o := Outcome{TemplateID: t.ID, Name: t.Name}

	active, c := ClassifyActive(t)
	switch c {
	case NoVersions:
		o.State = StateSkipped
		return o
	case NoActiveVersion:
		o.State = StateNoActiveVersion
		return o
	case MultipleActiveVersions:
		o.State = StateMultipleActiveVersions
		return o
	}

	candidate, err := r.fetchActive(ctx, t.ID, active.ID)
	if err != nil {
		log.WithCtx(ctx, attribute.Error(err)).Warn("Failed to fetch active version of %q: %s", t.Name, err)
		o.State = StateFetchFailed
		o.Err = err
		return o
	}

	o.Path = filepath.Join(r.dir, template.FileName(t.ID))
	local, err := template.ReadFile(r.fs, o.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return r.write(ctx, o, o.Path, candidate, StateDownloadedNew)

	case template.IsParseError(err):
		if r.opts.OverwriteCorrupt {
			return r.write(ctx, o, o.Path, candidate, StateOverwritten)
		}
		log.WithCtx(ctx, attribute.Path(o.Path), attribute.Error(err)).Warn("Local file of %q can not be parsed, leaving it untouched", t.Name)
		o.State = StateCorruptLocal
		o.Err = err
		return o

	case err != nil:
		o.State = StateFailed
		o.Err = err
		return o

	case local == candidate:
		o.State = StateUnchanged
		return o
	}

	o.Diff = Diff{
		Plain: local.PlainBody != candidate.PlainBody,
		HTML:  local.HTMLBody != candidate.HTMLBody,
	}
	log.WithCtx(ctx).Debug("Local template %q differs from remote (-local +remote):\n%s", t.Name, cmp.Diff(local, candidate))

	o.Path = filepath.Join(r.dir, template.PendingFileName(t.ID))
	return r.write(ctx, o, o.Path, candidate, StateDiverged)
}

func (r *Reconciler) write(ctx context.Context, o Outcome, path string, t template.Template, success State) Outcome {
	if err := template.WriteFile(r.fs, path, t); err != nil {
		log.WithCtx(ctx, attribute.Path(path), attribute.Error(err)).Error("Failed to write %q: %s", path, err)
		o.State = StateFailed
		o.Err = err
		return o
	}

	log.WithCtx(ctx, attribute.Path(path), attribute.State(success)).Debug("Wrote %q", path)
	o.State = success
	return o
}

// fetchActive returns the content of a version as Template. Both bodies must be present.
func (r *Reconciler) fetchActive(ctx context.Context, templateID, versionID string) (template.Template, error) {
	v, err := r.client.GetVersion(ctx, templateID, versionID)
	if err != nil {
		return template.Template{}, err
	}

	if v.PlainContent == nil {
		return template.Template{}, ErrMissingPlainContent
	}
	if v.HTMLContent == nil {
		return template.Template{}, ErrMissingHTMLContent
	}

	return template.Template{
		Name:      v.Name,
		PlainBody: *v.PlainContent,
		HTMLBody:  *v.HTMLContent,
	}, nil
}

type resolved struct {
	content *sendgrid.VersionContent
	failure *Outcome
}

// Check compares every template of local with the active version of the remote template of the same name and
// returns one Outcome per local template, in the order of local, together with the number of remote templates listed.
// Remote templates whose active version could not be fetched are appended as StateFetchFailed outcomes, numbered after
// the local ones.
// Check writes nothing. If local is empty, the provider is not contacted.
func (r *Reconciler) Check(ctx context.Context, local LocalTemplateSet) (outcomes []Outcome, remoteCount int, err error) {
	if local.Len() == 0 {
		return nil, 0, nil
	}

	remote, err := r.client.ListTemplates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list remote templates: %w", err)
	}

	limiter := concurrency.NewLimiter(r.opts.Concurrency)
	defer limiter.Close()

	resolvedRemote := concurrency.Map(limiter, remote, func(_ int, t sendgrid.Template) resolved {
		ctx := log.WithTemplate(ctx, t.ID, t.Name)

		active, c := ClassifyActive(t)
		if c != SingleActiveVersion {
			log.WithCtx(ctx).Debug("Ignoring remote template %q: %s", t.Name, c)
			return resolved{}
		}

		v, err := r.client.GetVersion(ctx, t.ID, active.ID)
		if err != nil {
			log.WithCtx(ctx, attribute.Error(err)).Warn("Failed to fetch active version of %q: %s", t.Name, err)
			return resolved{failure: &Outcome{
				TemplateID: t.ID,
				Name:       t.Name,
				State:      StateFetchFailed,
				Err:        err,
			}}
		}
		return resolved{content: &v}
	})

	templates := local.Templates()
	outcomes = make([]Outcome, 0, len(templates))
	for _, lt := range templates {
		o := Outcome{Name: lt.Name, State: StateNoRemoteCounterpart}

		if found := findByName(resolvedRemote, lt.Name); found != nil {
			o.State = StateMatched
			o.TemplateID = found.TemplateID
			o.RemoteID = found.TemplateID
			o.Diff = Diff{
				Plain: lt.PlainBody != deref(found.PlainContent),
				HTML:  lt.HTMLBody != deref(found.HTMLContent),
			}
			o.ContentMatch = !o.Diff.Any()
		}

		outcomes = append(outcomes, o)
	}

	for _, res := range resolvedRemote {
		if res.failure != nil {
			outcomes = append(outcomes, *res.failure)
		}
	}

	for i := range outcomes {
		outcomes[i].Ordinal, outcomes[i].Total = i, len(outcomes)
	}

	return outcomes, len(remote), nil
}

func findByName(rs []resolved, name string) *sendgrid.VersionContent {
	for _, r := range rs {
		if r.content != nil && r.content.Name == name {
			return r.content
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
