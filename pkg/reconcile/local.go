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

package reconcile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/log/attribute"
	"github.com/dynatrace/sendgrid-manager/pkg/template"
)

// LocalTemplateSet maps template names to the templates found in a directory, in the order they were found.
type LocalTemplateSet struct {
	m *orderedmap.OrderedMap[string, template.Template]
}

// NewLocalTemplateSet returns an empty set.
func NewLocalTemplateSet() LocalTemplateSet {
	return LocalTemplateSet{m: orderedmap.New[string, template.Template]()}
}

// Add stores t under its name. If a template of that name is already present it is replaced in place and true is returned.
func (s LocalTemplateSet) Add(t template.Template) (replaced bool) {
	_, replaced = s.m.Set(t.Name, t)
	return replaced
}

// Get returns the template of the given name.
func (s LocalTemplateSet) Get(name string) (template.Template, bool) {
	if s.m == nil {
		return template.Template{}, false
	}
	return s.m.Get(name)
}

// Len returns the number of templates in the set.
func (s LocalTemplateSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Templates returns all templates in insertion order.
func (s LocalTemplateSet) Templates() []template.Template {
	if s.m == nil {
		return nil
	}
	res := make([]template.Template, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, pair.Value)
	}
	return res
}

// LoadLocal reads all template files directly inside dir. Subdirectories and files without the template extension are
// ignored. Files are read in lexical order; if two files hold a template of the same name, the later file wins.
//
// A directory that can not be read results in an empty set. Files that can not be read or parsed are skipped and
// returned as errors.
func LoadLocal(fs afero.Fs, dir string) (LocalTemplateSet, []error) {
	set := NewLocalTemplateSet()

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		log.With(attribute.Path(dir), attribute.Error(err)).Warn("Failed to read template directory %q, no local templates loaded: %s", dir, err)
		return set, nil
	}

	var errs []error
	for _, e := range entries {
		if !e.Mode().IsRegular() || !template.HasFileExtension(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		t, err := template.ReadFile(fs, path)
		if err != nil {
			log.With(attribute.Path(path), attribute.Error(err)).Debug("Skipping local template %q: %s", path, err)
			errs = append(errs, err)
			continue
		}

		if set.Add(t) {
			log.With(attribute.Path(path)).Warn("Template name %q is used by more than one file, using %q", t.Name, path)
		}
	}

	return set, errs
}

// LoadError combines the errors returned by LoadLocal.
func LoadError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d local template(s) could not be loaded: %w", len(errs), errors.Join(errs...))
}
