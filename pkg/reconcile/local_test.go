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

package reconcile_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace/sendgrid-manager/internal/testutils"
	"github.com/dynatrace/sendgrid-manager/pkg/reconcile"
	"github.com/dynatrace/sendgrid-manager/pkg/template"
)

func encoded(name, plain, html string) string {
	return string(template.Template{Name: name, PlainBody: plain, HTMLBody: html}.Encode())
}

func TestLoadLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutils.WriteFiles(t, fs, "templates", map[string]string{
		"d-1.mailtemplate":     encoded("welcome", "Hi", "<p>Hi</p>"),
		"d-2.mailtemplate":     encoded("invoice", "Pay", "<p>Pay</p>"),
		"d-1.mailtemplate.tmp": encoded("pending", "x", "y"),
		"notes.txt":            "not a template",
		".mailtemplate":        encoded("hidden", "x", "y"),
	})
	testutils.WriteFiles(t, fs, "templates/nested", map[string]string{
		"d-3.mailtemplate": encoded("nested", "x", "y"),
	})

	set, errs := reconcile.LoadLocal(fs, "templates")
	require.Empty(t, errs)

	assert.Equal(t, 2, set.Len())

	welcome, ok := set.Get("welcome")
	require.True(t, ok)
	assert.Equal(t, template.Template{Name: "welcome", PlainBody: "Hi", HTMLBody: "<p>Hi</p>"}, welcome)

	_, ok = set.Get("invoice")
	assert.True(t, ok)

	_, ok = set.Get("hidden")
	assert.False(t, ok, "a file named only by the extension is not a template")
	_, ok = set.Get("pending")
	assert.False(t, ok, "pending files must be ignored")
	_, ok = set.Get("nested")
	assert.False(t, ok, "subdirectories must not be scanned")
}

func TestLoadLocal_OrderFollowsFileNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutils.WriteFiles(t, fs, "templates", map[string]string{
		"c.mailtemplate": encoded("third", "x", "y"),
		"a.mailtemplate": encoded("first", "x", "y"),
		"b.mailtemplate": encoded("second", "x", "y"),
	})

	set, errs := reconcile.LoadLocal(fs, "templates")
	require.Empty(t, errs)

	var names []string
	for _, tmpl := range set.Templates() {
		names = append(names, tmpl.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestLoadLocal_NameCollisionLaterFileWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutils.WriteFiles(t, fs, "templates", map[string]string{
		"a.mailtemplate": encoded("welcome", "older", "<p>older</p>"),
		"b.mailtemplate": encoded("welcome", "newer", "<p>newer</p>"),
	})

	set, errs := reconcile.LoadLocal(fs, "templates")
	require.Empty(t, errs)

	assert.Equal(t, 1, set.Len())
	got, ok := set.Get("welcome")
	require.True(t, ok)
	assert.Equal(t, "newer", got.PlainBody)
}

func TestLoadLocal_UnreadableDirectoryIsEmpty(t *testing.T) {
	set, errs := reconcile.LoadLocal(afero.NewMemMapFs(), "does-not-exist")

	assert.Empty(t, errs)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Templates())
}

func TestLoadLocal_CorruptFilesAreExcludedAndReported(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutils.WriteFiles(t, fs, "templates", map[string]string{
		"good.mailtemplate": encoded("good", "x", "y"),
		"bad.mailtemplate":  "NOT-A-TEMPLATE\nname\n######\n",
	})

	set, errs := reconcile.LoadLocal(fs, "templates")

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], template.ErrHeaderInvalidStart)
	assert.Equal(t, 1, set.Len())

	err := reconcile.LoadError(errs)
	assert.ErrorContains(t, err, "1 local template(s) could not be loaded")
	assert.ErrorIs(t, err, template.ErrHeaderInvalidStart)
	assert.NoError(t, reconcile.LoadError(nil))
}

func TestLocalTemplateSet_Add(t *testing.T) {
	set := reconcile.NewLocalTemplateSet()

	assert.False(t, set.Add(template.Template{Name: "a", PlainBody: "1"}))
	assert.True(t, set.Add(template.Template{Name: "a", PlainBody: "2"}))

	got, ok := set.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", got.PlainBody)
}

func TestLocalTemplateSet_ZeroValue(t *testing.T) {
	var set reconcile.LocalTemplateSet

	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Templates())
	_, ok := set.Get("a")
	assert.False(t, ok)
}
