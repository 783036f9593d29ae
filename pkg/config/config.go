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

// Package config loads the optional configuration file of sendgrid-manager.
//
// A configuration file looks like this:
//
//	apiKey:
//	  type: environment
//	  name: SG_API_KEY
//	url: https://api.sendgrid.com
//	concurrency: 5
//	reportFile: report.jsonl
//
// The apiKey may also be given as the name of the environment variable only, e.g. `apiKey: MY_SENDGRID_KEY`.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/dynatrace/sendgrid-manager/internal/files"
	"github.com/dynatrace/sendgrid-manager/internal/json"
	"github.com/dynatrace/sendgrid-manager/internal/secret"
)

// DefaultFileName is the configuration file read if none is given explicitly.
const DefaultFileName = "sendgrid-manager.yaml"

type SecretType string

const (
	// TypeEnvironment secrets are read from the environment variable Name.
	TypeEnvironment SecretType = "environment"
)

// AuthSecret references a credential. Credentials are never written into the configuration file, Name is the
// environment variable holding the value.
type AuthSecret struct {
	// Type of the secret, only "environment" is supported. Defaults to "environment".
	Type SecretType `yaml:"type,omitempty" json:"type,omitempty" mapstructure:"type" jsonschema:"enum=environment"`
	// Name of the environment variable holding the secret.
	Name string `yaml:"name" json:"name" mapstructure:"name" jsonschema:"required"`
}

// UnmarshalYAML parses the shorthand `apiKey: ENV_VAR_NAME` as well as the full form.
func (a *AuthSecret) UnmarshalYAML(unmarshal func(any) error) error {
	var data any
	if err := unmarshal(&data); err != nil {
		return err
	}

	switch v := data.(type) {
	case string:
		a.Type = TypeEnvironment
		a.Name = v
	default:
		if err := mapstructure.Decode(data, a); err != nil {
			return fmt.Errorf("failed to parse apiKey: %w", err)
		}
	}
	return nil
}

// File is the content of a configuration file.
type File struct {
	// APIKey references the SendGrid API key.
	APIKey *AuthSecret `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	// URL of the SendGrid API, e.g. https://api.sendgrid.com
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
	// Concurrency limits how many templates are fetched at the same time.
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty" jsonschema:"minimum=1"`
	// ReportFile is the path of the JSON lines report written for every run. No report is written if empty.
	ReportFile string `yaml:"reportFile,omitempty" json:"reportFile,omitempty"`
}

// Config is a File with all references resolved.
type Config struct {
	APIKey      secret.MaskedString
	URL         string
	Concurrency int
	ReportFile  string
}

// LoaderError is returned if a configuration file can not be loaded.
type LoaderError struct {
	Path   string
	Reason string
}

func (e LoaderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// PrettyError renders the error across two lines, naming the file first.
func (e LoaderError) PrettyError() string {
	return fmt.Sprintf("Failed to load configuration file %q:\n\t%s", e.Path, e.Reason)
}

func newLoaderError(path string, reason string) LoaderError {
	return LoaderError{
		Path:   path,
		Reason: reason,
	}
}

// Load reads the configuration file at path. Unknown keys are an error.
func Load(fs afero.Fs, path string) (File, error) {
	path = filepath.Clean(path)

	if !files.IsYamlFileExtension(path) {
		return File{}, newLoaderError(path, "configuration file is not a yaml")
	}

	if exists, err := files.DoesFileExist(fs, path); err != nil {
		return File{}, err
	} else if !exists {
		return File{}, newLoaderError(path, "configuration file does not exist")
	}

	rawData, err := afero.ReadFile(fs, path)
	if err != nil {
		return File{}, newLoaderError(path, fmt.Sprintf("error while reading the configuration: %s", err))
	}

	var f File
	if err := yaml.UnmarshalStrict(rawData, &f); err != nil {
		return File{}, newLoaderError(path, fmt.Sprintf("error during parsing the configuration: %s", err))
	}

	if f.Concurrency < 0 {
		return File{}, newLoaderError(path, "`concurrency` must not be negative")
	}

	return f, nil
}

// LoadOptional is Load, but a missing file at the default location yields an empty File.
func LoadOptional(fs afero.Fs, path string) (File, error) {
	if path != "" {
		return Load(fs, path)
	}

	if exists, err := files.DoesFileExist(fs, DefaultFileName); err != nil || !exists {
		return File{}, err
	}
	return Load(fs, DefaultFileName)
}

// Resolve reads all referenced secrets.
func (f File) Resolve() (Config, error) {
	c := Config{
		URL:         strings.TrimSuffix(f.URL, "/"),
		Concurrency: f.Concurrency,
		ReportFile:  f.ReportFile,
	}

	if f.APIKey != nil {
		key, err := resolveSecret(*f.APIKey)
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve `apiKey`: %w", err)
		}
		c.APIKey = key
	}

	return c, nil
}

func resolveSecret(s AuthSecret) (secret.MaskedString, error) {
	if s.Type != "" && s.Type != TypeEnvironment {
		return "", fmt.Errorf("unsupported secret type %q, only %q is supported", s.Type, TypeEnvironment)
	}

	if s.Name == "" {
		return "", errors.New("no environment variable name given")
	}

	v, found := os.LookupEnv(s.Name)
	if !found {
		return "", fmt.Errorf("environment variable %q could not be found", s.Name)
	}
	if v == "" {
		return "", fmt.Errorf("environment variable %q is empty", s.Name)
	}

	return secret.MaskedString(v), nil
}

// GenerateJSONSchema returns the JSON schema of configuration files.
func GenerateJSONSchema() ([]byte, error) {
	return json.GenerateJSONSchemaString(File{})
}
