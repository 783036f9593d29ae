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

package json

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/dynatrace/sendgrid-manager/internal/log"
)

const modulePath = "github.com/dynatrace/sendgrid-manager"

// GenerateJSONSchemaString reflects a JSON schema from value and returns it indented.
func GenerateJSONSchemaString(value interface{}) ([]byte, error) {
	log.Debug("Generating JSON schema for %T...", value)

	s := ReflectJSONSchema(value)

	b, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON schema: %w", err)
	}

	return MarshalIndent(b), nil
}

// ReflectJSONSchema reflects a JSON schema from value. Go doc comments of the reflected types become descriptions
// if the sources are available in the working directory.
func ReflectJSONSchema(value interface{}) *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.RequiredFromJSONSchemaTags = true
	r.DoNotReference = true
	if err := r.AddGoComments(modulePath, "."); err != nil {
		log.Debug("Failed to parse Go comments, schema descriptions may be incomplete: %s", err)
	}
	return r.Reflect(value)
}
