// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package annotation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/apidoc"
)

// ErrSchemaViolation indicates a raw annotation that does not match the schema.
var ErrSchemaViolation = errors.New("annotation: raw annotation does not match schema")

const schemaName = "annotation.schema.json"

//go:embed annotation.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(schemaName, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaName)
})

// Validate checks raw against the annotation JSON Schema.
//
// The raw map is normalized through JSON first, so it must be JSON-encodable.
func Validate(raw map[string]any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("annotation: compile schema: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return apidoc.NewConfigurationError("annotation", fmt.Errorf("%w: %w", ErrSchemaViolation, err))
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return apidoc.NewConfigurationError("annotation", fmt.Errorf("%w: %w", ErrSchemaViolation, err))
	}

	if err = schema.Validate(instance); err != nil {
		return apidoc.NewConfigurationError("annotation", fmt.Errorf("%w: %w", ErrSchemaViolation, err))
	}
	return nil
}
