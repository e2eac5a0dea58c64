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

package apidoc

import (
	"errors"
	"fmt"
)

// Construction Errors (returned by New)
var (
	// ErrFilterNameRequired indicates a filter record without a "name" attribute.
	ErrFilterNameRequired = errors.New(`apidoc: a "filter" element has to contain a "name" attribute`)

	// ErrInvalidStatusCode indicates a status code that is not a positive integer.
	ErrInvalidStatusCode = errors.New("apidoc: status code must be a positive integer")
)

// Mutation Errors (used as panic values by the Add* mutators)
var (
	// ErrEmptyName indicates a filter, requirement or parameter without a name.
	ErrEmptyName = errors.New("apidoc: name cannot be empty")
)

// ConfigurationError reports a misconfigured route annotation.
//
// It is returned synchronously while a [RouteDoc] is being constructed and is
// meant for the developer who wrote the annotation, not for API consumers.
// Use [errors.Is] against the sentinel errors of this package to inspect the cause.
type ConfigurationError struct {
	Source string // Where the error occurred (e.g. "filters[1]", "statusCodes")
	Field  string // The offending attribute (optional)
	Err    error  // The underlying error
}

// Error returns a formatted error message with context information.
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("apidoc: configuration error in %s.%s: %v", e.Source, e.Field, e.Err)
	}
	return fmt.Sprintf("apidoc: configuration error in %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a [ConfigurationError] for the given source.
func NewConfigurationError(source string, err error) *ConfigurationError {
	return &ConfigurationError{Source: source, Err: err}
}

// NewFieldError creates a [ConfigurationError] scoped to a single field.
func NewFieldError(source, field string, err error) *ConfigurationError {
	return &ConfigurationError{Source: source, Field: field, Err: err}
}
