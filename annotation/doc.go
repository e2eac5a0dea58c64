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

// Package annotation turns untyped route annotations into [apidoc.RouteDoc] values.
//
// Annotation readers (doc comments, struct tags, YAML side files) usually
// produce a loosely typed map. This package normalizes the recognized keys
// into [apidoc.Options]:
//
//   - resource, authentication: bool-ish values such as true, "true", 1 or "1"
//   - description, input, output, section: strings
//   - filters: a sequence of records, each carrying a "name"
//   - statusCodes: a map from status code to a description or a list of them
//
// Unknown keys are ignored and logged at debug level.
//
// Example:
//
//	doc, err := annotation.New(map[string]any{
//	    "description": "List users",
//	    "resource":    "true",
//	    "statusCodes": map[string]any{"200": "Returned when successful"},
//	})
//
// Annotations stored in files can be loaded with [LoadFile]; the format is
// inferred from the extension through the codec package.
package annotation
