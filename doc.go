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

// Package apidoc holds the documentation metadata attached to a single HTTP route.
//
// A [RouteDoc] is created once per documented route from a typed [Options]
// record, enriched by the discovery pipeline (route binding, requirements,
// parameters, response fields) and finally read by a renderer through
// [RouteDoc.ToMap].
//
// # Quick Start
//
//	doc, err := apidoc.New(apidoc.Options{
//	    Description: "List users",
//	    Section:     "Users",
//	    Filters: []map[string]any{
//	        {"name": "page", "dataType": "integer"},
//	    },
//	    StatusCodes: map[int][]string{
//	        200: {"Returned when successful"},
//	        403: {"Returned when the user is not authorized"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc.BindRoute(apidoc.RouteInfo{Method: "GET", Path: "/users"})
//	doc.SetHTTPS(true)
//
//	data := doc.ToMap()
//	// data["method"] == "GET", data["uri"] == "/users", data["https"] == true
//
// # Projection
//
// [RouteDoc.ToMap] always carries "method", "uri", "https" and "authentication".
// The remaining keys ("description", "documentation", "filters", "parameters",
// "requirements", "response", "statusCodes", "section") appear only when the
// corresponding attribute is non-empty.
//
// # Raw Mappings
//
// Annotation readers that produce untyped key/value mappings should go through
// the annotation subpackage, which normalizes bool-ish and scalar-or-sequence
// values into [Options] before construction.
//
// # Concurrency
//
// A RouteDoc is owned by one pipeline step at a time and is not safe for
// concurrent mutation. Distinct routes never share a RouteDoc.
package apidoc
