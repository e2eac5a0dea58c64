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

import "encoding/json"

// Keys of the map returned by [RouteDoc.ToMap].
const (
	KeyMethod         = "method"
	KeyURI            = "uri"
	KeyDescription    = "description"
	KeyDocumentation  = "documentation"
	KeyFilters        = "filters"
	KeyParameters     = "parameters"
	KeyRequirements   = "requirements"
	KeyResponse       = "response"
	KeyStatusCodes    = "statusCodes"
	KeySection        = "section"
	KeyHTTPS          = "https"
	KeyAuthentication = "authentication"
)

// ToMap projects the record into a plain map for renderers.
//
// "method", "uri", "https" and "authentication" are always present. All other
// keys are present only when the attribute is non-empty. Containers in the
// result are copies; mutating them does not affect the record.
func (d *RouteDoc) ToMap() map[string]any {
	data := map[string]any{
		KeyMethod: d.method,
		KeyURI:    d.uri,
	}

	if d.description != "" {
		data[KeyDescription] = d.description
	}
	if d.documentation != "" {
		data[KeyDocumentation] = d.documentation
	}
	if len(d.filters) > 0 {
		data[KeyFilters] = cloneRecords(d.filters)
	}
	if len(d.parameters) > 0 {
		data[KeyParameters] = cloneRecords(d.parameters)
	}
	if len(d.requirements) > 0 {
		data[KeyRequirements] = cloneRecords(d.requirements)
	}
	if len(d.response) > 0 {
		data[KeyResponse] = cloneRecords(d.response)
	}
	if len(d.statusCodes) > 0 {
		data[KeyStatusCodes] = cloneStatusCodes(d.statusCodes)
	}
	if d.section != "" {
		data[KeySection] = d.section
	}

	data[KeyHTTPS] = d.https
	data[KeyAuthentication] = d.authn

	return data
}

// MarshalJSON encodes the [RouteDoc.ToMap] projection.
func (d *RouteDoc) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}
