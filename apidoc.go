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
	"fmt"
	"maps"
)

// FilterNameKey is the attribute that names a filter record in [Options.Filters].
const FilterNameKey = "name"

// Options is the typed form of a route annotation.
//
// Zero values mean "not set". Annotation readers that start from an untyped
// mapping should normalize it first (see the annotation subpackage).
type Options struct {
	Resource       bool             // Marks the route as a resource root
	Description    string           // One-line summary
	Input          string           // Input type identifier; when set, Filters is ignored
	Filters        []map[string]any // Ordered filter records, each carrying a "name"
	Output         string           // Output type identifier
	StatusCodes    map[int][]string // Descriptions per HTTP status code
	Authentication bool             // Route requires authentication
	Section        string           // Grouping tag
}

// RouteDoc holds the documentation metadata of a single route.
//
// Create it with [New]. The zero value is an empty, unbound record and is also
// usable.
type RouteDoc struct {
	requirements  map[string]map[string]any
	filters       map[string]map[string]any
	parameters    map[string]map[string]any
	input         string
	output        string
	description   string
	section       string
	documentation string
	isResource    bool
	method        string
	uri           string
	response      map[string]map[string]any
	route         Route
	https         bool
	authn         bool
	statusCodes   map[int][]string
}

// New creates a [RouteDoc] from the given options.
//
// Status codes with an empty description list are skipped.
// Filters are read only when Input is empty. Each filter record must carry a
// non-empty string "name"; the name is stripped from a copy of the record and
// the rest is stored under it. A filter without a name fails with a
// [*ConfigurationError] wrapping [ErrFilterNameRequired].
//
// Example:
//
//	doc, err := apidoc.New(apidoc.Options{
//	    Description: "Get user",
//	    StatusCodes: map[int][]string{404: {"User not found"}},
//	})
func New(opts Options) (*RouteDoc, error) {
	d := &RouteDoc{
		requirements: map[string]map[string]any{},
		filters:      map[string]map[string]any{},
		parameters:   map[string]map[string]any{},
		response:     map[string]map[string]any{},
		statusCodes:  map[int][]string{},
		isResource:   opts.Resource,
		description:  opts.Description,
		output:       opts.Output,
		section:      opts.Section,
		authn:        opts.Authentication,
	}

	if opts.Input != "" {
		d.input = opts.Input
	} else {
		for i, filter := range opts.Filters {
			name, ok := filter[FilterNameKey].(string)
			if !ok || name == "" {
				return nil, NewConfigurationError(fmt.Sprintf("filters[%d]", i), ErrFilterNameRequired)
			}

			record := maps.Clone(filter)
			delete(record, FilterNameKey)
			d.filters[name] = record
		}
	}

	for code, descriptions := range opts.StatusCodes {
		if code <= 0 {
			return nil, NewFieldError("statusCodes", fmt.Sprint(code), ErrInvalidStatusCode)
		}
		if len(descriptions) == 0 {
			continue
		}
		d.AddStatusCode(code, descriptions[0], descriptions[1:]...)
	}

	return d, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts Options) *RouteDoc {
	d, err := New(opts)
	if err != nil {
		panic(err)
	}
	return d
}

// AddFilter stores a query-string filter under name, replacing any previous one.
// It panics with [ErrEmptyName] if name is empty.
func (d *RouteDoc) AddFilter(name string, filter map[string]any) {
	mustName(name)
	d.filters = put(d.filters, name, filter)
}

// AddStatusCode sets the descriptions for an HTTP status code.
//
// A single description is stored as a one-element sequence. Calling it again
// for the same code replaces the previous descriptions.
// It panics with [ErrInvalidStatusCode] if code is not positive.
func (d *RouteDoc) AddStatusCode(code int, description string, more ...string) {
	if code <= 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidStatusCode, code))
	}
	if d.statusCodes == nil {
		d.statusCodes = map[int][]string{}
	}
	d.statusCodes[code] = append([]string{description}, more...)
}

// AddRequirement stores a path parameter constraint under name.
// It panics with [ErrEmptyName] if name is empty.
func (d *RouteDoc) AddRequirement(name string, requirement map[string]any) {
	mustName(name)
	d.requirements = put(d.requirements, name, requirement)
}

// SetRequirements merges requirements into the existing ones.
// Entries in requirements win over existing entries with the same name.
func (d *RouteDoc) SetRequirements(requirements map[string]map[string]any) {
	for name, requirement := range requirements {
		d.AddRequirement(name, requirement)
	}
}

// AddParameter stores an input field descriptor under name.
// It panics with [ErrEmptyName] if name is empty.
func (d *RouteDoc) AddParameter(name string, parameter map[string]any) {
	mustName(name)
	d.parameters = put(d.parameters, name, parameter)
}

// SetParameters replaces all parameters.
func (d *RouteDoc) SetParameters(parameters map[string]map[string]any) {
	d.parameters = cloneRecords(parameters)
}

// SetResponse replaces the response field descriptors.
// The expected shape is the same as for parameters.
func (d *RouteDoc) SetResponse(response map[string]map[string]any) {
	d.response = cloneRecords(response)
}

// SetDescription sets the one-line summary.
func (d *RouteDoc) SetDescription(description string) {
	d.description = description
}

// SetSection sets the grouping tag.
func (d *RouteDoc) SetSection(section string) {
	d.section = section
}

// SetDocumentation sets the extended documentation text.
func (d *RouteDoc) SetDocumentation(documentation string) {
	d.documentation = documentation
}

// SetHTTPS marks whether the route is served over HTTPS only.
func (d *RouteDoc) SetHTTPS(https bool) {
	d.https = https
}

// SetAuthentication marks whether the route requires authentication.
func (d *RouteDoc) SetAuthentication(authentication bool) {
	d.authn = authentication
}

// Input returns the input type identifier, or "" if none was set.
func (d *RouteDoc) Input() string { return d.input }

// Output returns the output type identifier, or "" if none was set.
func (d *RouteDoc) Output() string { return d.output }

// Description returns the one-line summary.
func (d *RouteDoc) Description() string { return d.description }

// Section returns the grouping tag.
func (d *RouteDoc) Section() string { return d.section }

// Documentation returns the extended documentation text.
func (d *RouteDoc) Documentation() string { return d.documentation }

// IsResource reports whether the route is a resource root.
func (d *RouteDoc) IsResource() bool { return d.isResource }

// HTTPS reports whether the route is served over HTTPS only.
func (d *RouteDoc) HTTPS() bool { return d.https }

// Authentication reports whether the route requires authentication.
func (d *RouteDoc) Authentication() bool { return d.authn }

// Filters returns a copy of the filter records keyed by name.
func (d *RouteDoc) Filters() map[string]map[string]any { return cloneRecords(d.filters) }

// Parameters returns a copy of the parameter records keyed by name.
func (d *RouteDoc) Parameters() map[string]map[string]any { return cloneRecords(d.parameters) }

// Requirements returns a copy of the requirement records keyed by name.
func (d *RouteDoc) Requirements() map[string]map[string]any { return cloneRecords(d.requirements) }

// Response returns a copy of the response field descriptors.
func (d *RouteDoc) Response() map[string]map[string]any { return cloneRecords(d.response) }

// StatusCodes returns a copy of the status code descriptions.
func (d *RouteDoc) StatusCodes() map[int][]string { return cloneStatusCodes(d.statusCodes) }

func mustName(name string) {
	if name == "" {
		panic(ErrEmptyName)
	}
}

// put stores a copy of record under name, allocating m if needed.
func put(m map[string]map[string]any, name string, record map[string]any) map[string]map[string]any {
	if m == nil {
		m = map[string]map[string]any{}
	}
	if record == nil {
		record = map[string]any{}
	}
	m[name] = maps.Clone(record)
	return m
}

func cloneRecords(src map[string]map[string]any) map[string]map[string]any {
	dst := make(map[string]map[string]any, len(src))
	for name, record := range src {
		dst[name] = maps.Clone(record)
	}
	return dst
}

func cloneStatusCodes(src map[int][]string) map[int][]string {
	dst := make(map[int][]string, len(src))
	for code, descriptions := range src {
		dst[code] = append([]string{}, descriptions...)
	}
	return dst
}
