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

// Package rivaasroute binds [apidoc.RouteDoc] records to routes registered
// with the Rivaas router.
//
// Example:
//
//	r := router.MustNew()
//	r.GET("/users/:id", getUser).Where("id", `\d+`)
//
//	for _, info := range r.Routes() {
//	    doc := docs[info.HandlerName]
//	    rivaasroute.Bind(doc, info)
//	}
package rivaasroute

import (
	"rivaas.dev/router/route"

	"rivaas.dev/apidoc"
)

// Requirement record attributes produced by [Requirements].
const (
	AttrRequirement = "requirement"
	AttrDataType    = "dataType"
)

// DataTypeString is the data type reported for router constraints, which are
// always matched against the raw path segment.
const DataTypeString = "string"

// Route adapts a router [route.Info] to [apidoc.Route].
type Route struct {
	info route.Info
}

// Wrap returns info as an [apidoc.Route].
func Wrap(info route.Info) Route {
	return Route{info: info}
}

// Pattern implements [apidoc.Route].
func (r Route) Pattern() string { return r.info.Path }

// MethodConstraint implements [apidoc.Route].
func (r Route) MethodConstraint() string { return r.info.Method }

// Info returns the wrapped route information.
func (r Route) Info() route.Info { return r.info }

// Requirements converts the route's parameter constraints into requirement
// records keyed by parameter name.
func Requirements(info route.Info) map[string]map[string]any {
	requirements := make(map[string]map[string]any, len(info.Constraints))
	for name, pattern := range info.Constraints {
		requirements[name] = map[string]any{
			AttrRequirement: pattern,
			AttrDataType:    DataTypeString,
		}
	}
	return requirements
}

// Bind binds doc to the route and merges the route's constraints into the
// doc's requirements. Requirements already present on doc are overridden by
// the route's constraints of the same name.
func Bind(doc *apidoc.RouteDoc, info route.Info) {
	doc.BindRoute(Wrap(info))
	doc.SetRequirements(Requirements(info))
}
