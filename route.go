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

// MethodAny is the method reported for routes without a method constraint.
const MethodAny = "ANY"

// Route is the narrow view of a routing framework's route that a [RouteDoc]
// needs. It decouples the record from any specific router.
type Route interface {
	// Pattern returns the URI pattern (e.g. "/users/:id").
	Pattern() string

	// MethodConstraint returns the HTTP method the route is restricted to,
	// or "" if it accepts any method.
	MethodConstraint() string
}

// RouteInfo is a framework-agnostic [Route].
type RouteInfo struct {
	Method string // HTTP method (GET, POST, etc.), empty for any
	Path   string // URL path with parameters (e.g. "/users/:id")
}

// Pattern implements [Route].
func (ri RouteInfo) Pattern() string { return ri.Path }

// MethodConstraint implements [Route].
func (ri RouteInfo) MethodConstraint() string { return ri.Method }

// BindRoute attaches the route to the record.
//
// The URI is taken from the route pattern and the method from its method
// constraint, or [MethodAny] when the route has none. Method, URI and route
// are always set together; binding nil clears all three.
func (d *RouteDoc) BindRoute(r Route) {
	if r == nil {
		d.route, d.uri, d.method = nil, "", ""
		return
	}

	d.route = r
	d.uri = r.Pattern()
	d.method = r.MethodConstraint()
	if d.method == "" {
		d.method = MethodAny
	}
}

// Route returns the bound route, or nil before [RouteDoc.BindRoute].
func (d *RouteDoc) Route() Route { return d.route }

// Method returns the bound HTTP method, or "" before [RouteDoc.BindRoute].
func (d *RouteDoc) Method() string { return d.method }

// URI returns the bound URI pattern, or "" before [RouteDoc.BindRoute].
func (d *RouteDoc) URI() string { return d.uri }
