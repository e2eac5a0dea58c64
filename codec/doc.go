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

// Package codec decodes raw route annotations from serialized formats and
// encodes [rivaas.dev/apidoc.RouteDoc] projections for renderers.
//
// Codecs register themselves at init time under a [Type] and are looked up
// with [GetDecoder] and [GetEncoder]:
//
//	dec, err := codec.GetDecoder(codec.TypeYAML)
//	if err != nil {
//	    return err
//	}
//	var raw map[string]any
//	if err := dec.Decode(data, &raw); err != nil {
//	    return err
//	}
//
// The registry is populated during package initialization and is read-only
// afterwards; registering additional codecs must happen before concurrent use.
package codec
