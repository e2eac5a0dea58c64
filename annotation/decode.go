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
	"fmt"
	"os"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"rivaas.dev/apidoc"
	"rivaas.dev/apidoc/codec"
)

// raw mirrors the recognized annotation keys. Values that need more than weak
// typing are kept as any and normalized by hand.
type raw struct {
	Resource       any    `annotation:"resource"`
	Description    string `annotation:"description"`
	Input          string `annotation:"input"`
	Filters        any    `annotation:"filters"`
	Output         string `annotation:"output"`
	StatusCodes    any    `annotation:"statusCodes"`
	Authentication any    `annotation:"authentication"`
	Section        string `annotation:"section"`
}

// Decode normalizes a raw annotation mapping into [apidoc.Options].
//
// Unknown keys are ignored. Values of the wrong shape are reported as
// [*apidoc.ConfigurationError].
func Decode(m map[string]any, opts ...Option) (apidoc.Options, error) {
	return newConfig(opts...).decode(m)
}

// New decodes m and constructs the [apidoc.RouteDoc].
func New(m map[string]any, opts ...Option) (*apidoc.RouteDoc, error) {
	o, err := Decode(m, opts...)
	if err != nil {
		return nil, err
	}
	return apidoc.New(o)
}

// Load decodes data in the given format and constructs the [apidoc.RouteDoc].
func Load(data []byte, format codec.Type, opts ...Option) (*apidoc.RouteDoc, error) {
	dec, err := codec.GetDecoder(format)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err = dec.Decode(data, &m); err != nil {
		return nil, apidoc.NewConfigurationError(string(format), err)
	}
	return New(m, opts...)
}

// LoadFile reads an annotation file and constructs the [apidoc.RouteDoc].
// The format is inferred from the file extension.
func LoadFile(path string, opts ...Option) (*apidoc.RouteDoc, error) {
	format, err := codec.TypeFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the documentation build
	if err != nil {
		return nil, fmt.Errorf("annotation: read %s: %w", path, err)
	}
	return Load(data, format, opts...)
}

func (cfg *config) decode(m map[string]any) (apidoc.Options, error) {
	var o apidoc.Options

	if cfg.validateSchema {
		if err := Validate(m); err != nil {
			return o, err
		}
	}

	var r raw
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "annotation",
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &r,
	})
	if err != nil {
		return o, fmt.Errorf("annotation: create decoder: %w", err)
	}
	if err = decoder.Decode(m); err != nil {
		return o, apidoc.NewConfigurationError("annotation", err)
	}

	slices.Sort(md.Unused)
	for _, key := range md.Unused {
		cfg.debug("ignoring unknown annotation key", "key", key)
	}

	if o.Resource, err = toBool(r.Resource); err != nil {
		return o, apidoc.NewFieldError("annotation", "resource", err)
	}
	if o.Authentication, err = toBool(r.Authentication); err != nil {
		return o, apidoc.NewFieldError("annotation", "authentication", err)
	}

	o.Description = r.Description
	o.Input = r.Input
	o.Output = r.Output
	o.Section = r.Section

	if o.Input == "" {
		if o.Filters, err = decodeFilters(r.Filters); err != nil {
			return o, err
		}
	} else if r.Filters != nil {
		cfg.warn("ignoring filters because input is set", "input", o.Input)
	}

	if o.StatusCodes, err = decodeStatusCodes(r.StatusCodes); err != nil {
		return o, err
	}

	return o, nil
}

func toBool(v any) (bool, error) {
	if v == nil {
		return false, nil
	}
	return cast.ToBoolE(v)
}

// weakDecode converts input into output with the same weak typing rules as
// the top-level annotation decoder, so typed Go maps and slices such as
// map[int]string or []map[string]string are accepted.
func weakDecode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// decodeFilters keeps the order of the filter records. A non-string name is
// converted to its string form; a missing one is left for apidoc.New to report.
func decodeFilters(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}

	var items []any
	if err := weakDecode(v, &items); err != nil {
		return nil, apidoc.NewFieldError("annotation", "filters", err)
	}

	filters := make([]map[string]any, 0, len(items))
	for i, item := range items {
		var filter map[string]any
		if err := weakDecode(item, &filter); err != nil || filter == nil {
			if err == nil {
				err = apidoc.ErrFilterNameRequired
			}
			return nil, apidoc.NewConfigurationError(fmt.Sprintf("filters[%d]", i), err)
		}

		if name, ok := filter[apidoc.FilterNameKey]; ok && name != nil {
			s, err := cast.ToStringE(name)
			if err != nil {
				return nil, apidoc.NewFieldError(fmt.Sprintf("filters[%d]", i), apidoc.FilterNameKey, err)
			}
			filter[apidoc.FilterNameKey] = s
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// decodeStatusCodes accepts any map keyed by something int-ish, with a single
// description or a list of descriptions per code.
func decodeStatusCodes(v any) (map[int][]string, error) {
	if v == nil {
		return nil, nil
	}

	var entries map[string]any
	if err := weakDecode(v, &entries); err != nil {
		return nil, apidoc.NewFieldError("annotation", "statusCodes", err)
	}

	codes := make(map[int][]string, len(entries))
	for key, value := range entries {
		code, err := cast.ToIntE(key)
		if err != nil || code <= 0 {
			return nil, apidoc.NewFieldError("statusCodes", key, apidoc.ErrInvalidStatusCode)
		}

		// A scalar is lifted into a one-element list.
		var descriptions []string
		if err = weakDecode(value, &descriptions); err != nil {
			return nil, apidoc.NewFieldError("statusCodes", key, err)
		}
		codes[code] = descriptions
	}
	return codes, nil
}
