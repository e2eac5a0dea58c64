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
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/apidoc"
	"rivaas.dev/apidoc/codec"
)

func TestDecode_RecognizedKeys(t *testing.T) {
	t.Parallel()

	o, err := Decode(map[string]any{
		"resource":       "true",
		"description":    "List users",
		"output":         "UserCollection",
		"section":        "Users",
		"authentication": 1,
		"filters": []any{
			map[string]any{"name": "page", "dataType": "integer"},
		},
		"statusCodes": map[string]any{
			"200": "Returned when successful",
			"404": []any{"Returned when not found", "Returned when deleted"},
		},
	}, WithoutLogging())
	require.NoError(t, err)

	assert.Equal(t, apidoc.Options{
		Resource:       true,
		Description:    "List users",
		Output:         "UserCollection",
		Section:        "Users",
		Authentication: true,
		Filters:        []map[string]any{{"name": "page", "dataType": "integer"}},
		StatusCodes: map[int][]string{
			http.StatusOK:       {"Returned when successful"},
			http.StatusNotFound: {"Returned when not found", "Returned when deleted"},
		},
	}, o)
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()

	o, err := Decode(map[string]any{}, WithoutLogging())
	require.NoError(t, err)
	assert.Equal(t, apidoc.Options{}, o)

	o, err = Decode(map[string]any{"resource": nil, "authentication": false}, WithoutLogging())
	require.NoError(t, err)
	assert.False(t, o.Resource)
	assert.False(t, o.Authentication)
}

func TestDecode_InputSkipsFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o, err := Decode(map[string]any{
		"input":   "UserFilter",
		"filters": []any{map[string]any{"dataType": "integer"}},
	}, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, "UserFilter", o.Input)
	assert.Nil(t, o.Filters)
	assert.Contains(t, buf.String(), "ignoring filters because input is set")
}

func TestDecode_UnknownKeysAreLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o, err := Decode(map[string]any{
		"description": "List users",
		"deprecated":  true,
		"views":       []any{"default"},
	}, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, "List users", o.Description)
	assert.Contains(t, buf.String(), "key=deprecated")
	assert.Contains(t, buf.String(), "key=views")
}

func TestDecode_FilterNames(t *testing.T) {
	t.Parallel()

	numeric := map[string]any{"name": 42}
	o, err := Decode(map[string]any{
		"filters": []any{
			numeric,
			map[any]any{"name": "sort", "pattern": "asc|desc"},
		},
	}, WithoutLogging())
	require.NoError(t, err)

	assert.Equal(t, []map[string]any{
		{"name": "42"},
		{"name": "sort", "pattern": "asc|desc"},
	}, o.Filters)
	assert.Equal(t, 42, numeric["name"])
}

func TestDecode_TypedGoMaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		raw             map[string]any
		wantFilters     []map[string]any
		wantStatusCodes map[int][]string
	}{
		{
			name:            "status codes keyed by int",
			raw:             map[string]any{"statusCodes": map[int]string{404: "not found"}},
			wantStatusCodes: map[int][]string{http.StatusNotFound: {"not found"}},
		},
		{
			name:            "status codes with string values",
			raw:             map[string]any{"statusCodes": map[string]string{"404": "not found"}},
			wantStatusCodes: map[int][]string{http.StatusNotFound: {"not found"}},
		},
		{
			name:            "status codes with typed lists",
			raw:             map[string]any{"statusCodes": map[int][]string{400: {"bad input", "bad format"}}},
			wantStatusCodes: map[int][]string{http.StatusBadRequest: {"bad input", "bad format"}},
		},
		{
			name:        "typed filter list",
			raw:         map[string]any{"filters": []map[string]string{{"name": "page", "dataType": "integer"}}},
			wantFilters: []map[string]any{{"name": "page", "dataType": "integer"}},
		},
		{
			name:        "typed filter record",
			raw:         map[string]any{"filters": []any{map[string]string{"name": "page"}}},
			wantFilters: []map[string]any{{"name": "page"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o, err := Decode(tt.raw, WithoutLogging())
			require.NoError(t, err)

			assert.Equal(t, tt.wantFilters, o.Filters)
			assert.Equal(t, tt.wantStatusCodes, o.StatusCodes)

			_, err = New(tt.raw, WithoutLogging())
			assert.NoError(t, err)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     map[string]any
		wantErr error
	}{
		{name: "resource not bool-ish", raw: map[string]any{"resource": "maybe"}},
		{name: "description is a map", raw: map[string]any{"description": map[string]any{"a": 1}}},
		{name: "filters not a list", raw: map[string]any{"filters": 12}},
		{name: "filter not a record", raw: map[string]any{"filters": []any{"page"}}},
		{name: "status code not a number", raw: map[string]any{"statusCodes": map[string]any{"ok": "fine"}}, wantErr: apidoc.ErrInvalidStatusCode},
		{name: "status code zero", raw: map[string]any{"statusCodes": map[string]any{"0": "zero"}}, wantErr: apidoc.ErrInvalidStatusCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tt.raw, WithoutLogging())
			require.Error(t, err)

			var cfgErr *apidoc.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("constructs the record", func(t *testing.T) {
		t.Parallel()
		doc, err := New(map[string]any{
			"description":    "x",
			"section":        "y",
			"authentication": true,
		}, WithoutLogging())
		require.NoError(t, err)

		data := doc.ToMap()
		assert.Equal(t, "x", data[apidoc.KeyDescription])
		assert.Equal(t, "y", data[apidoc.KeySection])
		assert.Equal(t, true, data[apidoc.KeyAuthentication])
		assert.Equal(t, false, data[apidoc.KeyHTTPS])
		assert.NotContains(t, data, apidoc.KeyFilters)
	})

	t.Run("filter without name", func(t *testing.T) {
		t.Parallel()
		doc, err := New(map[string]any{
			"filters": []any{map[string]any{"dataType": "integer"}},
		}, WithoutLogging())

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, apidoc.ErrFilterNameRequired)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format codec.Type
		data   string
	}{
		{format: codec.TypeJSON, data: `{
			"description": "List users",
			"filters": [{"name": "page", "dataType": "integer"}],
			"statusCodes": {"200": "Returned when successful"}
		}`},
		{format: codec.TypeYAML, data: `
description: List users
filters:
  - name: page
    dataType: integer
statusCodes:
  "200": Returned when successful
`},
		{format: codec.TypeTOML, data: `
description = "List users"

[[filters]]
name = "page"
dataType = "integer"

[statusCodes]
200 = "Returned when successful"
`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			doc, err := Load([]byte(tt.data), tt.format, WithoutLogging())
			require.NoError(t, err)

			assert.Equal(t, "List users", doc.Description())
			assert.Equal(t, "integer", doc.Filters()["page"]["dataType"])
			assert.Equal(t, []string{"Returned when successful"}, doc.StatusCodes()[http.StatusOK])
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`{}`), "xml")
	require.Error(t, err)

	_, err = Load([]byte(`{"description":`), codec.TypeJSON)
	var cfgErr *apidoc.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "json", cfgErr.Source)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "users.yml")
	require.NoError(t, os.WriteFile(path, []byte("description: List users\nsection: Users\n"), 0o600))

	doc, err := LoadFile(path, WithoutLogging())
	require.NoError(t, err)
	assert.Equal(t, "List users", doc.Description())
	assert.Equal(t, "Users", doc.Section())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
