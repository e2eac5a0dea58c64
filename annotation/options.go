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

import "log/slog"

// Option configures annotation decoding.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	validateSchema bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report ignored keys.
// By default slog.Default() is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	annotation.New(raw, annotation.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithoutLogging disables logging.
func WithoutLogging() Option {
	return func(cfg *config) {
		cfg.logger = nil
	}
}

// WithSchemaValidation validates the raw annotation against the embedded
// JSON Schema before decoding. Values are then required to have their exact
// types instead of being coerced.
func WithSchemaValidation() Option {
	return func(cfg *config) {
		cfg.validateSchema = true
	}
}

func (cfg *config) debug(msg string, args ...any) {
	if cfg.logger != nil {
		cfg.logger.Debug(msg, args...)
	}
}

func (cfg *config) warn(msg string, args ...any) {
	if cfg.logger != nil {
		cfg.logger.Warn(msg, args...)
	}
}
