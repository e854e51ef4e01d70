// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/redundancy/rule"
)

var (
	// ErrUnknownFormat is returned for configuration files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrUnknownRule is returned when a configuration names a rule that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidValue is returned for out of range settings.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// File is the content of a configuration file.
type File struct {
	// Include are the doublestar patterns of analyzed files.
	Include []string `yaml:"include" toml:"include"`

	// Exclude are the doublestar patterns of skipped files and directories.
	Exclude []string `yaml:"exclude" toml:"exclude"`

	// Jobs limits the number of files processed in parallel, 0 means one per CPU.
	Jobs int `yaml:"jobs" toml:"jobs"`

	// MaxPasses limits the analyze and fix rounds per file.
	MaxPasses int `yaml:"max-passes" toml:"max-passes"`

	// Generated includes generated code.
	Generated bool `yaml:"generated" toml:"generated"`

	// Suppressions honors suppression comments, the default.
	Suppressions *bool `yaml:"suppressions" toml:"suppressions"`

	// Rules configures rules by ID or name.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`
}

// RuleConfig overrides the settings of a single rule.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled" toml:"enabled"`
	Severity *rule.Severity `yaml:"severity" toml:"severity"`
}

// Default returns the configuration used without a configuration file.
func Default() *File {
	return &File{
		Include: []string{"**/*.cs"},
		Exclude: []string{"**/bin/**", "**/obj/**"},
	}
}

// Load reads a YAML or TOML configuration file, selected by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes configuration data in the format given by a file extension.
// Unset values keep their defaults.
func Parse(ext string, data []byte) (*File, error) {
	f := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

	case ".toml":
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks that the configuration is valid.
func (f *File) Validate() error {
	switch {
	case f.Jobs < 0:
		return fmt.Errorf("%w: jobs must not be negative", ErrInvalidValue)

	case f.MaxPasses < 0:
		return fmt.Errorf("%w: max-passes must not be negative", ErrInvalidValue)

	case len(f.Include) == 0:
		return fmt.Errorf("%w: include must not be empty", ErrInvalidValue)
	}

	return nil
}

// Behavior returns the behavioral options of the configuration.
func (f *File) Behavior() BitMask[Config] {
	b := DefaultBehavior().With(IncludeGenerated, f.Generated)

	if f.Suppressions != nil {
		b.Set(Suppressions, *f.Suppressions)
	}

	return b
}

// Configure returns reg with the rule settings applied.
func (f *File) Configure(reg *rule.Registry) (*rule.Registry, error) {
	settings := make(map[string]RuleConfig, len(f.Rules))

	for key, rc := range f.Rules {
		r, ok := reg.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, key)
		}

		settings[r.ID] = merge(settings[r.ID], rc)
	}

	return reg.Configure(func(r rule.Rule) rule.Rule {
		rc, ok := settings[r.ID]
		if !ok {
			return r
		}

		if rc.Enabled != nil {
			r.Enabled = *rc.Enabled
		}

		if rc.Severity != nil {
			r.Severity = *rc.Severity
		}

		return r
	})
}

func merge(into, from RuleConfig) RuleConfig {
	if from.Enabled != nil {
		into.Enabled = from.Enabled
	}

	if from.Severity != nil {
		into.Severity = from.Severity
	}

	return into
}
