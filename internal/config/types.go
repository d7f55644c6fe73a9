// Copyright 2025 RAgent Labs
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config types define the configuration structures used throughout
// ragent. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import "github.com/ragenthq/ragent/internal/fda"

// Config represents the complete configuration for ragent. It consolidates
// settings from the config file, environment variables, and built-in
// defaults; command-line flags are applied on top by the CLI.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// APIConfig contains openFDA-specific settings. Overriding the endpoint is
// mainly useful for testing against a mock server.
type APIConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// DefaultsConfig contains default settings that apply to every search
// unless overridden by command-line flags.
type DefaultsConfig struct {
	PageSize     int    `yaml:"page_size"`
	OutputFormat string `yaml:"output_format"`
}

// DefaultConfig returns a Config with sensible defaults: the public openFDA
// endpoint, the API's maximum page size, and pretty JSON output.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: fda.DefaultEndpoint,
		},
		Defaults: DefaultsConfig{
			PageSize:     fda.DefaultPageSize,
			OutputFormat: "json",
		},
	}
}
