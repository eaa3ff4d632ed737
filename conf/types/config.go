// Copyright 2025 The SXP Authors
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

package types

// Paths describes where the exporter artifacts live on the host.
type Paths struct {
	ExporterDir  string `yaml:"exporter_dir" json:"exporter_dir" toml:"exporter_dir"`
	ScriptsDir   string `yaml:"scripts_dir" json:"scripts_dir" toml:"scripts_dir"`
	SingleScript string `yaml:"single_script" json:"single_script" toml:"single_script"`
	ProbeConfig  string `yaml:"probe_config" json:"probe_config" toml:"probe_config"`
	Binary       string `yaml:"binary" json:"binary" toml:"binary"`
	Unit         string `yaml:"unit" json:"unit" toml:"unit"`
}

// Binary describes how the exporter binary is obtained.
type Binary struct {
	URL      string `yaml:"url" json:"url" toml:"url"`
	SHA256   string `yaml:"sha256" json:"sha256" toml:"sha256"`
	Resource string `yaml:"resource" json:"resource" toml:"resource"`
}

// Config is the operator document supplied on every lifecycle event.
type Config struct {
	ConfigFile           string `yaml:"config_file" json:"config_file" toml:"config_file"`
	ScriptFile           string `yaml:"script_file" json:"script_file" toml:"script_file"`
	ScriptsArchive       string `yaml:"scripts_archive" json:"scripts_archive" toml:"scripts_archive"`
	PrometheusConfigFile string `yaml:"prometheus_config_file" json:"prometheus_config_file" toml:"prometheus_config_file"`
	Paths                Paths  `yaml:"paths" json:"paths" toml:"paths"`
	Binary               Binary `yaml:"binary" json:"binary" toml:"binary"`
}
