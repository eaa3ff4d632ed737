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

package conf

import (
	"gopkg.in/yaml.v3"

	"github.com/sxptool/sxp/app"
	"github.com/sxptool/sxp/conf/loader"
	"github.com/sxptool/sxp/conf/types"
)

// Default host layout and binary pinning for the script exporter.
const (
	DefaultExporterDir  = "/etc/script-exporter"
	DefaultScriptsDir   = DefaultExporterDir + "/scripts"
	DefaultSingleScript = "/etc/script-exporter-script"
	DefaultProbeConfig  = DefaultExporterDir + "/config.yaml"
	DefaultBinaryPath   = "/usr/local/bin/script_exporter"
	DefaultUnitPath     = "/etc/systemd/system/script-exporter.service"

	DefaultBinaryURL = "https://github.com/ricoberger/script_exporter/releases/download/v2.15.1/script_exporter-linux-amd64"
	DefaultBinarySHA = "e7962a9863c015f721e3cec9af24c85e6b93be79ff992230d9d12029c89f456f"
)

type Maker interface {
	Make(path string) (*types.Config, error)
}

type configMaker struct {
	fnd    app.Foundation
	loader loader.Loader
}

func CreateConfigMaker(fnd app.Foundation) Maker {
	return &configMaker{
		fnd:    fnd,
		loader: loader.CreateLoader(fnd),
	}
}

func (m *configMaker) Make(path string) (*types.Config, error) {
	loadedConfig, err := m.loader.LoadConfig(path)
	if err != nil {
		return nil, &types.ConfigParseError{Doc: path, Err: err}
	}

	config, err := bind(loadedConfig.Data())
	if err != nil {
		return nil, &types.ConfigParseError{Doc: path, Err: err}
	}
	applyDefaults(config)

	return config, nil
}

// bind maps the loaded document onto the typed config. The loader already
// normalized the document into a generic map regardless of its source
// format, so a YAML round trip is enough to bind it.
func bind(data map[string]interface{}) (*types.Config, error) {
	rawData, err := yaml.Marshal(data)
	if err != nil {
		return nil, err
	}
	config := &types.Config{}
	if err := yaml.Unmarshal(rawData, config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyDefaults(config *types.Config) {
	paths := &config.Paths
	if paths.ExporterDir == "" {
		paths.ExporterDir = DefaultExporterDir
	}
	if paths.ScriptsDir == "" {
		paths.ScriptsDir = DefaultScriptsDir
	}
	if paths.SingleScript == "" {
		paths.SingleScript = DefaultSingleScript
	}
	if paths.ProbeConfig == "" {
		paths.ProbeConfig = DefaultProbeConfig
	}
	if paths.Binary == "" {
		paths.Binary = DefaultBinaryPath
	}
	if paths.Unit == "" {
		paths.Unit = DefaultUnitPath
	}

	binary := &config.Binary
	if binary.URL == "" {
		binary.URL = DefaultBinaryURL
	}
	if binary.SHA256 == "" {
		binary.SHA256 = DefaultBinarySHA
	}
}
