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

package loader

import (
	"encoding/json"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/sxptool/sxp/app"
)

type LoadedConfig interface {
	Path() string
	Data() map[string]interface{}
}

type Loader interface {
	LoadConfig(path string) (LoadedConfig, error)
}

type LoadedConfigData struct {
	path string
	data map[string]interface{}
}

func (d LoadedConfigData) Path() string {
	return d.path
}

func (d LoadedConfigData) Data() map[string]interface{} {
	return d.data
}

// unmarshalByExt picks the decoder from the document's file extension.
var unmarshalByExt = map[string]func([]byte, interface{}) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

type ConfigLoader struct {
	fnd app.Foundation
}

func (l ConfigLoader) LoadConfig(path string) (LoadedConfig, error) {
	unmarshal, ok := unmarshalByExt[filepath.Ext(path)]
	if !ok {
		return nil, errors.Errorf("unsupported extension: %s", filepath.Ext(path))
	}

	rawData, err := afero.ReadFile(l.fnd.Fs(), path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := unmarshal(rawData, &data); err != nil {
		return nil, err
	}

	return LoadedConfigData{
		path: path,
		data: data,
	}, nil
}

func CreateLoader(fnd app.Foundation) Loader {
	return &ConfigLoader{
		fnd: fnd,
	}
}
