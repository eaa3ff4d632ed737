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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/sxptool/sxp/app"
	appMocks "github.com/sxptool/sxp/mocks/generated/app"
)

func TestConfigLoader_LoadConfig(t *testing.T) {
	// Create and setup an in-memory file system
	mockFs := afero.NewMemMapFs()
	err := afero.WriteFile(mockFs, "/test.json", []byte(`{"config_file": "scripts: []"}`), 0644)
	assert.NoError(t, err)
	err = afero.WriteFile(mockFs, "/test-invalid.json", []byte(`{"config_file":`), 0644)
	assert.NoError(t, err)
	err = afero.WriteFile(mockFs, "/test.yaml", []byte("config_file: 'scripts: []'"), 0644)
	assert.NoError(t, err)
	err = afero.WriteFile(mockFs, "/test.yml", []byte("config_file: 'scripts: []'"), 0644)
	assert.NoError(t, err)
	err = afero.WriteFile(mockFs, "/test.toml", []byte("config_file = \"scripts: []\""), 0644)
	assert.NoError(t, err)
	err = afero.WriteFile(mockFs, "/test.unknown", []byte("config_file = \"scripts: []\""), 0644)
	assert.NoError(t, err)

	mockFnd := &appMocks.MockFoundation{}
	mockFnd.On("Fs").Return(mockFs)

	type args struct {
		path string
	}
	tests := []struct {
		name    string
		fnd     app.Foundation
		args    args
		want    LoadedConfig
		wantErr bool
	}{
		{
			name:    "Testing LoadConfig - JSON",
			fnd:     mockFnd,
			args:    args{path: "/test.json"},
			want:    LoadedConfigData{path: "/test.json", data: map[string]interface{}{"config_file": "scripts: []"}},
			wantErr: false,
		},
		{
			name:    "Testing LoadConfig - YAML",
			fnd:     mockFnd,
			args:    args{path: "/test.yaml"},
			want:    LoadedConfigData{path: "/test.yaml", data: map[string]interface{}{"config_file": "scripts: []"}},
			wantErr: false,
		},
		{
			name:    "Testing LoadConfig - YML",
			fnd:     mockFnd,
			args:    args{path: "/test.yml"},
			want:    LoadedConfigData{path: "/test.yml", data: map[string]interface{}{"config_file": "scripts: []"}},
			wantErr: false,
		},
		{
			name:    "Testing LoadConfig - TOML",
			fnd:     mockFnd,
			args:    args{path: "/test.toml"},
			want:    LoadedConfigData{path: "/test.toml", data: map[string]interface{}{"config_file": "scripts: []"}},
			wantErr: false,
		},
		{
			name:    "Testing LoadConfig - Unsupported file type",
			fnd:     mockFnd,
			args:    args{path: "/test.unknown"},
			want:    nil,
			wantErr: true,
		},
		{
			name:    "Testing LoadConfig - Not found file",
			fnd:     mockFnd,
			args:    args{path: "/testx.json"},
			want:    nil,
			wantErr: true,
		},
		{
			name:    "Testing LoadConfig - Invalid JSON",
			fnd:     mockFnd,
			args:    args{path: "/test-invalid.json"},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ConfigLoader{fnd: tt.fnd}
			got, err := l.LoadConfig(tt.args.path)

			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
