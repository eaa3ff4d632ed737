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

package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sxptool/sxp/conf/types"
)

const singleJobConfig = `scrape_configs:
  - job_name: 'script_ping'
    metrics_path: /probe
    params:
      script: [ping]
    static_configs:
      - targets:
        - 127.0.0.1
    relabel_configs:
      - target_label: script
        replacement: ping
`

const twoJobsConfig = `scrape_configs:
  - job_name: 'script_one'
    static_configs:
      - targets:
        - 127.0.0.1
  - job_name: 'script_two'
    static_configs:
      - targets:
        - 127.0.0.2
`

func TestSelfJob(t *testing.T) {
	job := SelfJob()

	assert.Equal(t, "script-exporter", job["job_name"])
	staticConfigs := job["static_configs"].([]interface{})
	targets := staticConfigs[0].(map[string]interface{})["targets"].([]interface{})
	assert.Equal(t, []interface{}{"localhost:9469"}, targets)
}

func TestScriptsJobs(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		wantJobs int
		wantErr  bool
	}{
		{
			name:     "single job is augmented",
			config:   singleJobConfig,
			wantJobs: 1,
		},
		{
			name:     "every job is augmented",
			config:   twoJobsConfig,
			wantJobs: 2,
		},
		{
			name:     "empty config yields no jobs",
			config:   "",
			wantJobs: 0,
		},
		{
			name:    "invalid yaml fails",
			config:  "scrape_configs: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := ScriptsJobs(tt.config)

			if tt.wantErr {
				require.Error(t, err)
				var parseErr *types.ConfigParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, jobs, tt.wantJobs)

			for _, job := range jobs {
				relabelConfigs := job["relabel_configs"].([]interface{})
				require.Len(t, relabelConfigs, 4)

				first := relabelConfigs[0].(map[string]interface{})
				assert.Equal(t, []interface{}{"__address__"}, first["source_labels"])
				assert.Equal(t, "__param_target", first["target_label"])

				second := relabelConfigs[1].(map[string]interface{})
				assert.Equal(t, "instance", second["target_label"])

				third := relabelConfigs[2].(map[string]interface{})
				assert.Equal(t, "script_target", third["target_label"])

				fourth := relabelConfigs[3].(map[string]interface{})
				assert.Equal(t, "__address__", fourth["target_label"])
				assert.Equal(t, "localhost:9469", fourth["replacement"])
			}
		})
	}
}

func TestScriptsJobs_preservesJobFields(t *testing.T) {
	jobs, err := ScriptsJobs(singleJobConfig)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "script_ping", job["job_name"])
	assert.Equal(t, "/probe", job["metrics_path"])
	params := job["params"].(map[string]interface{})
	assert.Equal(t, []interface{}{"ping"}, params["script"])
}

func TestJobs(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		wantCount int
	}{
		{
			name:      "self job only",
			config:    "",
			wantCount: 1,
		},
		{
			name:      "self job plus one rewritten job",
			config:    singleJobConfig,
			wantCount: 2,
		},
		{
			name:      "self job plus two rewritten jobs",
			config:    twoJobsConfig,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := Jobs(tt.config)

			require.NoError(t, err)
			assert.Len(t, jobs, tt.wantCount)
			assert.Equal(t, "script-exporter", jobs[0]["job_name"])
		})
	}
}

func TestEncode(t *testing.T) {
	jobs, err := Jobs(singleJobConfig)
	require.NoError(t, err)

	encoded, err := Encode(jobs)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(encoded), &decoded))
	assert.Len(t, decoded, 2)
}
