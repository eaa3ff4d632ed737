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

// Package scrape assembles the scrape jobs handed to the monitoring
// agent: one static self-scrape job, plus every job of the supplied
// scrape config redirected through the local exporter endpoint.
package scrape

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sxptool/sxp/conf/types"
)

// ExporterPort is the fixed port the script exporter listens on.
const ExporterPort = 9469

// Job is a Prometheus scrape job kept as a generic document so that
// fields this operator does not know about round-trip untouched.
type Job map[string]interface{}

// SelfJob is the static job scraping the exporter's own metrics.
func SelfJob() Job {
	return Job{
		"job_name": "script-exporter",
		"static_configs": []interface{}{
			map[string]interface{}{
				"targets": []interface{}{fmt.Sprintf("localhost:%d", ExporterPort)},
			},
		},
	}
}

// ScriptsJobs augments every job of the supplied scrape config with the
// relabeling rules that redirect the scrape through the exporter and
// preserve the original target as a label. The rules come from the
// script exporter documentation.
func ScriptsJobs(prometheusYAML string) ([]Job, error) {
	if prometheusYAML == "" {
		return nil, nil
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(prometheusYAML), &doc); err != nil {
		return nil, &types.ConfigParseError{Doc: "prometheus config", Err: err}
	}

	scrapeConfigs, _ := doc["scrape_configs"].([]interface{})
	var jobs []Job
	for _, item := range scrapeConfigs {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		entry["relabel_configs"] = []interface{}{
			map[string]interface{}{
				"source_labels": []interface{}{"__address__"},
				"target_label":  "__param_target",
			},
			map[string]interface{}{
				"source_labels": []interface{}{"__param_target"},
				"target_label":  "instance",
			},
			map[string]interface{}{
				"source_labels": []interface{}{"__param_target"},
				"target_label":  "script_target",
			},
			map[string]interface{}{
				"target_label": "__address__",
				"replacement":  fmt.Sprintf("localhost:%d", ExporterPort),
			},
		}
		jobs = append(jobs, Job(entry))
	}
	return jobs, nil
}

// Jobs is the full job list for the monitoring agent: the self job
// followed by the augmented script jobs.
func Jobs(prometheusYAML string) ([]Job, error) {
	scriptsJobs, err := ScriptsJobs(prometheusYAML)
	if err != nil {
		return nil, err
	}
	return append([]Job{SelfJob()}, scriptsJobs...), nil
}

// Encode serializes the job list for handing over relation data.
func Encode(jobs []Job) (string, error) {
	encoded, err := yaml.Marshal(jobs)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
