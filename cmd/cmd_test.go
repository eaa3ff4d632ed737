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

package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sxptool/sxp/run"
	"github.com/sxptool/sxp/run/metrics"
	"github.com/sxptool/sxp/run/scrape"
	"github.com/sxptool/sxp/run/status"
)

func TestNewEventCommand(t *testing.T) {
	for _, event := range []run.Event{run.EventInstall, run.EventStart, run.EventStop, run.EventApply, run.EventStatus} {
		t.Run(string(event), func(t *testing.T) {
			eventCmd := newEventCommand(event)

			assert.Equal(t, string(event), eventCmd.Use)
			assert.NotEmpty(t, eventCmd.Short)

			configFlag := eventCmd.Flags().Lookup("config")
			require.NotNil(t, configFlag)
			assert.Equal(t, "c", configFlag.Shorthand)

			dryRunFlag := eventCmd.Flags().Lookup("dry-run")
			require.NotNil(t, dryRunFlag)
			assert.Equal(t, "false", dryRunFlag.DefValue)

			expectFlag := eventCmd.Flags().Lookup("expect")
			require.NotNil(t, expectFlag)
		})
	}
}

func TestAssertExpectations(t *testing.T) {
	reconciliationMetrics := metrics.ReconciliationMetrics{
		ScriptsRegistered: 2,
		FilesWritten:      2,
		DegradedSteps:     1,
	}

	tests := []struct {
		name        string
		expressions []string
		wantErr     string
	}{
		{
			name: "no expectations",
		},
		{
			name:        "all met",
			expressions: []string{"scripts_registered eq 2", "degraded_steps le 1"},
		},
		{
			name:        "not met",
			expressions: []string{"degraded_steps eq 0"},
			wantErr:     `expectation "degraded_steps eq 0" not met`,
		},
		{
			name:        "unparseable expression",
			expressions: []string{"degraded_steps"},
			wantErr:     "invalid expectation",
		},
		{
			name:        "unknown metric",
			expressions: []string{"restarts eq 0"},
			wantErr:     "metric restarts not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertExpectations(reconciliationMetrics, tt.expressions)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateFoundation(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("dry run keeps writes off the host", func(t *testing.T) {
		fnd := createFoundation(logger, true)

		assert.True(t, fnd.DryRun())
		// Scratch writes must succeed even though the host layer is read only.
		require.NoError(t, fnd.Fs().MkdirAll("/tmp/sxp-dry-run-test", 0o755))
	})

	t.Run("regular run uses the host", func(t *testing.T) {
		fnd := createFoundation(logger, false)

		assert.False(t, fnd.DryRun())
	})
}

func TestPrintReport(t *testing.T) {
	report := &run.Report{
		Status: status.Status{
			State:   status.StateBlocked,
			Reasons: []string{status.ReasonConfigMissing},
		},
		Jobs: []scrape.Job{scrape.SelfJob()},
		Metrics: metrics.ReconciliationMetrics{
			ScriptsRegistered: 1,
			FilesWritten:      1,
			Duration:          time.Second,
		},
	}

	var out bytes.Buffer
	testCmd := &cobra.Command{}
	testCmd.SetOut(&out)

	err := printReport(testCmd, report)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "status: blocked: config_file missing")
	assert.Contains(t, out.String(), "scripts=1 files=1 degraded=0 duration=1s")
	assert.Contains(t, out.String(), "job_name: script-exporter")
}
