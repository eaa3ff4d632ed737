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

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUnit(t *testing.T) {
	unit, err := renderUnit(UnitData{
		BinaryPath: "/usr/local/bin/script_exporter",
		ConfigPath: "/etc/script-exporter/config.yaml",
	})

	require.NoError(t, err)
	assert.Contains(t, unit, "Description=Prometheus Script exporter")
	assert.Contains(t, unit, "After=network-online.target")
	assert.Contains(t, unit,
		"ExecStart=/usr/local/bin/script_exporter --config.file=/etc/script-exporter/config.yaml")
	assert.Contains(t, unit, "Restart=always")
	assert.Contains(t, unit, "WantedBy=multi-user.target")
}

func TestWaitJob(t *testing.T) {
	t.Run("done result succeeds", func(t *testing.T) {
		results := make(chan string, 1)
		results <- "done"

		assert.NoError(t, waitJob(context.Background(), UnitName, results))
	})

	t.Run("failed result errors", func(t *testing.T) {
		results := make(chan string, 1)
		results <- "failed"

		err := waitJob(context.Background(), UnitName, results)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed")
	})

	t.Run("cancelled context gives up", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, waitJob(ctx, UnitName, make(chan string)), context.Canceled)
	})
}
