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

package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appMocks "github.com/sxptool/sxp/mocks/generated/app"
	serviceMocks "github.com/sxptool/sxp/mocks/generated/run/service"
	"github.com/sxptool/sxp/run/service"
)

const unitPath = "/etc/systemd/system/script-exporter.service"

func testManager(t *testing.T, controller service.Controller) (service.Manager, afero.Fs) {
	t.Helper()

	mockFs := afero.NewMemMapFs()
	mockFnd := &appMocks.MockFoundation{}
	mockFnd.On("Fs").Return(mockFs)

	return service.CreateManager(mockFnd, controller, unitPath), mockFs
}

func TestNativeManager_WriteUnit(t *testing.T) {
	manager, mockFs := testManager(t, nil)

	err := manager.WriteUnit(service.UnitData{
		BinaryPath: "/usr/local/bin/script_exporter",
		ConfigPath: "/etc/script-exporter/config.yaml",
	})

	require.NoError(t, err)
	data, err := afero.ReadFile(mockFs, unitPath)
	require.NoError(t, err)
	assert.Contains(t, string(data),
		"ExecStart=/usr/local/bin/script_exporter --config.file=/etc/script-exporter/config.yaml")
}

func TestNativeManager_Apply(t *testing.T) {
	ctx := context.Background()
	data := service.UnitData{
		BinaryPath: "/usr/local/bin/script_exporter",
		ConfigPath: "/etc/script-exporter/config.yaml",
	}

	tests := []struct {
		name         string
		setupMocks   func(*serviceMocks.MockController)
		expectError  bool
		errorMessage string
	}{
		{
			name: "unit is written, reloaded, restarted and enabled",
			setupMocks: func(controller *serviceMocks.MockController) {
				controller.On("DaemonReload", ctx).Return(nil)
				controller.On("Restart", ctx, service.UnitName).Return(nil)
				controller.On("Enable", ctx, service.UnitName).Return(nil)
			},
		},
		{
			name: "daemon reload failure stops the sequence",
			setupMocks: func(controller *serviceMocks.MockController) {
				controller.On("DaemonReload", ctx).Return(errors.New("dbus gone"))
			},
			expectError:  true,
			errorMessage: "dbus gone",
		},
		{
			name: "restart failure stops the sequence",
			setupMocks: func(controller *serviceMocks.MockController) {
				controller.On("DaemonReload", ctx).Return(nil)
				controller.On("Restart", ctx, service.UnitName).Return(errors.New("unit not found"))
			},
			expectError:  true,
			errorMessage: "unit not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := serviceMocks.NewMockController(t)
			tt.setupMocks(controller)
			manager, mockFs := testManager(t, controller)

			err := manager.Apply(ctx, data)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMessage)
				return
			}
			require.NoError(t, err)

			exists, err := afero.Exists(mockFs, unitPath)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestNativeManager_StopIfRunning(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(*serviceMocks.MockController)
	}{
		{
			name: "active unit is stopped",
			setupMocks: func(controller *serviceMocks.MockController) {
				controller.On("IsActive", ctx, service.UnitName).Return(true, nil)
				controller.On("Stop", ctx, service.UnitName).Return(nil)
			},
		},
		{
			name: "inactive unit is left alone",
			setupMocks: func(controller *serviceMocks.MockController) {
				controller.On("IsActive", ctx, service.UnitName).Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := serviceMocks.NewMockController(t)
			tt.setupMocks(controller)
			manager, _ := testManager(t, controller)

			assert.NoError(t, manager.StopIfRunning(ctx))
		})
	}
}

func TestDryRunController(t *testing.T) {
	controller := service.NewDryRunController(zap.NewNop().Sugar())
	ctx := context.Background()

	assert.NoError(t, controller.DaemonReload(ctx))
	assert.NoError(t, controller.Restart(ctx, service.UnitName))
	assert.NoError(t, controller.Stop(ctx, service.UnitName))
	assert.NoError(t, controller.Enable(ctx, service.UnitName))

	active, err := controller.IsActive(ctx, service.UnitName)
	assert.NoError(t, err)
	assert.False(t, active)
}
