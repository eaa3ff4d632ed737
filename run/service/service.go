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

// Package service owns the exporter's systemd unit: rendering the unit
// file and driving the unit over the systemd dbus API.
package service

import (
	"context"

	"github.com/spf13/afero"

	"github.com/sxptool/sxp/app"
)

// UnitName is the systemd unit this operator manages.
const UnitName = "script-exporter.service"

type Manager interface {
	// WriteUnit renders the unit file and writes it to the unit path.
	WriteUnit(data UnitData) error
	// Apply writes the unit file and puts the unit in shape: daemon
	// reload, restart, enable so it survives reboots.
	Apply(ctx context.Context, data UnitData) error
	Restart(ctx context.Context) error
	// StopIfRunning stops the unit when it is active and is a no-op
	// otherwise.
	StopIfRunning(ctx context.Context) error
}

type nativeManager struct {
	fnd        app.Foundation
	controller Controller
	unitPath   string
}

func CreateManager(fnd app.Foundation, controller Controller, unitPath string) Manager {
	return &nativeManager{
		fnd:        fnd,
		controller: controller,
		unitPath:   unitPath,
	}
}

func (m *nativeManager) WriteUnit(data UnitData) error {
	unit, err := renderUnit(data)
	if err != nil {
		return err
	}
	return afero.WriteFile(m.fnd.Fs(), m.unitPath, []byte(unit), 0o644)
}

func (m *nativeManager) Apply(ctx context.Context, data UnitData) error {
	if err := m.WriteUnit(data); err != nil {
		return err
	}
	if err := m.controller.DaemonReload(ctx); err != nil {
		return err
	}
	if err := m.controller.Restart(ctx, UnitName); err != nil {
		return err
	}
	// enable --now semantics so the unit survives reboots
	return m.controller.Enable(ctx, UnitName)
}

func (m *nativeManager) Restart(ctx context.Context) error {
	return m.controller.Restart(ctx, UnitName)
}

func (m *nativeManager) StopIfRunning(ctx context.Context) error {
	active, err := m.controller.IsActive(ctx, UnitName)
	if err != nil {
		return err
	}
	if !active {
		return nil
	}
	return m.controller.Stop(ctx, UnitName)
}
