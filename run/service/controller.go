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

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Controller drives systemd for a single unit. Restart is idempotent in
// the restart-if-running, start-if-not sense.
type Controller interface {
	DaemonReload(ctx context.Context) error
	Restart(ctx context.Context, unit string) error
	Stop(ctx context.Context, unit string) error
	Enable(ctx context.Context, unit string) error
	IsActive(ctx context.Context, unit string) (bool, error)
}

type dbusController struct {
}

func NewDbusController() Controller {
	return &dbusController{}
}

func (c *dbusController) connect(ctx context.Context) (*dbus.Conn, error) {
	conn, err := dbus.NewWithContext(ctx)
	if err != nil {
		return nil, errors.Errorf("connecting to systemd failed: %v", err)
	}
	return conn, nil
}

func (c *dbusController) DaemonReload(ctx context.Context) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.ReloadContext(ctx)
}

func (c *dbusController) Restart(ctx context.Context, unit string) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	results := make(chan string, 1)
	if _, err := conn.ReloadOrRestartUnitContext(ctx, unit, "replace", results); err != nil {
		return errors.Errorf("restarting %s failed: %v", unit, err)
	}
	return waitJob(ctx, unit, results)
}

func (c *dbusController) Stop(ctx context.Context, unit string) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	results := make(chan string, 1)
	if _, err := conn.StopUnitContext(ctx, unit, "replace", results); err != nil {
		return errors.Errorf("stopping %s failed: %v", unit, err)
	}
	return waitJob(ctx, unit, results)
}

func (c *dbusController) Enable(ctx context.Context, unit string) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, _, err := conn.EnableUnitFilesContext(ctx, []string{unit}, false, true); err != nil {
		return errors.Errorf("enabling %s failed: %v", unit, err)
	}
	return nil
}

func (c *dbusController) IsActive(ctx context.Context, unit string) (bool, error) {
	conn, err := c.connect(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	statuses, err := conn.ListUnitsByNamesContext(ctx, []string{unit})
	if err != nil {
		return false, errors.Errorf("querying %s failed: %v", unit, err)
	}
	for _, unitStatus := range statuses {
		if unitStatus.Name == unit {
			return unitStatus.ActiveState == "active", nil
		}
	}
	return false, nil
}

func waitJob(ctx context.Context, unit string, results <-chan string) error {
	select {
	case result := <-results:
		if result != "done" {
			return errors.Errorf("systemd job for %s finished with result %s", unit, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dryRunController logs what would happen and changes nothing.
type dryRunController struct {
	logger *zap.SugaredLogger
}

func NewDryRunController(logger *zap.SugaredLogger) Controller {
	return &dryRunController{logger: logger}
}

func (c *dryRunController) DaemonReload(ctx context.Context) error {
	c.logger.Infof("dry run: systemd daemon reload")
	return nil
}

func (c *dryRunController) Restart(ctx context.Context, unit string) error {
	c.logger.Infof("dry run: restart %s", unit)
	return nil
}

func (c *dryRunController) Stop(ctx context.Context, unit string) error {
	c.logger.Infof("dry run: stop %s", unit)
	return nil
}

func (c *dryRunController) Enable(ctx context.Context, unit string) error {
	c.logger.Infof("dry run: enable %s", unit)
	return nil
}

func (c *dryRunController) IsActive(ctx context.Context, unit string) (bool, error) {
	return false, nil
}
