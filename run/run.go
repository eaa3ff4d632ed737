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

// Package run reconciles one lifecycle event at a time: it materializes
// configuration onto the host, keeps the exporter binary and its systemd
// unit in shape, and derives the unit status. The host supervisor
// serializes events; nothing here runs concurrently.
package run

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/sxptool/sxp/app"
	"github.com/sxptool/sxp/conf/types"
	"github.com/sxptool/sxp/run/materializer"
	"github.com/sxptool/sxp/run/metrics"
	"github.com/sxptool/sxp/run/provisioner"
	"github.com/sxptool/sxp/run/scrape"
	"github.com/sxptool/sxp/run/service"
	"github.com/sxptool/sxp/run/status"
)

// Event is a lifecycle event kind dispatched by the host supervisor.
type Event string

const (
	EventInstall Event = "install"
	EventStart   Event = "start"
	EventStop    Event = "stop"
	EventApply   Event = "apply"
	EventStatus  Event = "status"
)

// Report is what an event handler hands back to the caller: the derived
// unit status, the scrape jobs for the monitoring agent and what the
// reconciliation did.
type Report struct {
	Status  status.Status
	Jobs    []scrape.Job
	Metrics metrics.ReconciliationMetrics
}

type Reconciler interface {
	Handle(ctx context.Context, event Event, config *types.Config) (*Report, error)
}

type provisionerFactory func(fnd app.Foundation, binary types.Binary, binaryPath string) provisioner.Provisioner

type managerFactory func(fnd app.Foundation, controller service.Controller, unitPath string) service.Manager

type nativeReconciler struct {
	fnd             app.Foundation
	materializer    materializer.Materializer
	controller      service.Controller
	makeProvisioner provisionerFactory
	makeManager     managerFactory
}

func CreateReconciler(fnd app.Foundation, controller service.Controller) Reconciler {
	return &nativeReconciler{
		fnd:             fnd,
		materializer:    materializer.CreateMaterializer(fnd),
		controller:      controller,
		makeProvisioner: provisioner.CreateProvisioner,
		makeManager:     service.CreateManager,
	}
}

func (r *nativeReconciler) Handle(ctx context.Context, event Event, config *types.Config) (*Report, error) {
	switch event {
	case EventInstall:
		return r.install(ctx, config)
	case EventStart:
		return r.start(ctx, config)
	case EventStop:
		return r.stop(ctx, config)
	case EventApply:
		return r.apply(ctx, config)
	case EventStatus:
		return r.report(config, metrics.ReconciliationMetrics{}, nil)
	default:
		return nil, errors.Errorf("unknown event %s", event)
	}
}

// install prepares the host: scripts directory, an empty probe config
// placeholder and the exporter binary. A failed binary fetch is logged
// and does not fail the installation.
func (r *nativeReconciler) install(ctx context.Context, config *types.Config) (*Report, error) {
	fs := r.fnd.Fs()
	logger := r.fnd.Logger()
	paths := config.Paths

	if err := fs.MkdirAll(paths.ScriptsDir, 0o755); err != nil {
		return nil, err
	}

	exists, err := afero.Exists(fs, paths.ProbeConfig)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Debugf("config file already exists; skipping its initialization")
	} else if err := afero.WriteFile(fs, paths.ProbeConfig, nil, 0o644); err != nil {
		return nil, err
	}

	prov := r.makeProvisioner(r.fnd, config.Binary, paths.Binary)
	if err := prov.Ensure(ctx); err != nil {
		var fetchErr *provisioner.FetchError
		if !errors.As(err, &fetchErr) {
			return nil, err
		}
		logger.Warnf("exporter binary couldn't be downloaded - %v", fetchErr)
	}

	return r.report(config, metrics.ReconciliationMetrics{}, nil)
}

func (r *nativeReconciler) start(ctx context.Context, config *types.Config) (*Report, error) {
	manager := r.makeManager(r.fnd, r.controller, config.Paths.Unit)
	if err := manager.Restart(ctx); err != nil {
		return nil, err
	}
	return r.report(config, metrics.ReconciliationMetrics{}, nil)
}

// stop tears the exporter down: the unit is stopped when running and the
// materialized state is removed. Paths that are already gone only get a
// warning.
func (r *nativeReconciler) stop(ctx context.Context, config *types.Config) (*Report, error) {
	fs := r.fnd.Fs()
	logger := r.fnd.Logger()
	paths := config.Paths

	manager := r.makeManager(r.fnd, r.controller, paths.Unit)
	if err := manager.StopIfRunning(ctx); err != nil {
		return nil, err
	}

	for _, path := range []string{paths.ExporterDir, paths.Binary, paths.SingleScript} {
		if err := fs.RemoveAll(path); err != nil {
			logger.Warnf("'%s' could not be removed - %v", path, err)
		}
	}

	return r.report(config, metrics.ReconciliationMetrics{}, nil)
}

// apply is the config-changed reconciliation: materialize scripts and
// probe config, persist them, regenerate the unit and restart the
// exporter. A malformed archive degrades the script step only.
func (r *nativeReconciler) apply(ctx context.Context, config *types.Config) (*Report, error) {
	fs := r.fnd.Fs()
	paths := config.Paths
	started := time.Now()

	source := materializer.Source{
		Inline:  config.ScriptFile,
		Archive: config.ScriptsArchive,
	}
	layout := materializer.Layout{
		ScriptsDir:   paths.ScriptsDir,
		SingleScript: paths.SingleScript,
	}
	result, err := r.materializer.Materialize(source, config.ConfigFile, layout)
	if err != nil {
		return nil, err
	}

	manager := r.makeManager(r.fnd, r.controller, paths.Unit)
	if result.Config != "" {
		if err := afero.WriteFile(fs, paths.ProbeConfig, []byte(result.Config), 0o644); err != nil {
			return nil, err
		}
		unitData := service.UnitData{
			BinaryPath: paths.Binary,
			ConfigPath: paths.ProbeConfig,
		}
		if err := manager.Apply(ctx, unitData); err != nil {
			return nil, err
		}
	}
	if err := manager.Restart(ctx); err != nil {
		return nil, err
	}

	reconciliationMetrics := metrics.ReconciliationMetrics{
		ScriptsRegistered: len(result.Registry),
		FilesWritten:      len(result.Written),
		Duration:          time.Since(started),
	}
	if result.Degraded() {
		reconciliationMetrics.DegradedSteps = 1
	}

	return r.report(config, reconciliationMetrics, result.ArchiveErr)
}

// report derives the status and the scrape job list. A degraded archive
// surfaces as an extra blocking reason on top of the presence-derived
// ones.
func (r *nativeReconciler) report(
	config *types.Config,
	reconciliationMetrics metrics.ReconciliationMetrics,
	archiveErr *materializer.ArchiveError,
) (*Report, error) {
	derived := status.Evaluate(status.Inputs{
		ConfigPresent:     config.ConfigFile != "",
		ScriptPresent:     config.ScriptFile != "" || config.ScriptsArchive != "",
		PrometheusPresent: config.PrometheusConfigFile != "",
	})
	if archiveErr != nil {
		derived = status.Status{
			State:   status.StateBlocked,
			Reasons: append(derived.Reasons, fmt.Sprintf("scripts_archive invalid: %v", archiveErr)),
		}
	}

	jobs, err := scrape.Jobs(config.PrometheusConfigFile)
	if err != nil {
		return nil, err
	}

	return &Report{
		Status:  derived,
		Jobs:    jobs,
		Metrics: reconciliationMetrics,
	}, nil
}
