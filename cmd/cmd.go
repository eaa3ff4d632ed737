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

// Package cmd is the lifecycle dispatch table: one subcommand per event
// kind, invoked by whatever process supervision harness runs the
// operator. The core packages never see cobra types.
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sxptool/sxp/app"
	"github.com/sxptool/sxp/conf"
	"github.com/sxptool/sxp/run"
	"github.com/sxptool/sxp/run/metrics"
	"github.com/sxptool/sxp/run/scrape"
	"github.com/sxptool/sxp/run/service"
)

var debug bool

var eventShorts = map[run.Event]string{
	run.EventInstall: "Prepare the host and obtain the exporter binary",
	run.EventStart:   "Start the exporter service",
	run.EventStop:    "Stop the exporter and remove its state",
	run.EventApply:   "Reconcile the configured scripts and probe config",
	run.EventStatus:  "Report the derived unit status and scrape jobs",
}

func Run() {
	var rootCmd = &cobra.Command{Use: "sxp"}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false,
		"Provide a more detailed output by logging additional debugging information")

	for _, event := range []run.Event{run.EventInstall, run.EventStart, run.EventStop, run.EventApply, run.EventStatus} {
		rootCmd.AddCommand(newEventCommand(event))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEventCommand(event run.Event) *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   string(event),
		Short: eventShorts[event],
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			expectations, _ := cmd.Flags().GetStringArray("expect")
			return handleEvent(cmd, event, configPath, dryRun, expectations)
		},
	}
	eventCmd.Flags().StringP("config", "c", "",
		"Path to the operator configuration document (falls back to the SXP_CONFIG environment variable)")
	eventCmd.Flags().Bool("dry-run", false, "Activate dry-run mode")
	eventCmd.Flags().StringArray("expect", nil,
		"Expectation over the reconciliation metrics (\"<metric> <operator> <value>\"); the command fails when it is not met")
	return eventCmd
}

func handleEvent(cmd *cobra.Command, event run.Event, configPath string, dryRun bool, expectations []string) error {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Sprintf("Cannot initialize zap logger: %v", err))
	}
	defer logger.Sync()
	sugaredLogger := logger.Sugar()

	fnd := createFoundation(sugaredLogger, dryRun)

	if configPath == "" {
		var found bool
		if configPath, found = fnd.LookupEnvVar("SXP_CONFIG"); !found {
			return errors.Errorf("no configuration document: pass --config or set SXP_CONFIG")
		}
	}

	config, err := conf.CreateConfigMaker(fnd).Make(configPath)
	if err != nil {
		return err
	}

	var controller service.Controller
	if dryRun {
		controller = service.NewDryRunController(sugaredLogger)
	} else {
		controller = service.NewDbusController()
	}

	report, err := run.CreateReconciler(fnd, controller).Handle(cmd.Context(), event, config)
	if err != nil {
		return err
	}
	if err := printReport(cmd, report); err != nil {
		return err
	}
	return assertExpectations(report.Metrics, expectations)
}

// assertExpectations fails the command when any configured expectation
// over the reconciliation metrics does not hold.
func assertExpectations(reconciliationMetrics metrics.ReconciliationMetrics, expressions []string) error {
	for _, expr := range expressions {
		expectation, err := metrics.ParseExpectation(expr)
		if err != nil {
			return err
		}
		met, err := expectation.Assert(reconciliationMetrics)
		if err != nil {
			return err
		}
		if !met {
			return errors.Errorf("expectation %q not met: %s", expr, reconciliationMetrics)
		}
	}
	return nil
}

func createFoundation(logger *zap.SugaredLogger, dryRun bool) app.Foundation {
	if dryRun {
		// Overlay so reads see the host but writes stay in memory.
		fs := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
		return app.CreateFoundation(logger, fs, app.NewDryRunHttpClient(), true)
	}
	return app.CreateFoundation(logger, afero.NewOsFs(), app.NewRealHttpClient(), false)
}

func printReport(cmd *cobra.Command, report *run.Report) error {
	fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", report.Status)
	fmt.Fprintf(cmd.OutOrStdout(), "reconciliation: %s\n", report.Metrics)

	encoded, err := scrape.Encode(report.Jobs)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "scrape jobs:\n%s", encoded)
	return nil
}
