package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/inmemstore"
	"github.com/suparena/inmemstore/scenario"
)

// configEnv names the variable that supplies the default --config path.
const configEnv = "INMEMSTORE_CONFIG"

type runOptions struct {
	configPath   string
	resetOnClear bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Run scenario files against fresh or shared stores",
		Long: `Run executes each scenario file in order and checks its expectations.

Scenarios that name a database share one store for the whole invocation, so
running the same file twice shows whether key numbering survives a clear.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("config") {
				opts.configPath = os.Getenv(configEnv)
			}
			return runScenarios(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "store config YAML whose keys override each scenario's config (default $"+configEnv+")")
	cmd.Flags().BoolVar(&opts.resetOnClear, "reset-on-clear", false, "force resetGeneratorsOnClear for every store")

	return cmd
}

func runScenarios(cmd *cobra.Command, rootOpts *RootOptions, opts *runOptions, paths []string) error {
	logger, err := rootOpts.logger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	var storeOpts []inmemstore.Option
	if opts.configPath != "" {
		overrides, err := inmemstore.LoadConfigOverridesFile(opts.configPath)
		if err != nil {
			return err
		}
		storeOpts = append(storeOpts, inmemstore.WithConfigOverrides(overrides))
	}
	if cmd.Flags().Changed("reset-on-clear") {
		storeOpts = append(storeOpts, inmemstore.WithResetGeneratorsOnClear(opts.resetOnClear))
	}

	runner := scenario.NewRunner(logger, storeOpts...)
	reports := make([]*scenario.Report, 0, len(paths))
	failed := 0
	for _, path := range paths {
		sc, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		report := runner.Run(sc)
		if !report.Passed() {
			failed++
		}
		reports = append(reports, report)
	}

	if err := writeReports(cmd.OutOrStdout(), rootOpts.Format, reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenario(s) failed", failed, len(reports))
	}
	return nil
}

func writeReports(w io.Writer, format string, reports []*scenario.Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, report := range reports {
		status := "PASS"
		if !report.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s (database %s)\n", status, report.Scenario, report.Database)
		for _, step := range report.Steps {
			for _, failure := range step.Failures {
				fmt.Fprintf(w, "    step %d %s: %s\n", step.Index, step.Op, failure)
			}
		}
	}
	return nil
}
