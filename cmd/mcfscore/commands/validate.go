// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcfscore/mcfscore/dataset"
	"github.com/mcfscore/mcfscore/report"
	"github.com/mcfscore/mcfscore/solution"
)

// run is one loaded and analyzed solution.
type run struct {
	sol      *solution.Solution
	findings report.Findings
}

// runFlags are shared by the commands that analyze a solution file.
type runFlags struct {
	solutionFile string
	parallelism  int
}

func addRunFlags(cmd *cobra.Command, rf *runFlags) {
	cmd.Flags().StringP("input-dir", "i", "", "Directory with reqs.csv, distance_matrix.csv and offices.csv (env "+EnvInputDir+")")
	cmd.Flags().StringVarP(&rf.solutionFile, "solution-file", "s", "", "Solution file: structured .json or flat-path .csv")
	cmd.Flags().Float64("vehicle-capacity", solution.DefaultVehicleCapacity, "Vehicle capacity in m³ (env "+EnvVehicleCapacity+")")
	cmd.Flags().IntVar(&rf.parallelism, "parallelism", 1, "Number of concurrent aggregation chunks")
	_ = cmd.MarkFlagRequired("solution-file")
}

// analyze loads the reference tables and the solution file and builds the
// solution with extra options appended.
func (g *globals) analyze(cmd *cobra.Command, rf *runFlags, extra ...solution.Option) (*run, error) {
	dir := stringSetting(cmd, "input-dir", EnvInputDir)
	if err := requireSetting(dir, "input-dir", EnvInputDir); err != nil {
		return nil, err
	}
	capacity, err := floatSetting(cmd, "vehicle-capacity", EnvVehicleCapacity)
	if err != nil {
		return nil, err
	}

	ref, err := dataset.LoadReference(dir, g.logger)
	if err != nil {
		return nil, err
	}

	set, issues, err := dataset.LoadSolution(rf.solutionFile)
	if err != nil {
		return nil, fmt.Errorf("load solution %s: %w", rf.solutionFile, err)
	}
	for _, is := range issues {
		g.logger.Error("solution row skipped", slog.Int("row", is.Row), slog.Any("error", is.Err))
	}

	opts := append([]solution.Option{
		solution.WithVehicleCapacity(capacity),
		solution.WithParallelism(rf.parallelism),
		solution.WithLogger(g.logger),
	}, extra...)
	sol, err := solution.Build(set, ref.Network, opts...)
	if err != nil {
		return nil, err
	}

	findings := report.Collect(sol, ref.Requests, issues)
	findings.TransfersUnaccounted = !ref.HasOffices
	if findings.Unreachable, err = ref.UnreachableRequests(cmd.Context()); err != nil {
		return nil, err
	}
	return &run{sol: sol, findings: findings}, nil
}

func newValidateCommand(g *globals) *cobra.Command {
	var (
		rf        runFlags
		name      string
		threshold float64
		strict    bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Score a solution and print the detailed report",
		Long: `The validate command loads the reference tables and a solution, checks
request coverage and transfer capacity, and prints the KPI report.

Omitted legs and findings are reported but do not fail the command unless
--strict is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.analyze(cmd, &rf, solution.WithUnderloadThreshold(threshold))
			if err != nil {
				return err
			}

			if len(r.findings.Coverage) == 0 {
				g.logger.Info("all requests covered")
			}
			for _, f := range r.findings.Coverage {
				g.logger.Warn("request not fully covered",
					slog.String("request", f.Request.String()),
					slog.Float64("expected", f.Expected),
					slog.Float64("actual", f.Actual))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validation result:")
			if err := report.Detailed(out, name, r.sol, r.findings); err != nil {
				return err
			}

			if n := r.findings.Count(); strict && n > 0 {
				return fmt.Errorf("strict mode: %d finding(s)", n)
			}
			return nil
		},
	}
	addRunFlags(cmd, &rf)
	cmd.Flags().StringVar(&name, "name", "", "Solution name shown in the report")
	cmd.Flags().Float64Var(&threshold, "underload-threshold", solution.DefaultUnderloadThreshold, "Leg load ratio below which a leg counts as underloaded")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when legs were omitted or any finding exists")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
