// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcfscore/mcfscore/dataset"
	"github.com/mcfscore/mcfscore/report"
)

func newExportCommand(g *globals) *cobra.Command {
	var (
		rf     runFlags
		outDir string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the analyzed solution as CSV and/or JSON files",
		Long: `The export command analyzes a solution and writes paths.csv,
transport_legs.csv and summary.csv (--format csv), solution.json
(--format json), or all of them (--format all).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var writers []func(string) error
			switch format {
			case "csv", "json", "all":
			default:
				return fmt.Errorf("invalid --format %q: want csv, json or all", format)
			}

			r, err := g.analyze(cmd, &rf)
			if err != nil {
				return err
			}
			if format == "csv" || format == "all" {
				writers = append(writers, func(dir string) error { return dataset.WriteCSV(dir, r.sol) })
			}
			if format == "json" || format == "all" {
				writers = append(writers, func(dir string) error { return dataset.WriteJSON(dir, r.sol) })
			}
			for _, write := range writers {
				if err := write(outDir); err != nil {
					return err
				}
			}

			g.logger.Info("solution exported", slog.String("dir", outDir), slog.String("format", format))
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(r.sol))
			return nil
		},
	}
	addRunFlags(cmd, &rf)
	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "Directory to write the exported files to")
	cmd.Flags().StringVar(&format, "format", "all", "Export format: csv, json or all")
	_ = cmd.MarkFlagRequired("output-dir")
	return cmd
}
