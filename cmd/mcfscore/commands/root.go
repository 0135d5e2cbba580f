// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvInputDir        = "MCF_INPUT_DIR"
	EnvVehicleCapacity = "MCF_VEHICLE_CAPACITY"
	EnvAddr            = "MCF_ADDR"
)

// globals holds the persistent flags and the logger built from them.
type globals struct {
	logLevel string
	envFile  string
	noColor  bool
	logger   *slog.Logger
}

// NewRootCommand builds the mcfscore command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "mcfscore",
		Short: "Score and validate multi-commodity logistics flow solutions",
		Long: `mcfscore decomposes a routing solution into transport legs, prices them
by vehicle count, charges transfers at transit offices, checks request
coverage and transfer capacity, and reports the network KPIs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&g.envFile, "env-file", ".env", "Environment file loaded before reading MCF_* variables")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored report markers")

	root.AddCommand(
		newValidateCommand(g),
		newExportCommand(g),
		newServeCommand(g),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the env file and builds the stderr logger. A missing default
// env file is ignored; a missing explicit one is an error.
func (g *globals) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(g.envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load env file %s: %w", g.envFile, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(g.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q", g.logLevel)
	}
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if g.noColor {
		color.NoColor = true
	}
	return nil
}
