// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// stringSetting returns the flag value if it was set on the command line,
// else the environment variable if non-empty, else the flag default.
func stringSetting(cmd *cobra.Command, flag, env string) string {
	v, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) {
		return v
	}
	if e := os.Getenv(env); e != "" {
		return e
	}
	return v
}

// floatSetting is stringSetting for float flags.
func floatSetting(cmd *cobra.Command, flag, env string) (float64, error) {
	v, _ := cmd.Flags().GetFloat64(flag)
	if cmd.Flags().Changed(flag) {
		return v, nil
	}
	e := os.Getenv(env)
	if e == "" {
		return v, nil
	}
	f, err := strconv.ParseFloat(e, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", env, e, err)
	}
	return f, nil
}

// requireSetting fails when a setting resolved to empty.
func requireSetting(v, flag, env string) error {
	if v == "" {
		return fmt.Errorf("--%s is required (or set %s)", flag, env)
	}
	return nil
}
