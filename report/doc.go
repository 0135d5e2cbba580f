// SPDX-License-Identifier: MIT

// Package report renders an analyzed solution as text.
//
// Summary is the one-line form. Detailed writes the multi-line report: the
// KPIs with grouped thousands, durations as "1d 2h 3m", then every finding
// collected for the run. Status markers are colored when the output is a
// terminal (github.com/fatih/color decides; set color.NoColor to force
// plain output).
package report
