// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcfscore/mcfscore/solution"
)

type markers struct {
	ok, fail, warn func(...any) string
}

func newMarkers(colored bool) markers {
	mk := func(attrs ...color.Attribute) func(...any) string {
		c := color.New(attrs...)
		if !colored {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return markers{
		ok:   mk(color.FgGreen),
		fail: mk(color.FgRed, color.Bold),
		warn: mk(color.FgYellow),
	}
}

// Summary returns the one-line form of s.
func Summary(s *solution.Solution) string { return s.String() }

// Detailed writes the full report of s to w, coloring status markers
// unless color output is disabled globally.
func Detailed(w io.Writer, name string, s *solution.Solution, f Findings) error {
	return detailed(w, name, s, f, newMarkers(true))
}

// DetailedPlain is Detailed without color codes, for embedding the report
// in other documents.
func DetailedPlain(w io.Writer, name string, s *solution.Solution, f Findings) error {
	return detailed(w, name, s, f, newMarkers(false))
}

func detailed(w io.Writer, name string, s *solution.Solution, f Findings, mk markers) error {
	p := message.NewPrinter(language.English)
	m := s.Metrics()

	costPerM3 := "n/a"
	if !math.IsInf(m.CostPerCubicMeter, 0) {
		costPerM3 = p.Sprintf("%.2f", m.CostPerCubicMeter)
	}

	lines := []string{
		fmt.Sprintf("Detailed report: %s", name),
		p.Sprintf("• Total cost: %.2f", m.TotalCost),
		p.Sprintf("• Transport cost: %.2f", m.TransportCost),
		p.Sprintf("• Transfer cost: %.2f", m.TransferCost),
		p.Sprintf("• Vehicles: %d", m.TotalVehicles),
		fmt.Sprintf("• Vehicle utilization: %.1f%%", m.VehicleUtilization),
		fmt.Sprintf("• Legs loaded below %.0f%%: %d", m.UnderloadThreshold*100, m.UnderloadedLegs),
		fmt.Sprintf("• Cost per m³: %s", costPerM3),
		p.Sprintf("• Total volume: %.2f m³", m.TotalVolume),
		p.Sprintf("• Total distance: %.2f km", m.TotalDistance/1000),
		fmt.Sprintf("• Avg delivery time per request: %s", FormatDuration(m.AvgDeliveryTimePerRequest)),
		fmt.Sprintf("• Avg delivery time per m³: %s", FormatDuration(m.AvgDeliveryTimePerVolume)),
		p.Sprintf("• Paths: %d", m.FlowCount),
		fmt.Sprintf("• Paths per request: %.2f", m.PathsPerRequest),
		fmt.Sprintf("• Vehicle capacity: %g m³", m.VehicleCapacity),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	sections := []section{
		{
			ok:     "All legs resolved against the reference network.",
			fail:   "Legs omitted (edge missing from reference network):",
			mark:   mk.warn,
			symbol: "⚠️",
			rows:   stringify(f.Omissions),
		},
		{
			ok:     "All requests covered.",
			fail:   "Requests not fully covered:",
			mark:   mk.fail,
			symbol: "❌",
			rows:   stringify(f.Coverage),
		},
		{
			fail:   "Requests absent from the request table:",
			mark:   mk.warn,
			symbol: "⚠️",
			rows:   stringify(f.Unexpected),
		},
		{
			fail:   "Requests with no route in the reference network:",
			mark:   mk.warn,
			symbol: "⚠️",
			rows:   stringify(f.Unreachable),
		},
		{
			fail:   "Solution rows skipped:",
			mark:   mk.warn,
			symbol: "⚠️",
			rows:   stringify(f.RowIssues),
		},
		{
			ok:     "Transfer capacity respected.",
			fail:   "Transfer capacity violations:",
			mark:   mk.fail,
			symbol: "❌",
			rows:   stringify(f.Capacity),
		},
	}
	if f.TransfersUnaccounted {
		if _, err := fmt.Fprintf(w, "%s %s\n", mk.warn("⚠️"), "No office table loaded: transfer costs and capacities not accounted."); err != nil {
			return err
		}
	}
	for _, sec := range sections {
		if err := sec.write(w, mk.ok); err != nil {
			return err
		}
	}
	return nil
}

type section struct {
	ok, fail string
	mark     func(...any) string
	symbol   string
	rows     []string
}

// write prints the ok line when there are no rows (skipped if ok is empty),
// else the fail header and one indented line per row.
func (s section) write(w io.Writer, okMark func(...any) string) error {
	if len(s.rows) == 0 {
		if s.ok == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s %s\n", okMark("✅"), s.ok)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", s.mark(s.symbol), s.fail); err != nil {
		return err
	}
	for _, r := range s.rows {
		if _, err := fmt.Fprintf(w, "   %s\n", r); err != nil {
			return err
		}
	}
	return nil
}

func stringify[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

// FormatDuration renders seconds as days, hours and minutes ("1d 2h 3m").
// Zero units are left out; minutes are shown when nothing else is.
// Negative or NaN input renders as "0m".
func FormatDuration(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1):
		return "n/a"
	case !(seconds > 0):
		return "0m"
	}
	total := int64(seconds)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}
