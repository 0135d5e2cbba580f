// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/mcfscore/mcfscore/solution"
)

// Export file names.
const (
	LegsFile     = "transport_legs.csv"
	SummaryFile  = "summary.csv"
	SolutionFile = "solution.json"
)

// MetricsDoc is the JSON form of solution.Metrics. CostPerCubicMeter is
// null when the solution carries no volume.
type MetricsDoc struct {
	FlowCount                 int      `json:"flow_count"`
	RequestCount              int      `json:"request_count"`
	LegCount                  int      `json:"leg_count"`
	VehicleCapacity           float64  `json:"vehicle_capacity"`
	UnderloadThreshold        float64  `json:"underload_threshold"`
	TotalVolume               float64  `json:"total_volume"`
	TotalVehicles             int      `json:"total_vehicles"`
	TotalDistance             float64  `json:"total_distance"`
	TotalTime                 float64  `json:"total_time"`
	TransportCost             float64  `json:"transport_cost"`
	TransferCost              float64  `json:"transfer_cost"`
	TotalCost                 float64  `json:"total_cost"`
	VehicleUtilization        float64  `json:"vehicle_utilization"`
	CostPerCubicMeter         *float64 `json:"cost_per_cubic_meter"`
	AvgDeliveryTimePerRequest float64  `json:"avg_delivery_time"`
	AvgDeliveryTimePerVolume  float64  `json:"avg_delivery_time_per_volume"`
	PathsPerRequest           float64  `json:"paths_per_request"`
	UnderloadedLegs           int      `json:"underloaded_legs"`
}

// NewMetricsDoc converts m for JSON output.
func NewMetricsDoc(m solution.Metrics) MetricsDoc {
	d := MetricsDoc{
		FlowCount:                 m.FlowCount,
		RequestCount:              m.RequestCount,
		LegCount:                  m.LegCount,
		VehicleCapacity:           m.VehicleCapacity,
		UnderloadThreshold:        m.UnderloadThreshold,
		TotalVolume:               m.TotalVolume,
		TotalVehicles:             m.TotalVehicles,
		TotalDistance:             m.TotalDistance,
		TotalTime:                 m.TotalTime,
		TransportCost:             m.TransportCost,
		TransferCost:              m.TransferCost,
		TotalCost:                 m.TotalCost,
		VehicleUtilization:        m.VehicleUtilization,
		AvgDeliveryTimePerRequest: m.AvgDeliveryTimePerRequest,
		AvgDeliveryTimePerVolume:  m.AvgDeliveryTimePerVolume,
		PathsPerRequest:           m.PathsPerRequest,
		UnderloadedLegs:           m.UnderloadedLegs,
	}
	if !math.IsInf(m.CostPerCubicMeter, 0) && !math.IsNaN(m.CostPerCubicMeter) {
		v := m.CostPerCubicMeter
		d.CostPerCubicMeter = &v
	}
	return d
}

// ContributionDoc is one request's share of a leg.
type ContributionDoc struct {
	Source      string  `json:"src"`
	Destination string  `json:"dst"`
	Volume      float64 `json:"volume"`
}

// LegExport is the JSON form of a priced leg.
type LegExport struct {
	From          string            `json:"from"`
	To            string            `json:"to"`
	Distance      float64           `json:"distance"`
	Time          float64           `json:"time"`
	PricePerKm    float64           `json:"cost_per_km"`
	Volume        float64           `json:"sum_volume"`
	Vehicles      int               `json:"vehicles"`
	Cost          float64           `json:"sum_cost"`
	Contributions []ContributionDoc `json:"reqs"`
}

// NewLegExports converts legs for JSON output, keeping their order.
func NewLegExports(legs []solution.Leg) []LegExport {
	out := make([]LegExport, 0, len(legs))
	for _, l := range legs {
		le := LegExport{
			From:          l.From,
			To:            l.To,
			Distance:      l.Distance,
			Time:          l.Time,
			PricePerKm:    l.PricePerKm,
			Volume:        l.Volume,
			Vehicles:      l.Vehicles,
			Cost:          l.Cost,
			Contributions: make([]ContributionDoc, 0, len(l.Contributions)),
		}
		for _, c := range l.Contributions {
			le.Contributions = append(le.Contributions, ContributionDoc{
				Source:      c.Request.Source,
				Destination: c.Request.Destination,
				Volume:      c.Volume,
			})
		}
		out = append(out, le)
	}
	return out
}

// OmissionDoc is the JSON form of a skipped flow×hop.
type OmissionDoc struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Request string  `json:"request"`
	Volume  float64 `json:"volume"`
	Error   string  `json:"error"`
}

// NewOmissionDocs converts omissions for JSON output.
func NewOmissionDocs(oms []solution.Omission) []OmissionDoc {
	out := make([]OmissionDoc, 0, len(oms))
	for _, o := range oms {
		out = append(out, OmissionDoc{
			From:    o.Hop.From,
			To:      o.Hop.To,
			Request: o.Request.String(),
			Volume:  o.Volume,
			Error:   o.Err.Error(),
		})
	}
	return out
}

// ExportDocument is the content of solution.json. Its flows field is a
// structured Document, so the file loads back with LoadSolution.
type ExportDocument struct {
	Flows         []FlowDoc     `json:"flows"`
	TransportLegs []LegExport   `json:"transport_legs"`
	Omissions     []OmissionDoc `json:"omissions"`
	Metadata      MetricsDoc    `json:"metadata"`
}

// NewExportDocument assembles the JSON export of s.
func NewExportDocument(s *solution.Solution) *ExportDocument {
	return &ExportDocument{
		Flows:         NewDocument(s.Flows()).Flows,
		TransportLegs: NewLegExports(s.Legs()),
		Omissions:     NewOmissionDocs(s.Omissions()),
		Metadata:      NewMetricsDoc(s.Metrics()),
	}
}

// WriteJSON writes solution.json into dir, creating dir if needed.
func WriteJSON(dir string, s *solution.Solution) error {
	return writeFile(dir, SolutionFile, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewExportDocument(s))
	})
}

// WriteCSV writes paths.csv, transport_legs.csv and summary.csv into dir,
// creating dir if needed.
func WriteCSV(dir string, s *solution.Solution) error {
	if err := writeFile(dir, PathsFile, func(w io.Writer) error {
		return WritePaths(w, s.Flows())
	}); err != nil {
		return err
	}
	if err := writeFile(dir, LegsFile, func(w io.Writer) error {
		return writeLegs(w, s.Legs())
	}); err != nil {
		return err
	}
	return writeFile(dir, SummaryFile, func(w io.Writer) error {
		return writeSummary(w, s.Metrics())
	})
}

func writeLegs(w io.Writer, legs []solution.Leg) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"from", "to", "distance", "time", "cost_per_km", "sum_volume", "vehicles", "sum_cost", "reqs_str"})
	for _, l := range legs {
		_ = cw.Write([]string{
			l.From, l.To,
			formatNumber(l.Distance), formatNumber(l.Time), formatNumber(l.PricePerKm),
			formatNumber(l.Volume), strconv.Itoa(l.Vehicles), formatNumber(l.Cost),
			contributionsString(l.Contributions),
		})
	}
	cw.Flush()
	return cw.Error()
}

// contributionsString flattens contributions as "src->dst(vol); ...".
func contributionsString(cs []solution.Contribution) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s(%.2f)", c.Request, c.Volume)
	}
	return strings.Join(parts, "; ")
}

func writeSummary(w io.Writer, m solution.Metrics) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"total_cost", "transport_cost", "transfer_cost", "total_vehicles",
		"total_distance", "total_time", "total_volume", "vehicle_utilization",
		"cost_per_cubic_meter", "avg_delivery_time", "avg_delivery_time_per_volume",
		"paths_per_request", "underloaded_legs", "vehicle_capacity",
	})
	_ = cw.Write([]string{
		formatNumber(m.TotalCost), formatNumber(m.TransportCost), formatNumber(m.TransferCost),
		strconv.Itoa(m.TotalVehicles), formatNumber(m.TotalDistance), formatNumber(m.TotalTime),
		formatNumber(m.TotalVolume), formatNumber(m.VehicleUtilization),
		formatNumber(m.CostPerCubicMeter), formatNumber(m.AvgDeliveryTimePerRequest),
		formatNumber(m.AvgDeliveryTimePerVolume), formatNumber(m.PathsPerRequest),
		strconv.Itoa(m.UnderloadedLegs), formatNumber(m.VehicleCapacity),
	})
	cw.Flush()
	return cw.Error()
}

func writeFile(dir, name string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", name, err)
	}
	return f.Close()
}
