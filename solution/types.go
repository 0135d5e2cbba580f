// SPDX-License-Identifier: MIT

package solution

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/mcfscore/mcfscore/core"
	"github.com/mcfscore/mcfscore/flow"
)

// Sentinel errors returned by Build.
var (
	ErrNilNetwork   = errors.New("solution: network is nil")
	ErrBadCapacity  = errors.New("solution: vehicle capacity must be positive and finite")
	ErrBadThreshold = errors.New("solution: underload threshold must be non-negative and finite")
	ErrBadTolerance = errors.New("solution: coverage tolerance must be non-negative and finite")
	ErrNilEdge      = errors.New("solution: resolver returned a nil edge without error")
)

// Defaults applied by DefaultOptions.
const (
	DefaultVehicleCapacity    = 90.0
	DefaultUnderloadThreshold = 0.3
	DefaultCoverageTolerance  = 1e-3
)

// EdgeResolver resolves the attributes of a directed edge. *core.Network
// satisfies it.
type EdgeResolver interface {
	Edge(from, to string) (*core.Edge, error)
}

// TransferResolver exposes the node table: the transfer record of an office,
// and the offices that have one. *core.Network satisfies it.
type TransferResolver interface {
	Transfer(id string) (core.Transfer, bool)
	TransferOffices() []string
}

// Network is the reference data a solution is scored against.
type Network interface {
	EdgeResolver
	TransferResolver
}

// Options configures Build.
type Options struct {
	// VehicleCapacity is the volume (m³) one vehicle carries. Default 90.
	VehicleCapacity float64

	// UnderloadThreshold is the fraction of VehicleCapacity below which a
	// leg counts as underloaded. Default 0.3.
	UnderloadThreshold float64

	// CoverageTolerance is the absolute volume difference tolerated by
	// ValidateCoverage. Default 1e-3.
	CoverageTolerance float64

	// Parallelism, if > 1, aggregates flows in that many concurrent chunks.
	Parallelism int

	// Logger receives omission warnings and a build summary at DEBUG.
	// Default discards everything.
	Logger *slog.Logger
}

// Option is a functional option for Build.
type Option func(*Options)

// WithVehicleCapacity sets the vehicle capacity in m³.
func WithVehicleCapacity(c float64) Option {
	return func(o *Options) { o.VehicleCapacity = c }
}

// WithUnderloadThreshold sets the underload fraction of vehicle capacity.
func WithUnderloadThreshold(t float64) Option {
	return func(o *Options) { o.UnderloadThreshold = t }
}

// WithCoverageTolerance sets the absolute tolerance of coverage checks.
func WithCoverageTolerance(t float64) Option {
	return func(o *Options) { o.CoverageTolerance = t }
}

// WithParallelism aggregates flows in n concurrent chunks (n ≤ 1: sequential).
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithLogger injects the logger used during Build.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns production defaults:
//   - VehicleCapacity:    90
//   - UnderloadThreshold: 0.3
//   - CoverageTolerance:  1e-3
//   - Parallelism:        1 (sequential)
//   - Logger:             discard
func DefaultOptions() Options {
	return Options{
		VehicleCapacity:    DefaultVehicleCapacity,
		UnderloadThreshold: DefaultUnderloadThreshold,
		CoverageTolerance:  DefaultCoverageTolerance,
		Parallelism:        1,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *Options) validate() error {
	if !(o.VehicleCapacity > 0) || math.IsInf(o.VehicleCapacity, 0) {
		return fmt.Errorf("%w: %g", ErrBadCapacity, o.VehicleCapacity)
	}
	if !(o.UnderloadThreshold >= 0) || math.IsInf(o.UnderloadThreshold, 0) {
		return fmt.Errorf("%w: %g", ErrBadThreshold, o.UnderloadThreshold)
	}
	if !(o.CoverageTolerance >= 0) || math.IsInf(o.CoverageTolerance, 0) {
		return fmt.Errorf("%w: %g", ErrBadTolerance, o.CoverageTolerance)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Contribution is the share of one request carried on a leg.
type Contribution struct {
	Request flow.RequestKey
	Volume  float64
}

// Leg is a directed edge of the network used by at least one flow.
//
// Invariants:
//   - Volume == Σ Contributions[i].Volume
//   - Vehicles == ⌈Volume / VehicleCapacity⌉
//   - Cost == Vehicles × PricePerKm × Distance / 1000
type Leg struct {
	From, To      string
	Distance      float64 // meters
	Time          float64 // seconds, one vehicle
	PricePerKm    float64
	Volume        float64
	Vehicles      int
	Cost          float64
	Contributions []Contribution
}

// Hop returns the leg's endpoints.
func (l Leg) Hop() flow.Hop { return flow.Hop{From: l.From, To: l.To} }

func (l Leg) clone() Leg {
	l.Contributions = append([]Contribution(nil), l.Contributions...)
	return l
}

// Omission records one flow×hop whose edge could not be resolved and whose
// volume was therefore left out of leg accounting.
type Omission struct {
	Hop     flow.Hop
	Request flow.RequestKey
	Volume  float64
	Err     error
}

func (o Omission) String() string {
	return fmt.Sprintf("edge %s skipped for request %s (%.2f m³): %v", o.Hop, o.Request, o.Volume, o.Err)
}
