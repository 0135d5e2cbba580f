package solution_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcfscore/mcfscore/core"
	"github.com/mcfscore/mcfscore/flow"
	"github.com/mcfscore/mcfscore/solution"
)

// BuildSuite exercises Build end to end on the triangle fixture.
type BuildSuite struct {
	suite.Suite
	net *core.Network
	sol *solution.Solution
}

func (s *BuildSuite) SetupTest() {
	s.net = newTriangle(s.T())
	sol, err := solution.Build(triangleFlows(), s.net, solution.WithVehicleCapacity(90))
	require.NoError(s.T(), err)
	s.sol = sol
}

// TestLegs: AB carries 50+60, BC 50, AC 30, in first-use order.
func (s *BuildSuite) TestLegs() {
	legs := s.sol.Legs()
	require.Len(s.T(), legs, 3)

	require.Equal(s.T(), flow.Hop{From: "A", To: "B"}, legs[0].Hop())
	require.Equal(s.T(), flow.Hop{From: "B", To: "C"}, legs[1].Hop())
	require.Equal(s.T(), flow.Hop{From: "A", To: "C"}, legs[2].Hop())

	ab := legs[0]
	require.Equal(s.T(), 110.0, ab.Volume)
	require.Equal(s.T(), 2, ab.Vehicles)
	require.InDelta(s.T(), 40.0, ab.Cost, 1e-9)
	require.Equal(s.T(), []solution.Contribution{
		{Request: key("A", "C"), Volume: 50},
		{Request: key("A", "B"), Volume: 60},
	}, ab.Contributions)

	bc, ok := s.sol.Leg("B", "C")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, bc.Vehicles)
	require.InDelta(s.T(), 30.0, bc.Cost, 1e-9)

	ac, ok := s.sol.Leg("A", "C")
	require.True(s.T(), ok)
	require.InDelta(s.T(), 75.0, ac.Cost, 1e-9)

	_, ok = s.sol.Leg("C", "A")
	require.False(s.T(), ok)
}

// TestLegInvariants: Volume = Σ contributions and the cost formula hold on every leg.
func (s *BuildSuite) TestLegInvariants() {
	for _, l := range s.sol.Legs() {
		var sum float64
		for _, c := range l.Contributions {
			sum += c.Volume
		}
		require.InDelta(s.T(), sum, l.Volume, 1e-9, "leg %s", l.Hop())
		require.Equal(s.T(), solution.VehicleCount(l.Volume, 90), l.Vehicles)
		require.InDelta(s.T(), float64(l.Vehicles)*l.PricePerKm*l.Distance/1000, l.Cost, 1e-9)
	}
}

// TestAccessorsReturnCopies: callers cannot mutate the solution.
func (s *BuildSuite) TestAccessorsReturnCopies() {
	legs := s.sol.Legs()
	legs[0].Contributions[0].Volume = -1
	legs[0].Volume = 0
	again := s.sol.Legs()
	require.Equal(s.T(), 110.0, again[0].Volume)
	require.Equal(s.T(), 50.0, again[0].Contributions[0].Volume)

	reqs := s.sol.Requests()
	reqs[key("A", "C")] = 0
	require.Equal(s.T(), 80.0, s.sol.Requests()[key("A", "C")])
}

// TestRequests: request aggregates sum all flows of a key.
func (s *BuildSuite) TestRequests() {
	require.Equal(s.T(), map[flow.RequestKey]float64{
		key("A", "B"): 60,
		key("A", "C"): 80,
	}, s.sol.Requests())
	require.Equal(s.T(), []flow.RequestKey{key("A", "B"), key("A", "C")}, s.sol.RequestKeys())
}

// TestMetrics checks every KPI against hand-computed values.
func (s *BuildSuite) TestMetrics() {
	m := s.sol.Metrics()
	t := s.T()

	require.Equal(t, 3, m.FlowCount)
	require.Equal(t, 2, m.RequestCount)
	require.Equal(t, 3, m.LegCount)
	require.Equal(t, 90.0, m.VehicleCapacity)
	require.Equal(t, 0.3, m.UnderloadThreshold)

	require.Equal(t, 140.0, m.TotalVolume)
	require.Equal(t, 4, m.TotalVehicles)
	require.InDelta(t, 65000.0, m.TotalDistance, 1e-9)
	require.InDelta(t, 19800.0, m.TotalTime, 1e-9)

	require.InDelta(t, 145.0, m.TransportCost, 1e-9)
	require.InDelta(t, 50.0, m.TransferCost, 1e-9)
	require.InDelta(t, 195.0, m.TotalCost, 1e-9)
	require.Equal(t, m.TransportCost+m.TransferCost, m.TotalCost)

	require.InDelta(t, 140.0/360.0*100, m.VehicleUtilization, 1e-9)
	require.InDelta(t, 195.0/140.0, m.CostPerCubicMeter, 1e-9)
	require.InDelta(t, 9900.0, m.AvgDeliveryTimePerRequest, 1e-9)
	require.InDelta(t, 19800.0/140.0, m.AvgDeliveryTimePerVolume, 1e-9)
	require.InDelta(t, 1.5, m.PathsPerRequest, 1e-9)
	require.Equal(t, 0, m.UnderloadedLegs)

	require.Equal(t, 1, s.sol.CountUnderloaded(0.5), "AC (30) is below 45")
}

// TestThroughput: the transit node receives and re-emits the transiting volume.
func (s *BuildSuite) TestThroughput() {
	in, out := s.sol.Throughput("B")
	require.Equal(s.T(), 50.0, in)
	require.Equal(s.T(), 50.0, out)

	in, out = s.sol.Throughput("A")
	require.Zero(s.T(), in+out, "sources are not transit nodes")

	require.Empty(s.T(), s.sol.CapacityViolations())
	require.InDelta(s.T(), 50.0, s.sol.TransferCost(), 1e-9)
}

// TestString renders the one-line summary.
func (s *BuildSuite) TestString() {
	require.Equal(s.T(), "Solution - Cost: 195.00, Vehicles: 4, Utilization: 38.9%", s.sol.String())
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestBuild_SingleFlow: path [A,B,C] with volume v yields one contribution per leg.
func TestBuild_SingleFlow(t *testing.T) {
	const v = 42.0
	sol, err := solution.Build(flow.NewSet(flow.MustNew("A", "C", v, "A", "B", "C")), newTriangle(t))
	require.NoError(t, err)

	for _, hop := range []flow.Hop{{From: "A", To: "B"}, {From: "B", To: "C"}} {
		leg, ok := sol.Leg(hop.From, hop.To)
		require.True(t, ok)
		require.Equal(t, []solution.Contribution{{Request: key("A", "C"), Volume: v}}, leg.Contributions)
	}
	require.Equal(t, v, sol.Requests()[key("A", "C")])
}

// TestBuild_MissingEdge: one unresolved leg of a two-leg path is omitted,
// the other is priced normally, and the request still counts in full.
func TestBuild_MissingEdge(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge(core.Edge{From: "A", To: "B", Distance: 1000, Time: 60, PricePerKm: 10}))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	flows := flow.NewSet(
		flow.MustNew("A", "C", 20, "A", "B", "C"),
		flow.MustNew("B", "C", 5, "B", "C"),
	)
	sol, err := solution.Build(flows, n, solution.WithLogger(logger))
	require.NoError(t, err)

	om := sol.Omissions()
	require.Len(t, om, 2, "every flow using the missing edge is recorded")
	require.Equal(t, flow.Hop{From: "B", To: "C"}, om[0].Hop)
	require.Equal(t, key("A", "C"), om[0].Request)
	require.Equal(t, 20.0, om[0].Volume)
	require.ErrorIs(t, om[0].Err, core.ErrEdgeNotFound)
	require.Equal(t, key("B", "C"), om[1].Request)
	require.Contains(t, om[0].String(), "B→C")

	_, ok := sol.Leg("B", "C")
	require.False(t, ok)
	ab, ok := sol.Leg("A", "B")
	require.True(t, ok)
	require.Equal(t, 20.0, ab.Volume)
	require.Equal(t, 1, ab.Vehicles)
	require.InDelta(t, 10.0, ab.Cost, 1e-9)

	require.Equal(t, 20.0, sol.Requests()[key("A", "C")])
	require.Equal(t, 1, sol.Metrics().LegCount)
	require.Contains(t, logs.String(), "edge missing from reference network")
	require.Contains(t, logs.String(), "level=WARN")
}

// TestBuild_Empty: an empty flow set is a degenerate but valid solution.
func TestBuild_Empty(t *testing.T) {
	sol, err := solution.Build(flow.NewSet(), newTriangle(t))
	require.NoError(t, err)

	m := sol.Metrics()
	require.True(t, math.IsInf(m.CostPerCubicMeter, 1))
	require.Zero(t, m.TotalCost)
	require.Zero(t, m.TotalVehicles)
	require.Zero(t, m.VehicleUtilization)
	require.Zero(t, m.AvgDeliveryTimePerRequest)
	require.Zero(t, m.AvgDeliveryTimePerVolume)
	require.Zero(t, m.PathsPerRequest)
	require.Empty(t, sol.Legs())
}

// TestBuild_UtilizationClamped: omitted volume can push the ratio above
// 100%; the KPI stays clamped.
func TestBuild_UtilizationClamped(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge(core.Edge{From: "A", To: "B", Distance: 1000, Time: 60, PricePerKm: 1}))

	flows := flow.NewSet(
		flow.MustNew("A", "B", 90, "A", "B"),
		flow.MustNew("C", "D", 90, "C", "D"),
	)
	sol, err := solution.Build(flows, n)
	require.NoError(t, err)
	require.Equal(t, 1, sol.Metrics().TotalVehicles)
	require.Equal(t, 100.0, sol.Metrics().VehicleUtilization)
}

// TestBuild_TotalCostIdentity holds across fixtures.
func TestBuild_TotalCostIdentity(t *testing.T) {
	for _, capacity := range []float64{1, 33.3, 90, 500} {
		sol, err := solution.Build(triangleFlows(), newTriangle(t), solution.WithVehicleCapacity(capacity))
		require.NoError(t, err)
		m := sol.Metrics()
		require.Equal(t, m.TransportCost+m.TransferCost, m.TotalCost)
	}
}

// TestBuild_Parallel: chunked aggregation matches the sequential pass.
func TestBuild_Parallel(t *testing.T) {
	n := newTriangle(t)
	var flows []flow.Flow
	for i := 0; i < 61; i++ {
		vol := float64(i%7 + 1)
		switch i % 4 {
		case 0:
			flows = append(flows, flow.MustNew("A", "C", vol, "A", "B", "C"))
		case 1:
			flows = append(flows, flow.MustNew("A", "C", vol, "A", "C"))
		case 2:
			flows = append(flows, flow.MustNew("A", "B", vol, "A", "B"))
		default:
			flows = append(flows, flow.MustNew("C", "A", vol, "C", "B", "A")) // unresolved
		}
	}
	set := flow.NewSet(flows...)

	seq, err := solution.Build(set, n)
	require.NoError(t, err)
	for _, p := range []int{2, 3, 8, 100} {
		par, err := solution.Build(set, n, solution.WithParallelism(p))
		require.NoError(t, err)
		require.Equal(t, seq.Legs(), par.Legs(), "parallelism %d", p)
		require.Equal(t, seq.Requests(), par.Requests())
		require.Equal(t, seq.Omissions(), par.Omissions())
		require.Equal(t, seq.Metrics(), par.Metrics())
		require.Equal(t, seq.CapacityViolations(), par.CapacityViolations())
	}
}

func TestBuild_Errors(t *testing.T) {
	n := newTriangle(t)
	set := triangleFlows()

	_, err := solution.Build(set, nil)
	require.ErrorIs(t, err, solution.ErrNilNetwork)

	_, err = solution.Build(set, n, solution.WithVehicleCapacity(0))
	require.ErrorIs(t, err, solution.ErrBadCapacity)
	_, err = solution.Build(set, n, solution.WithVehicleCapacity(math.Inf(1)))
	require.ErrorIs(t, err, solution.ErrBadCapacity)

	_, err = solution.Build(set, n, solution.WithUnderloadThreshold(math.NaN()))
	require.ErrorIs(t, err, solution.ErrBadThreshold)

	_, err = solution.Build(set, n, solution.WithCoverageTolerance(-1))
	require.ErrorIs(t, err, solution.ErrBadTolerance)

	_, err = solution.Build(set, nilEdgeNetwork{})
	require.True(t, errors.Is(err, solution.ErrNilEdge))

	_, err = solution.Build(set, nilEdgeNetwork{}, solution.WithParallelism(2))
	require.ErrorIs(t, err, solution.ErrNilEdge)

	sol, err := solution.Build(set, n, solution.WithLogger(nil))
	require.NoError(t, err, "a nil logger falls back to discard")
	require.NotNil(t, sol.Options().Logger)
}
