package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcfscore/mcfscore/core"
)

func TestReachable(t *testing.T) {
	n := NewChain(t)

	depth, err := n.Reachable(context.Background(), OfficeB)
	require.NoError(t, err)
	require.Equal(t, map[string]int{OfficeB: 0, OfficeC: 1, OfficeD: 2}, depth)

	depth, err = n.Reachable(context.Background(), OfficeD)
	require.NoError(t, err)
	require.Equal(t, map[string]int{OfficeD: 0}, depth, "edges are directed")

	_, err = n.Reachable(context.Background(), "nowhere")
	require.ErrorIs(t, err, core.ErrOfficeNotFound)
}

func TestReachable_Shortcut(t *testing.T) {
	n := NewChain(t)
	require.NoError(t, n.AddEdge(edge(OfficeA, OfficeD, 1, 1, 1)))

	depth, err := n.Reachable(context.Background(), OfficeA)
	require.NoError(t, err)
	require.Equal(t, 1, depth[OfficeD], "depth is the fewest hops")
}

func TestReachable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewChain(t).Reachable(ctx, OfficeA)
	require.ErrorIs(t, err, context.Canceled)
}
