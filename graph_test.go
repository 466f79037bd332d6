package olrpaths

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadGraphAddEdge(t *testing.T) {
	graph := NewRoadGraph()
	require.NoError(t, graph.AddEdge(Edge{ID: 1, Source: 1, Target: 2, LengthMeters: 10}, nil))

	err := graph.AddEdge(Edge{ID: 1, Source: 2, Target: 3, LengthMeters: 10}, nil)
	assert.True(t, errors.Is(err, ErrEdgeExists))

	err = graph.AddEdge(Edge{ID: 2, Source: 2, Target: 3, LengthMeters: -1}, nil)
	assert.True(t, errors.Is(err, ErrNegativeLength))

	assert.Equal(t, 1, graph.EdgesCount())
	assert.Equal(t, 2, graph.JunctionsCount())
}

func TestRoadGraphLengthFromGeometry(t *testing.T) {
	graph := NewRoadGraph()
	line := orb.LineString{{37.60, 55.75}, {37.61, 55.75}, {37.61, 55.76}}
	require.NoError(t, graph.AddEdge(Edge{ID: 1, Source: 1, Target: 2}, line))

	edge, ok := graph.Edge(1)
	require.True(t, ok)
	assert.InDelta(t, geo.LengthHaversign(line), edge.LengthMeters, 1e-9)
	assert.Greater(t, edge.LengthMeters, 1000.0)
	assert.Equal(t, line, graph.Geometry(1))
	assert.Nil(t, graph.Geometry(2))
}

func TestRoadGraphOutgoingEdges(t *testing.T) {
	net := newTestNetwork(t)

	// Insertion order is kept
	assert.Equal(t, []Edge{net.e3, net.e6}, net.graph.GetOutgoingEdges(3))
	assert.Empty(t, net.graph.GetOutgoingEdges(6))

	out := net.graph.GetOutgoingEdges(3)
	out[0] = net.e9
	assert.Equal(t, []Edge{net.e3, net.e6}, net.graph.GetOutgoingEdges(3))
}

func TestRoadGraphFakeEdges(t *testing.T) {
	net := newTestNetwork(t)
	first, err := net.graph.AddFakeEdge(2, 3, FRC4, 12, nil)
	require.NoError(t, err)
	second, err := net.graph.AddFakeEdge(3, 2, FRC4, 12, nil)
	require.NoError(t, err)

	assert.True(t, first.Fake)
	assert.Equal(t, EdgeID(-1), first.ID)
	assert.Equal(t, EdgeID(-2), second.ID)
	assert.Contains(t, net.graph.GetOutgoingEdges(2), first)

	// Explicit negative IDs shift fake numbering
	require.NoError(t, net.graph.AddEdge(Edge{ID: -10, Source: 5, Target: 6, LengthMeters: 1}, nil))
	third, err := net.graph.AddFakeEdge(6, 5, FRC4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, EdgeID(-11), third.ID)
}

func TestRoadGraphEdgesSorted(t *testing.T) {
	graph := NewRoadGraph()
	for _, id := range []EdgeID{5, -1, 3} {
		require.NoError(t, graph.AddEdge(Edge{ID: id, Source: 1, Target: 2, LengthMeters: 1}, nil))
	}
	assert.Equal(t, []EdgeID{-1, 3, 5}, EdgeVector(graph.Edges()).IDs())
}

func TestRoadGraphPathGeometry(t *testing.T) {
	graph := NewRoadGraph()
	require.NoError(t, graph.AddEdge(Edge{ID: 1, Source: 1, Target: 2}, orb.LineString{{0, 0}, {0, 0.001}}))
	require.NoError(t, graph.AddEdge(Edge{ID: 2, Source: 2, Target: 3}, orb.LineString{{0, 0.001}, {0.001, 0.001}}))
	e1, _ := graph.Edge(1)
	e2, _ := graph.Edge(2)

	line := graph.PathGeometry(EdgeVector{e1, e2})
	assert.Equal(t, orb.LineString{{0, 0}, {0, 0.001}, {0.001, 0.001}}, line)
}
