package olrpaths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCHEstimator(t *testing.T) {
	net := newTestNetwork(t)
	est, err := NewCHEstimator(net.graph, nil)
	require.NoError(t, err)

	bound, ok := est.LowerBound(3, 4)
	require.True(t, ok)
	assert.InDelta(t, 20.0, bound, 1e-9)

	bound, ok = est.LowerBound(1, 6)
	require.True(t, ok)
	assert.InDelta(t, 180.0, bound, 1e-9)

	bound, ok = est.LowerBound(4, 4)
	require.True(t, ok)
	assert.Equal(t, 0.0, bound)

	_, ok = est.LowerBound(6, 1)
	assert.False(t, ok)
	_, ok = est.LowerBound(1, 9)
	assert.False(t, ok)
}

func TestCHEstimatorKeepsShortestPaths(t *testing.T) {
	net := newTestNetwork(t)
	est, err := NewCHEstimator(net.graph, nil)
	require.NoError(t, err)

	plain := newTestConnector(net.graph, nil)
	pruned := newTestConnector(net.graph, nil, WithLowerBoundEstimator(est))
	pairs := [][2]Edge{
		{net.e1, net.e5},
		{net.e2, net.e4},
		{net.e3, net.e5},
		{net.e1, net.e9},
	}
	for _, pair := range pairs {
		for _, limit := range []float64{20, 60, 100, 300} {
			expected, expectedOK := plain.FindShortestPath(pair[0], pair[1], FRC3, limit)
			actual, actualOK := pruned.FindShortestPath(pair[0], pair[1], FRC3, limit)
			assert.Equal(t, expectedOK, actualOK, "pair %s -> %s, limit %f", pair[0], pair[1], limit)
			assert.Equal(t, expected, actual)
		}
	}
}
