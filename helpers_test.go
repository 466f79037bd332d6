package olrpaths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test network:
//
//	1 --e1--> 2 --e2--> 3 --e3--> 4 --e4--> 5 --e5--> 6
//	                    |         ^
//	                    e6        e7
//	                    v         |
//	                    +--> 7 ---+
//
//	8 --e9--> 9 is isolated
type testNetwork struct {
	graph *RoadGraph
	e1    Edge
	e2    Edge
	e3    Edge
	e4    Edge
	e5    Edge
	e6    Edge
	e7    Edge
	e9    Edge
}

func newTestNetwork(t *testing.T) *testNetwork {
	t.Helper()
	net := &testNetwork{
		graph: NewRoadGraph(),
		e1:    Edge{ID: 1, Source: 1, Target: 2, LengthMeters: 50, FRC: FRC3},
		e2:    Edge{ID: 2, Source: 2, Target: 3, LengthMeters: 40, FRC: FRC3},
		e3:    Edge{ID: 3, Source: 3, Target: 4, LengthMeters: 30, FRC: FRC3},
		e4:    Edge{ID: 4, Source: 4, Target: 5, LengthMeters: 50, FRC: FRC3},
		e5:    Edge{ID: 5, Source: 5, Target: 6, LengthMeters: 20, FRC: FRC3},
		e6:    Edge{ID: 6, Source: 3, Target: 7, LengthMeters: 10, FRC: FRC5},
		e7:    Edge{ID: 7, Source: 7, Target: 4, LengthMeters: 10, FRC: FRC5},
		e9:    Edge{ID: 9, Source: 8, Target: 9, LengthMeters: 25, FRC: FRC3},
	}
	for _, e := range []Edge{net.e1, net.e2, net.e3, net.e4, net.e5, net.e6, net.e7, net.e9} {
		require.NoError(t, net.graph.AddEdge(e, nil))
	}
	return net
}

func newTestConnector(graph Graph, stats StatsSink, options ...func(*PathsConnector)) *PathsConnector {
	return NewPathsConnector(graph, stats, options...)
}
