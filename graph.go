package olrpaths

import (
	"cmp"
	"slices"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Graph gives read-only access to directed edges of road network
type Graph interface {
	// GetOutgoingEdges enumerates edges leaving given junction
	GetOutgoingEdges(junction JunctionID) []Edge
}

var (
	ErrEdgeExists     = errors.New("edge with such ID already exists")
	ErrNegativeLength = errors.New("edge length must be non-negative")
	ErrEdgeNotFound   = errors.New("edge not found")
)

// RoadGraph is in-memory road network.
//
// Outgoing edges are kept in insertion order, so search tie-breaks are reproducible.
// Mutations must be done before the graph is shared between goroutines; reads are safe for concurrent use.
type RoadGraph struct {
	mu        sync.RWMutex
	edges     map[EdgeID]Edge
	geoms     map[EdgeID]orb.LineString
	outgoing  map[JunctionID][]Edge
	junctions map[JunctionID]struct{}
	nextFake  EdgeID
}

func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		edges:     make(map[EdgeID]Edge),
		geoms:     make(map[EdgeID]orb.LineString),
		outgoing:  make(map[JunctionID][]Edge),
		junctions: make(map[JunctionID]struct{}),
		nextFake:  -1,
	}
}

// AddEdge registers edge with optional geometry.
// If edge's length is zero and geometry is provided then length is evaluated from geometry.
func (graph *RoadGraph) AddEdge(edge Edge, geom orb.LineString) error {
	graph.mu.Lock()
	defer graph.mu.Unlock()
	return graph.addEdge(edge, geom)
}

func (graph *RoadGraph) addEdge(edge Edge, geom orb.LineString) error {
	if _, ok := graph.edges[edge.ID]; ok {
		return errors.Wrapf(ErrEdgeExists, "edge ID: %d", edge.ID)
	}
	if edge.LengthMeters < 0 {
		return errors.Wrapf(ErrNegativeLength, "edge ID: %d", edge.ID)
	}
	if edge.LengthMeters == 0 && len(geom) > 1 {
		edge.LengthMeters = geo.LengthHaversign(geom)
	}
	graph.edges[edge.ID] = edge
	if len(geom) > 0 {
		graph.geoms[edge.ID] = geom
	}
	graph.outgoing[edge.Source] = append(graph.outgoing[edge.Source], edge)
	graph.junctions[edge.Source] = struct{}{}
	graph.junctions[edge.Target] = struct{}{}
	if edge.ID <= graph.nextFake {
		graph.nextFake = edge.ID - 1
	}
	return nil
}

// AddFakeEdge registers synthetic connector between two junctions.
// Fake edges get negative identifiers which never collide with existing ones.
func (graph *RoadGraph) AddFakeEdge(source, target JunctionID, frc FunctionalRoadClass, lengthMeters float64, geom orb.LineString) (Edge, error) {
	graph.mu.Lock()
	defer graph.mu.Unlock()
	edge := Edge{
		ID:           graph.nextFake,
		Source:       source,
		Target:       target,
		LengthMeters: lengthMeters,
		FRC:          frc,
		Fake:         true,
	}
	if err := graph.addEdge(edge, geom); err != nil {
		return Edge{}, err
	}
	return graph.edges[edge.ID], nil
}

// GetOutgoingEdges implements Graph
func (graph *RoadGraph) GetOutgoingEdges(junction JunctionID) []Edge {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	return slices.Clone(graph.outgoing[junction])
}

func (graph *RoadGraph) Edge(id EdgeID) (Edge, bool) {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	edge, ok := graph.edges[id]
	return edge, ok
}

// Geometry returns geometry of the edge. Result is nil when geometry is unknown.
func (graph *RoadGraph) Geometry(id EdgeID) orb.LineString {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	return graph.geoms[id]
}

// Edges returns all edges sorted by ID
func (graph *RoadGraph) Edges() []Edge {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	edges := make([]Edge, 0, len(graph.edges))
	for _, edge := range graph.edges {
		edges = append(edges, edge)
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return edges
}

func (graph *RoadGraph) EdgesCount() int {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	return len(graph.edges)
}

func (graph *RoadGraph) JunctionsCount() int {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	return len(graph.junctions)
}

// PathGeometry glues geometries of path's edges. Shared points between adjacent edges are not repeated.
func (graph *RoadGraph) PathGeometry(path EdgeVector) orb.LineString {
	graph.mu.RLock()
	defer graph.mu.RUnlock()
	line := make(orb.LineString, 0)
	for _, edge := range path {
		geom := graph.geoms[edge.ID]
		for i, pt := range geom {
			if i == 0 && len(line) > 0 && line[len(line)-1] == pt {
				continue
			}
			line = append(line, pt)
		}
	}
	return line
}
