package olrpaths

import (
	"log/slog"
	"sync"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// CHEstimator answers lower bound queries with contraction hierarchies built over road graph
type CHEstimator struct {
	mu    sync.Mutex
	graph ch.Graph
}

// NewCHEstimator prepares contraction hierarchies for every edge of the graph.
// Edges added to the road graph afterwards are not taken into account.
func NewCHEstimator(roadGraph *RoadGraph, logger *slog.Logger) (*CHEstimator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	est := &CHEstimator{
		graph: ch.Graph{},
	}
	for _, edge := range roadGraph.Edges() {
		if edge.Source == edge.Target {
			continue
		}
		source := int64(edge.Source)
		target := int64(edge.Target)
		err := est.graph.CreateVertex(source)
		if err != nil {
			return nil, errors.Wrap(err, "Can not create source vertex")
		}
		err = est.graph.CreateVertex(target)
		if err != nil {
			return nil, errors.Wrap(err, "Can not create target vertex")
		}
		err = est.graph.AddEdge(source, target, edge.LengthMeters)
		if err != nil {
			return nil, errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
		}
	}
	logger.Info("starting contraction process", slog.Int("vertices", len(est.graph.Vertices)))
	st := time.Now()
	est.graph.PrepareContractionHierarchies()
	logger.Info("done contraction process", slog.Duration("elapsed", time.Since(st)))
	return est, nil
}

// LowerBound implements LowerBoundEstimator
func (est *CHEstimator) LowerBound(from, to JunctionID) (float64, bool) {
	if from == to {
		return 0, true
	}
	est.mu.Lock()
	defer est.mu.Unlock()
	cost, _ := est.graph.ShortestPath(int64(from), int64(to))
	if cost < 0 {
		return 0, false
	}
	return cost, true
}
