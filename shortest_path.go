package olrpaths

import (
	"container/heap"
	"log/slog"
	"slices"
)

const (
	// DefaultBridgeSlackMeters is added to expected distance to get upper bound of bridge length
	DefaultBridgeSlackMeters = 10.0
)

// LowerBoundEstimator gives admissible estimation of shortest distance between two junctions.
// Second value is false when target is known to be unreachable.
type LowerBoundEstimator interface {
	LowerBound(from, to JunctionID) (float64, bool)
}

// FindShortestPath returns the shortest path which starts with edge `from` and ends with edge `to`.
//
// Path cost is the sum of lengths of every edge except `from`. States with cost above
// maxPathLength + bridge slack are dropped. Functional road class is accepted for future filtering
// of expansion, but currently every outgoing edge is considered.
func (pc *PathsConnector) FindShortestPath(from, to Edge, frc FunctionalRoadClass, maxPathLength float64) (EdgeVector, bool) {
	maxScore := maxPathLength + pc.bridgeSlack

	if pc.estimator != nil {
		lowerBound, reachable := pc.estimator.LowerBound(from.Target, to.Source)
		if !reachable || lowerBound+to.LengthMeters > maxScore+boundEpsilon {
			pc.logger.Debug("bridge pruned by lower bound",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
				slog.Bool("reachable", reachable),
				slog.Float64("lower_bound", lowerBound),
			)
			return nil, false
		}
	}

	scores := map[Edge]float64{from: 0}
	links := make(map[Edge]Edge)
	pq := make(statePQ, 0, 16)
	heap.Push(&pq, searchState{edge: from, score: 0})

	for pq.Len() > 0 {
		state := heap.Pop(&pq).(searchState)
		u := state.edge
		us := state.score

		if us > maxScore {
			continue
		}
		if us > scores[u] {
			// Stale entry
			continue
		}
		if u == to {
			path := EdgeVector{}
			for e := u; e != from; e = links[e] {
				path = append(path, e)
			}
			path = append(path, from)
			slices.Reverse(path)
			return path, true
		}

		// @todo: use frc to filter outgoing edges
		for _, e := range pc.graph.GetOutgoingEdges(u.Target) {
			eScore := us + e.LengthMeters
			if known, ok := scores[e]; !ok || known > eScore {
				scores[e] = eScore
				links[e] = u
				heap.Push(&pq, searchState{edge: e, score: eScore})
			}
		}
	}
	return nil, false
}

// boundEpsilon absorbs float summation order differences between estimator and search
const boundEpsilon = 1e-6

// searchState is an edge with best known cost from the source edge
type searchState struct {
	edge  Edge
	score float64
}

// statePQ is a min-heap of searchState ordered by (score, edge)
type statePQ []searchState

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return CompareEdges(pq[i].edge, pq[j].edge) < 0
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(searchState)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
