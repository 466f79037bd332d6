package olrpaths

import (
	"context"
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultPathLengthTolerance is allowed relative deviation of path length from expected distance
	DefaultPathLengthTolerance = 0.30
)

var (
	ErrNoPoints           = errors.New("no location reference points provided")
	ErrCandidatesMismatch = errors.New("number of candidate lists differs from number of points")
	ErrNoShortestPath     = errors.New("no shortest path found")
)

// PathsConnector glues candidate lines of adjacent location reference points into connected paths.
//
// It holds no per-call state, so single instance could be shared between goroutines
// as long as graph and stats sink are safe for concurrent use.
type PathsConnector struct {
	graph               Graph
	stats               StatsSink
	logger              *slog.Logger
	estimator           LowerBoundEstimator
	pathLengthTolerance float64
	bridgeSlack         float64
}

func NewPathsConnector(graph Graph, stats StatsSink, options ...func(*PathsConnector)) *PathsConnector {
	pc := &PathsConnector{
		graph:               graph,
		stats:               stats,
		logger:              slog.Default(),
		pathLengthTolerance: DefaultPathLengthTolerance,
		bridgeSlack:         DefaultBridgeSlackMeters,
	}
	for _, option := range options {
		option(pc)
	}
	if pc.stats == nil {
		pc.stats = &Stats{}
	}
	return pc
}

func WithPathLengthTolerance(tolerance float64) func(*PathsConnector) {
	return func(pc *PathsConnector) {
		pc.pathLengthTolerance = tolerance
	}
}

func WithBridgeSlack(meters float64) func(*PathsConnector) {
	return func(pc *PathsConnector) {
		pc.bridgeSlack = meters
	}
}

func WithLogger(logger *slog.Logger) func(*PathsConnector) {
	return func(pc *PathsConnector) {
		if logger != nil {
			pc.logger = logger
		}
	}
}

func WithLowerBoundEstimator(estimator LowerBoundEstimator) func(*PathsConnector) {
	return func(pc *PathsConnector) {
		pc.estimator = estimator
	}
}

// ConnectCandidates builds path for every pair of adjacent points.
//
// lineCandidates[i] holds candidate lines of points[i]. Candidates are tried in the given order:
// lines of the first point in outer loop and lines of the second point in inner loop.
// Result has exactly len(points)-1 entries. If any pair can't be connected then
// the whole reconstruction fails and no partial result is returned.
func (pc *PathsConnector) ConnectCandidates(points []LocationReferencePoint, lineCandidates [][]EdgeVector) ([]EdgeVector, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(lineCandidates) != len(points) {
		return nil, errors.Wrapf(ErrCandidatesMismatch, "points: %d, candidate lists: %d", len(points), len(lineCandidates))
	}

	resultPath := make([]EdgeVector, len(points)-1)
	for i := 1; i < len(points); i++ {
		point := points[i-1]
		match := pc.connectSegment(lineCandidates[i-1], lineCandidates[i], point.FRC, point.DistanceToNextPoint)
		path, found := match.best()
		if !found {
			pc.logger.Debug("no shortest path found",
				slog.Int("segment", i-1),
				slog.Float64("distance_to_next", point.DistanceToNextPoint),
			)
			pc.stats.IncNoShortestPathFound()
			return nil, errors.Wrapf(ErrNoShortestPath, "segment %d", i-1)
		}
		resultPath[i-1] = path
	}
	return resultPath, nil
}

// segmentMatch keeps preferred result and the first result with synthetic boundary edge
type segmentMatch struct {
	preferred EdgeVector
	fallback  EdgeVector
}

// offer registers valid path. Returns true when search for current segment is done.
func (m *segmentMatch) offer(path EdgeVector) bool {
	if path.HasFakeBoundary() {
		if m.fallback == nil {
			m.fallback = path
		}
		return false
	}
	m.preferred = path
	return true
}

func (m *segmentMatch) best() (EdgeVector, bool) {
	if m.preferred != nil {
		return m.preferred, true
	}
	if m.fallback != nil {
		return m.fallback, true
	}
	return nil, false
}

func (pc *PathsConnector) connectSegment(fromCandidates, toCandidates []EdgeVector, frc FunctionalRoadClass, distanceToNextPoint float64) *segmentMatch {
	match := &segmentMatch{}
	for _, from := range fromCandidates {
		for _, to := range toCandidates {
			path, ok := pc.connectAdjacentCandidateLines(from, to, frc, distanceToNextPoint)
			if !ok {
				continue
			}
			if !pc.validatePath(path, distanceToNextPoint) {
				continue
			}
			if match.offer(path) {
				return match
			}
		}
	}
	return match
}

// connectAdjacentCandidateLines joins two candidate lines either by their common edges or by the shortest bridge
func (pc *PathsConnector) connectAdjacentCandidateLines(from, to EdgeVector, frc FunctionalRoadClass, distanceToNextPoint float64) (EdgeVector, bool) {
	if len(from) == 0 || len(to) == 0 {
		return nil, false
	}

	skip, compatible := PathOverlappingLen(from, to)
	if !compatible {
		return nil, false
	}
	if skip > 0 {
		resultPath := make(EdgeVector, 0, len(from)+len(to)-skip)
		resultPath = append(resultPath, from...)
		resultPath = append(resultPath, to[skip:]...)
		return resultPath, true
	}

	// Zero overlap guarantees different boundary edges
	if from.Back() == to.Front() {
		return nil, false
	}

	shortestPath, found := pc.FindShortestPath(from.Back(), to.Front(), frc, distanceToNextPoint)
	if !found {
		return nil, false
	}

	// Boundary edges of both lines are already present in the bridge
	resultPath := make(EdgeVector, 0, len(from)+len(shortestPath)+len(to)-2)
	resultPath = append(resultPath, from[:len(from)-1]...)
	resultPath = append(resultPath, shortestPath...)
	resultPath = append(resultPath, to[1:]...)
	return resultPath, true
}

// validatePath checks if path length fits expected distance
func (pc *PathsConnector) validatePath(path EdgeVector, distanceToNextPoint float64) bool {
	pathLen := path.Length()
	if pc.logger.Enabled(context.Background(), slog.LevelDebug) {
		pc.logger.Debug("validating path",
			slog.String("path", path.String()),
			slog.Float64("length", pathLen),
		)
	}
	if !withinTolerance(pathLen, distanceToNextPoint, pc.pathLengthTolerance) {
		pc.logger.Debug("path does not meet required length constraints",
			slog.Float64("length", pathLen),
			slog.Float64("expected", distanceToNextPoint),
		)
		return false
	}
	return true
}

// withinTolerance reports whether |actual-expected|/expected <= tolerance.
// Zero expected distance accepts zero length only. Negative or NaN distances accept nothing.
func withinTolerance(actual, expected, tolerance float64) bool {
	if expected < 0 || math.IsNaN(expected) || math.IsNaN(actual) {
		return false
	}
	diff := math.Abs(actual - expected)
	if expected == 0 {
		return diff == 0
	}
	return diff/expected <= tolerance
}
