package olrpaths

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type JunctionID int64

type EdgeID int64

// Edge is a directed arc of road graph.
//
// Edge is a comparable value, so it could be used as a map key directly.
// Reversed edge always has its own ID and swapped endpoints.
type Edge struct {
	ID           EdgeID
	Source       JunctionID
	Target       JunctionID
	LengthMeters float64
	FRC          FunctionalRoadClass
	// Fake marks synthetic connector which is not backed by real road geometry
	Fake bool
}

// String returns pretty printed value for Edge
func (e Edge) String() string {
	if e.Fake {
		return fmt.Sprintf("fake#%d(%d->%d)", e.ID, e.Source, e.Target)
	}
	return fmt.Sprintf("#%d(%d->%d)", e.ID, e.Source, e.Target)
}

// CompareEdges is a strict total order over edges:
// source junction, target junction, ID, fake flag, length and FRC.
func CompareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Target, b.Target); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if a.Fake != b.Fake {
		if !a.Fake {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.LengthMeters, b.LengthMeters); c != 0 {
		return c
	}
	return cmp.Compare(a.FRC, b.FRC)
}

// EdgeVector is an ordered contiguous sequence of edges
type EdgeVector []Edge

var (
	ErrEmptyEdgeVector     = errors.New("edge sequence is empty")
	ErrNotContiguous       = errors.New("edge sequence is not contiguous")
	ErrDuplicateEdgeInPath = errors.New("edge sequence contains duplicate edge")
)

// Front returns first edge. Panics on empty vector
func (ev EdgeVector) Front() Edge {
	return ev[0]
}

// Back returns last edge. Panics on empty vector
func (ev EdgeVector) Back() Edge {
	return ev[len(ev)-1]
}

// Length returns sum of edges lengths (meters)
func (ev EdgeVector) Length() float64 {
	total := 0.0
	for _, e := range ev {
		total += e.LengthMeters
	}
	return total
}

func (ev EdgeVector) Clone() EdgeVector {
	if ev == nil {
		return nil
	}
	cp := make(EdgeVector, len(ev))
	copy(cp, ev)
	return cp
}

func (ev EdgeVector) IDs() []EdgeID {
	ids := make([]EdgeID, len(ev))
	for i, e := range ev {
		ids[i] = e.ID
	}
	return ids
}

// HasFakeBoundary checks if either first or last edge is synthetic
func (ev EdgeVector) HasFakeBoundary() bool {
	if len(ev) == 0 {
		return false
	}
	return ev.Front().Fake || ev.Back().Fake
}

func (ev EdgeVector) String() string {
	parts := make([]string, len(ev))
	for i, e := range ev {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks that sequence is non-empty, contiguous and has no repeated edges
func (ev EdgeVector) Validate() error {
	if len(ev) == 0 {
		return ErrEmptyEdgeVector
	}
	seen := make(map[Edge]struct{}, len(ev))
	for i, e := range ev {
		if _, ok := seen[e]; ok {
			return errors.Wrapf(ErrDuplicateEdgeInPath, "edge %s at position %d", e, i)
		}
		seen[e] = struct{}{}
		if i > 0 && ev[i-1].Target != e.Source {
			return errors.Wrapf(ErrNotContiguous, "edges %s and %s", ev[i-1], e)
		}
	}
	return nil
}
