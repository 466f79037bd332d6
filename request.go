package olrpaths

import (
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Requests is a decoding task: synthetic edges to be added to the graph and location references to decode.
// Both YAML and JSON files are accepted.
type Requests struct {
	FakeEdges  []FakeEdgeRequest  `yaml:"fake_edges"`
	References []ReferenceRequest `yaml:"references"`

	// generated edge ID to alias, filled by Resolve
	aliasOf map[EdgeID]EdgeID
}

// FakeEdgeRequest describes synthetic connector. Alias is the ID which candidates use to refer to this edge.
type FakeEdgeRequest struct {
	Alias        EdgeID       `yaml:"id"`
	Source       JunctionID   `yaml:"source"`
	Target       JunctionID   `yaml:"target"`
	FRC          uint8        `yaml:"frc"`
	LengthMeters float64      `yaml:"length_meters"`
	Geom         [][2]float64 `yaml:"geom"`
}

type PointRequest struct {
	FRC            uint8   `yaml:"frc"`
	DistanceToNext float64 `yaml:"distance_to_next"`
}

type ReferenceRequest struct {
	ID         string         `yaml:"id"`
	Points     []PointRequest `yaml:"points"`
	Candidates [][][]EdgeID   `yaml:"candidates"`
}

var (
	ErrFakeAliasClash   = errors.New("fake edge alias clashes with existing edge")
	ErrBadFRC           = errors.New("functional road class must be in range [0; 7]")
	ErrNegativeDistance = errors.New("distance to next point must be non-negative")
)

func LoadRequests(fname string) (*Requests, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read requests file")
	}
	reqs := Requests{}
	err = yaml.Unmarshal(data, &reqs)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse requests file")
	}
	return &reqs, nil
}

// Resolve registers fake edges in the graph and turns edge identifiers into edge sequences.
// Every candidate is validated to be contiguous and free of repeated edges.
func (reqs *Requests) Resolve(graph *RoadGraph) ([]LocationReference, error) {
	aliases := make(map[EdgeID]Edge, len(reqs.FakeEdges))
	reqs.aliasOf = make(map[EdgeID]EdgeID, len(reqs.FakeEdges))
	for i, fe := range reqs.FakeEdges {
		if fe.FRC > uint8(FRC7) {
			return nil, errors.Wrapf(ErrBadFRC, "fake edge #%d", i)
		}
		if fe.Alias != 0 {
			if _, ok := graph.Edge(fe.Alias); ok {
				return nil, errors.Wrapf(ErrFakeAliasClash, "alias %d", fe.Alias)
			}
			if _, ok := aliases[fe.Alias]; ok {
				return nil, errors.Wrapf(ErrFakeAliasClash, "alias %d is repeated", fe.Alias)
			}
		}
		var geom orb.LineString
		if len(fe.Geom) > 0 {
			geom = make(orb.LineString, len(fe.Geom))
			for j, pt := range fe.Geom {
				geom[j] = orb.Point{pt[0], pt[1]}
			}
		}
		edge, err := graph.AddFakeEdge(fe.Source, fe.Target, FunctionalRoadClass(fe.FRC), fe.LengthMeters, geom)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add fake edge #%d", i)
		}
		if fe.Alias != 0 {
			aliases[fe.Alias] = edge
			reqs.aliasOf[edge.ID] = fe.Alias
		}
	}

	lookup := func(id EdgeID) (Edge, bool) {
		if edge, ok := aliases[id]; ok {
			return edge, true
		}
		return graph.Edge(id)
	}

	refs := make([]LocationReference, 0, len(reqs.References))
	for _, rr := range reqs.References {
		ref := LocationReference{
			ID:         rr.ID,
			Points:     make([]LocationReferencePoint, len(rr.Points)),
			Candidates: make([][]EdgeVector, len(rr.Candidates)),
		}
		for i, pt := range rr.Points {
			if pt.FRC > uint8(FRC7) {
				return nil, errors.Wrapf(ErrBadFRC, "reference '%s', point %d", rr.ID, i)
			}
			if pt.DistanceToNext < 0 || math.IsNaN(pt.DistanceToNext) {
				return nil, errors.Wrapf(ErrNegativeDistance, "reference '%s', point %d", rr.ID, i)
			}
			ref.Points[i] = LocationReferencePoint{
				FRC:                 FunctionalRoadClass(pt.FRC),
				DistanceToNextPoint: pt.DistanceToNext,
			}
		}
		for i, lines := range rr.Candidates {
			ref.Candidates[i] = make([]EdgeVector, 0, len(lines))
			for j, ids := range lines {
				line := make(EdgeVector, 0, len(ids))
				for _, id := range ids {
					edge, ok := lookup(id)
					if !ok {
						return nil, errors.Wrapf(ErrEdgeNotFound, "reference '%s', point %d, candidate %d, edge %d", rr.ID, i, j, id)
					}
					line = append(line, edge)
				}
				if err := line.Validate(); err != nil {
					return nil, errors.Wrapf(err, "reference '%s', point %d, candidate %d", rr.ID, i, j)
				}
				ref.Candidates[i] = append(ref.Candidates[i], line)
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// EdgeAliases returns mapping from generated fake edge IDs to the aliases used in request file.
// Empty until Resolve is called.
func (reqs *Requests) EdgeAliases() map[EdgeID]EdgeID {
	return reqs.aliasOf
}
