package olrpaths

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// OSMScanner is common part of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

var (
	ErrUnknownExtension = errors.New("file extension is not handled")
)

var (
	onewayForward = map[string]struct{}{
		"yes":  {},
		"1":    {},
		"true": {},
	}
	onewayBackward = map[string]struct{}{
		"-1":      {},
		"reverse": {},
	}
	onewayJunctions = map[string]struct{}{
		"roundabout": {},
		"circular":   {},
	}
	onewayImplied = map[string]struct{}{
		"motorway": {},
	}
)

// wayData is a filtered OSM way prepared for splitting into edges
type wayData struct {
	ID         osm.WayID
	Nodes      []osm.NodeID
	frc        FunctionalRoadClass
	oneway     bool
	isReversed bool
}

// ImportFromOSMFile imports road graph from *.osm (XML) or *.osm.pbf file
func ImportFromOSMFile(filename string, cfg *OsmConfiguration, logger *slog.Logger) (*RoadGraph, error) {
	var newScanner func(r io.Reader) OSMScanner
	// Guess file extension and prepare correct scanner
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		newScanner = func(r io.Reader) OSMScanner {
			return osmxml.New(context.Background(), r)
		}
	case ".pbf":
		newScanner = func(r io.Reader) OSMScanner {
			return osmpbf.New(context.Background(), r, 4)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownExtension, "extension '%s' for file '%s'", ext, filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	return ImportFromOSM(file, newScanner, cfg, logger)
}

// ImportFromOSM builds road graph from seekable OSM data. Data is scanned twice: for ways and then for nodes.
func ImportFromOSM(rs io.ReadSeeker, newScanner func(r io.Reader) OSMScanner, cfg *OsmConfiguration, logger *slog.Logger) (*RoadGraph, error) {
	if logger == nil {
		logger = slog.Default()
	}

	/* Process ways */
	st := time.Now()
	ways, useCount, err := scanWays(newScanner(rs), cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan ways")
	}
	logger.Info("ways processed", slog.Int("ways", len(ways)), slog.Duration("elapsed", time.Since(st)))

	// Seek file to start
	_, err = rs.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	st = time.Now()
	points, err := scanNodes(newScanner(rs), useCount)
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan nodes")
	}
	logger.Info("nodes processed", slog.Int("nodes", len(points)), slog.Duration("elapsed", time.Since(st)))

	/* Split ways into edges */
	st = time.Now()
	graph := NewRoadGraph()
	err = prepareEdges(graph, ways, useCount, points, logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare edges")
	}
	logger.Info("edges prepared",
		slog.Int("edges", graph.EdgesCount()),
		slog.Int("junctions", graph.JunctionsCount()),
		slog.Duration("elapsed", time.Since(st)),
	)
	return graph, nil
}

func scanWays(scanner OSMScanner, cfg *OsmConfiguration, logger *slog.Logger) ([]*wayData, map[osm.NodeID]int, error) {
	defer scanner.Close()
	ways := []*wayData{}
	useCount := make(map[osm.NodeID]int)
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tag := way.Tags.Find(cfg.EntityName)
		if tag == "" || !cfg.CheckTag(tag) {
			continue
		}
		if !isAccessibleByAuto(way.Tags) {
			continue
		}
		if len(way.Nodes) < 2 {
			logger.Warn("way with too few nodes met", slog.Int("nodes", len(way.Nodes)), slog.Int64("way_id", int64(way.ID)))
			continue
		}
		prepared := &wayData{
			ID:    way.ID,
			Nodes: make([]osm.NodeID, 0, len(way.Nodes)),
			frc:   getFRC(tag),
		}
		onewayText := way.Tags.Find("oneway")
		if _, ok := onewayForward[onewayText]; ok {
			prepared.oneway = true
		} else if _, ok := onewayBackward[onewayText]; ok {
			prepared.oneway = true
			prepared.isReversed = true
		} else if onewayText == "" {
			_, isJunction := onewayJunctions[way.Tags.Find("junction")]
			_, isImplied := onewayImplied[tag]
			prepared.oneway = isJunction || isImplied
		}
		for _, node := range way.Nodes {
			prepared.Nodes = append(prepared.Nodes, node.ID)
			useCount[node.ID]++
		}
		// Way's endpoints are always junctions
		useCount[prepared.Nodes[0]]++
		useCount[prepared.Nodes[len(prepared.Nodes)-1]]++
		ways = append(ways, prepared)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return ways, useCount, nil
}

func scanNodes(scanner OSMScanner, seen map[osm.NodeID]int) (map[osm.NodeID]orb.Point, error) {
	defer scanner.Close()
	points := make(map[osm.NodeID]orb.Point, len(seen))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, ok := seen[node.ID]; ok {
			points[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// prepareEdges splits every way at junctions. Each piece gives forward edge and backward one for two-way roads.
func prepareEdges(graph *RoadGraph, ways []*wayData, useCount map[osm.NodeID]int, points map[osm.NodeID]orb.Point, logger *slog.Logger) error {
	nextID := EdgeID(1)
	for _, way := range ways {
		nodes := way.Nodes
		if way.isReversed {
			nodes = slices.Clone(nodes)
			slices.Reverse(nodes)
		}
		geom := make(orb.LineString, 0, len(nodes))
		complete := true
		for _, nodeID := range nodes {
			pt, ok := points[nodeID]
			if !ok {
				complete = false
				break
			}
			geom = append(geom, pt)
		}
		if !complete {
			logger.Warn("way references missing node, skipping", slog.Int64("way_id", int64(way.ID)))
			continue
		}
		start := 0
		for k := 1; k < len(nodes); k++ {
			if k != len(nodes)-1 && useCount[nodes[k]] < 2 {
				continue
			}
			piece := slices.Clone(geom[start : k+1])
			forward := Edge{
				ID:     nextID,
				Source: JunctionID(nodes[start]),
				Target: JunctionID(nodes[k]),
				FRC:    way.frc,
			}
			nextID++
			if err := graph.AddEdge(forward, piece); err != nil {
				return errors.Wrapf(err, "Way ID: '%d'", way.ID)
			}
			if !way.oneway {
				reversedPiece := slices.Clone(piece)
				slices.Reverse(reversedPiece)
				backward := Edge{
					ID:     nextID,
					Source: JunctionID(nodes[k]),
					Target: JunctionID(nodes[start]),
					FRC:    way.frc,
				}
				nextID++
				if err := graph.AddEdge(backward, reversedPiece); err != nil {
					return errors.Wrapf(err, "Way ID: '%d'", way.ID)
				}
			}
			start = k
		}
	}
	return nil
}
