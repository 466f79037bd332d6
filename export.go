package olrpaths

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type GeomFormat string

const (
	GeomFormatWKT     = GeomFormat("wkt")
	GeomFormatGeoJSON = GeomFormat("geojson")
)

// prepareGeom returns text representation of line in given format
func prepareGeom(line orb.LineString, format GeomFormat) string {
	if len(line) < 2 {
		return ""
	}
	if format == GeomFormatGeoJSON {
		return PrepareGeoJSONLinestring(line)
	}
	return PrepareWKTLinestring(line)
}

// ExportResultsToCSV writes one row per decoded segment and one row per failed location reference.
// Edges found in aliases are written with their alias instead of generated ID; aliases may be nil.
func ExportResultsToCSV(fname string, graph *RoadGraph, results []DecodeResult, format GeomFormat, aliases map[EdgeID]EdgeID) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	// 		reference_id - string, ID of location reference
	// 		status - string, 'ok' or error text
	// 		segment - int, index of adjacent points pair (-1 for failures)
	// 		edge_ids - string, comma-separated IDs of edges
	// 		length_meters - float64, length of segment's path
	// 		geom - geometry (WKT or GeoJSON representation)
	err = writer.Write([]string{"reference_id", "status", "segment", "edge_ids", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, res := range results {
		if res.Err != nil {
			err = writer.Write([]string{res.ReferenceID, res.Err.Error(), "-1", "", "", ""})
			if err != nil {
				return errors.Wrap(err, "Can't write failure")
			}
			continue
		}
		for i, part := range res.Path {
			ids := make([]string, len(part))
			for j, edge := range part {
				id := edge.ID
				if alias, ok := aliases[id]; ok {
					id = alias
				}
				ids[j] = fmt.Sprintf("%d", id)
			}
			err = writer.Write([]string{
				res.ReferenceID,
				"ok",
				fmt.Sprintf("%d", i),
				strings.Join(ids, ","),
				fmt.Sprintf("%f", part.Length()),
				prepareGeom(graph.PathGeometry(part), format),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write segment")
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush CSV")
	}
	return nil
}
