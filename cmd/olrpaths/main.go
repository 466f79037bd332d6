package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/LdDl/olrpaths"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	osmFileName = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf or *.osm file")
	configFile  = flag.String("config", "", "Filename of YAML configuration. Defaults are used if empty")
	requestFile = flag.String("request", "requests.yaml", "Filename of YAML/JSON file with fake edges and location references to decode")
	out         = flag.String("out", "decoded.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file with decoded paths")
	geomFormat  = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	contract    = flag.Bool("contract", false, "Prepare contraction hierarchies for bridge pruning? Overrides config when set")
	workers     = flag.Int("workers", 0, "Number of parallel decoders. Config value is used if zero")
	metricsFile = flag.String("metrics", "", "Filename for Prometheus textfile metrics. Skipped if empty")
	verbose     = flag.Bool("verbose", false, "Print debug information about path attempts")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("decoding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := olrpaths.LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *contract {
		cfg.UseContraction = true
	}
	format := olrpaths.GeomFormat(strings.ToLower(*geomFormat))
	if format != olrpaths.GeomFormatWKT && format != olrpaths.GeomFormatGeoJSON {
		return errors.Errorf("unknown geometry format '%s'", *geomFormat)
	}

	graph, err := olrpaths.ImportFromOSMFile(*osmFileName, &cfg.OSM, logger)
	if err != nil {
		return errors.Wrap(err, "Can't import OSM data")
	}

	reqs, err := olrpaths.LoadRequests(*requestFile)
	if err != nil {
		return err
	}
	refs, err := reqs.Resolve(graph)
	if err != nil {
		return errors.Wrap(err, "Can't resolve requests")
	}

	registry := prometheus.NewRegistry()
	promStats, err := olrpaths.NewPrometheusStats(registry)
	if err != nil {
		return err
	}
	localStats := &olrpaths.Stats{}

	options := cfg.ConnectorOptions(logger)
	if cfg.UseContraction {
		estimator, err := olrpaths.NewCHEstimator(graph, logger)
		if err != nil {
			return errors.Wrap(err, "Can't prepare contraction hierarchies")
		}
		options = append(options, olrpaths.WithLowerBoundEstimator(estimator))
	}
	connector := olrpaths.NewPathsConnector(graph, olrpaths.MultiStats{localStats, promStats}, options...)

	st := time.Now()
	results, err := olrpaths.DecodeBatch(context.Background(), connector, refs, cfg.Workers, promStats)
	if err != nil {
		return errors.Wrap(err, "Batch decoding interrupted")
	}
	logger.Info("decoding done",
		slog.Int("references", len(refs)),
		slog.Uint64("no_shortest_path_found", localStats.NoShortestPathFound()),
		slog.Duration("elapsed", time.Since(st)),
	)

	err = olrpaths.ExportResultsToCSV(*out, graph, results, format, reqs.EdgeAliases())
	if err != nil {
		return errors.Wrap(err, "Can't export results")
	}

	if *metricsFile != "" {
		err = prometheus.WriteToTextfile(*metricsFile, registry)
		if err != nil {
			return errors.Wrap(err, "Can't write metrics")
		}
	}
	return nil
}
