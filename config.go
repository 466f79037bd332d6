package olrpaths

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is a configuration of decoding pipeline
type Config struct {
	PathLengthTolerance float64          `yaml:"path_length_tolerance"`
	BridgeSlackMeters   float64          `yaml:"bridge_slack_meters"`
	Workers             int              `yaml:"workers"`
	UseContraction      bool             `yaml:"use_contraction"`
	OSM                 OsmConfiguration `yaml:"osm"`
}

var (
	ErrBadTolerance = errors.New("path_length_tolerance must be non-negative")
	ErrBadSlack     = errors.New("bridge_slack_meters must be non-negative")
	ErrBadWorkers   = errors.New("workers must be positive")
	ErrBadEntity    = errors.New("osm.entity_name must be non-empty")
)

func DefaultConfig() Config {
	return Config{
		PathLengthTolerance: DefaultPathLengthTolerance,
		BridgeSlackMeters:   DefaultBridgeSlackMeters,
		Workers:             runtime.NumCPU(),
		UseContraction:      false,
		OSM:                 DefaultOsmConfiguration(),
	}
}

// LoadConfig reads YAML configuration on top of defaults and applies environment overrides.
// Empty path or missing file leaves defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrap(err, "Can't read config file")
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrap(err, "Can't parse config file")
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "Invalid config")
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("OLRPATHS_PATH_LENGTH_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "OLRPATHS_PATH_LENGTH_TOLERANCE")
		}
		cfg.PathLengthTolerance = f
	}
	if v := os.Getenv("OLRPATHS_BRIDGE_SLACK_METERS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "OLRPATHS_BRIDGE_SLACK_METERS")
		}
		cfg.BridgeSlackMeters = f
	}
	if v := os.Getenv("OLRPATHS_WORKERS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "OLRPATHS_WORKERS")
		}
		cfg.Workers = i
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.PathLengthTolerance < 0 {
		return ErrBadTolerance
	}
	if cfg.BridgeSlackMeters < 0 {
		return ErrBadSlack
	}
	if cfg.Workers <= 0 {
		return ErrBadWorkers
	}
	if cfg.OSM.EntityName == "" {
		return ErrBadEntity
	}
	return nil
}

// ConnectorOptions converts configuration into PathsConnector options
func (cfg Config) ConnectorOptions(logger *slog.Logger) []func(*PathsConnector) {
	return []func(*PathsConnector){
		WithPathLengthTolerance(cfg.PathLengthTolerance),
		WithBridgeSlack(cfg.BridgeSlackMeters),
		WithLogger(logger),
	}
}
