package olrpaths

// OsmConfiguration Allows to filter ways by certain tags from OSM data
type OsmConfiguration struct {
	EntityName string   `yaml:"entity_name"` // Currrently we support 'highway' only
	Tags       []string `yaml:"tags"`
}

// DefaultOsmConfiguration returns configuration for drivable roads
func DefaultOsmConfiguration() OsmConfiguration {
	return OsmConfiguration{
		EntityName: "highway",
		Tags: []string{
			"motorway", "motorway_link", "trunk", "trunk_link",
			"primary", "primary_link", "secondary", "secondary_link",
			"tertiary", "tertiary_link", "road", "unclassified",
			"residential", "living_street", "service",
		},
	}
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}
