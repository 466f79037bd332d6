package olrpaths

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestIsAccessibleByAuto(t *testing.T) {
	tests := []struct {
		name       string
		tags       osm.Tags
		accessible bool
	}{
		{"plain road", osm.Tags{{Key: "highway", Value: "primary"}}, true},
		{"private", osm.Tags{{Key: "highway", Value: "residential"}, {Key: "access", Value: "private"}}, false},
		{"no motor vehicles", osm.Tags{{Key: "motor_vehicle", Value: "no"}}, false},
		{"parking aisle", osm.Tags{{Key: "highway", Value: "service"}, {Key: "service", Value: "parking_aisle"}}, false},
		{"private but cars allowed", osm.Tags{{Key: "access", Value: "no"}, {Key: "motorcar", Value: "yes"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.accessible, isAccessibleByAuto(tt.tags))
		})
	}
}
