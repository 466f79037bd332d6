package olrpaths

import (
	"github.com/paulmach/osm"
)

// Tags which make way unavailable for motor vehicles
var autoAccessExclude = map[string]map[string]struct{}{
	"motor_vehicle": {
		"no": {},
	},
	"motorcar": {
		"no": {},
	},
	"access": {
		"no":      {},
		"private": {},
	},
	"service": {
		"parking":          {},
		"parking_aisle":    {},
		"driveway":         {},
		"private":          {},
		"emergency_access": {},
	},
}

// Tags which grant access to motor vehicles even if `access` forbids it
var autoAccessInclude = map[string]map[string]struct{}{
	"motor_vehicle": {
		"yes": {},
	},
	"motorcar": {
		"yes": {},
	},
}

// isAccessibleByAuto checks access-related tags of the way
func isAccessibleByAuto(tags osm.Tags) bool {
	for key, values := range autoAccessInclude {
		if _, ok := values[tags.Find(key)]; ok {
			return true
		}
	}
	for key, values := range autoAccessExclude {
		if _, ok := values[tags.Find(key)]; ok {
			return false
		}
	}
	return true
}
