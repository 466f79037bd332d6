package olrpaths

// FunctionalRoadClass is an ordinal category of road importance: FRC0 is the most important one.
type FunctionalRoadClass uint8

const (
	FRC0 = FunctionalRoadClass(iota)
	FRC1
	FRC2
	FRC3
	FRC4
	FRC5
	FRC6
	FRC7
)

func (iotaIdx FunctionalRoadClass) String() string {
	if iotaIdx > FRC7 {
		return "undefined"
	}
	return [...]string{"FRC0", "FRC1", "FRC2", "FRC3", "FRC4", "FRC5", "FRC6", "FRC7"}[iotaIdx]
}

// getFRC returns functional road class for given value of OSM `highway` tag
func getFRC(highway string) FunctionalRoadClass {
	if found, ok := frcByHighway[highway]; ok {
		return found
	}
	return FRC7
}

var (
	frcByHighway = map[string]FunctionalRoadClass{
		"motorway":       FRC0,
		"motorway_link":  FRC0,
		"trunk":          FRC0,
		"trunk_link":     FRC0,
		"primary":        FRC1,
		"primary_link":   FRC1,
		"secondary":      FRC2,
		"secondary_link": FRC2,
		"tertiary":       FRC3,
		"tertiary_link":  FRC3,
		"road":           FRC4,
		"unclassified":   FRC4,
		"residential":    FRC5,
		"living_street":  FRC5,
		"service":        FRC6,
		"services":       FRC6,
		"track":          FRC7,
	}
)
