package olrpaths

// LocationReferencePoint is a waypoint of encoded location reference
type LocationReferencePoint struct {
	FRC FunctionalRoadClass
	// DistanceToNextPoint is expected length (meters) of path to the next point. Unused for the last point.
	DistanceToNextPoint float64
}

// LocationReference groups reference points with candidate lines for each of them
type LocationReference struct {
	ID         string
	Points     []LocationReferencePoint
	Candidates [][]EdgeVector
}
