package olrpaths

// FlattenPath concatenates per-segment paths into a single route.
// Common edges on the seam of adjacent segments are kept once.
func FlattenPath(resultPath []EdgeVector) EdgeVector {
	route := EdgeVector{}
	for _, part := range resultPath {
		skip, ok := PathOverlappingLen(route, part)
		if !ok {
			skip = 0
		}
		route = append(route, part[skip:]...)
	}
	return route
}

// PathLength returns total length (meters) of all segments
func PathLength(resultPath []EdgeVector) float64 {
	total := 0.0
	for _, part := range resultPath {
		total += part.Length()
	}
	return total
}
