package domain

import "sort"

// MinBoundaryPoints is the number of points needed to close a polygon.
const MinBoundaryPoints = 3

// BoundaryPoint is one vertex of a section's polygon.
type BoundaryPoint struct {
	Latitude  float64
	Longitude float64
	Order     int
}

// Section is a geographic voting area.
type Section struct {
	ID             int64
	Name           string
	State          EntityState
	BoundaryPoints []BoundaryPoint
}

// OrderedBoundary returns a copy of the boundary points sorted by Order.
// Points sharing an Order keep their received sequence.
func (s *Section) OrderedBoundary() []BoundaryPoint {
	pts := make([]BoundaryPoint, len(s.BoundaryPoints))
	copy(pts, s.BoundaryPoints)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Order < pts[j].Order
	})
	return pts
}

// IsClosed reports whether the boundary has enough points to form a polygon.
func (s *Section) IsClosed() bool {
	return len(s.BoundaryPoints) >= MinBoundaryPoints
}
