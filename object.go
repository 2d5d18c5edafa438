package scenetree

import "github.com/golang/geo/r3"

// NewPoint returns a single 3D point observation. Points are stored in
// scenes as plain r3.Vector values.
func NewPoint(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// PointSet is an ordered, non-empty sequence of 3D observations sharing one
// identity, e.g. repeated measurements of the same physical marker.
type PointSet struct {
	points []r3.Vector
}

// NewPointSet returns a PointSet holding copies of the given points. At
// least one point is required.
func NewPointSet(points ...r3.Vector) (*PointSet, error) {
	if len(points) == 0 {
		return nil, newEmptyPointSetError()
	}
	return &PointSet{points: append([]r3.Vector{}, points...)}, nil
}

// Len returns the number of member points.
func (ps *PointSet) Len() int {
	return len(ps.points)
}

// Points returns a copy of the member points in order.
func (ps *PointSet) Points() []r3.Vector {
	return append([]r3.Vector{}, ps.points...)
}

// Centroid returns the arithmetic mean of the member points.
func (ps *PointSet) Centroid() r3.Vector {
	var sum r3.Vector
	for _, p := range ps.points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(ps.points)))
}

// Add appends points to the set in order.
func (ps *PointSet) Add(points ...r3.Vector) {
	ps.points = append(ps.points, points...)
}

// meanPosition reduces a stored object to a single representative position:
// a point maps to itself, a point set to its centroid.
func meanPosition(obj interface{}) (r3.Vector, error) {
	switch o := obj.(type) {
	case r3.Vector:
		return o, nil
	case *PointSet:
		return o.Centroid(), nil
	default:
		return r3.Vector{}, NewUnsupportedTypeError(obj)
	}
}

type unsupportedMarker struct{}

// Unsupported is returned by View.GetObject in place of object kinds that
// cannot be projected into the reference frame, so batch callers can skip
// them instead of aborting.
var Unsupported unsupportedMarker
