package spatialmath

import "github.com/pkg/errors"

func newBadMatrixShapeError(rows, cols int) error {
	return errors.Errorf("expected a 4x4 homogeneous matrix but got %dx%d", rows, cols)
}

func newBadRotationShapeError(rows, cols int) error {
	return errors.Errorf("expected a 3x3 rotation matrix but got %dx%d", rows, cols)
}

func newBadBottomRowError(a, b, c, d float64) error {
	return errors.Errorf("bottom row of a homogeneous transform must be [0 0 0 1], got [%v %v %v %v]", a, b, c, d)
}

func newCorrespondenceMismatchError(from, to int) error {
	return errors.Errorf("point correspondence mismatch: %d source points versus %d destination points", from, to)
}

func newTooFewCorrespondencesError(found int) error {
	return errors.Errorf("need at least %d point correspondences for a rigid fit, found %d", MinFitPoints, found)
}
