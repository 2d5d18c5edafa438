// Package spatialmath implements the rigid-transform math used to relate
// scene coordinate frames: 4x4 homogeneous transforms and best-fit rigid
// registration between corresponding point sets.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Transform is a 4x4 homogeneous rigid transform in row-major order. The
// bottom row is always [0 0 0 1]. A point p expressed in the source frame
// maps to T·p in the destination frame. Transforms are immutable once
// created; every accessor returns a copy.
type Transform struct {
	m *mat.Dense
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return &Transform{m: m}
}

// NewTransformFromTranslation returns a pure translation by t.
func NewTransformFromTranslation(t r3.Vector) *Transform {
	tf := NewTransform()
	tf.m.Set(0, 3, t.X)
	tf.m.Set(1, 3, t.Y)
	tf.m.Set(2, 3, t.Z)
	return tf
}

// NewTransformFromRotationTranslation assembles [R t; 0 1] from a 3x3
// rotation matrix and a translation vector.
func NewTransformFromRotationTranslation(rot mat.Matrix, t r3.Vector) (*Transform, error) {
	if r, c := rot.Dims(); r != 3 || c != 3 {
		return nil, newBadRotationShapeError(r, c)
	}
	tf := NewTransformFromTranslation(t)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tf.m.Set(i, j, rot.At(i, j))
		}
	}
	return tf, nil
}

// NewTransformFromMatrix copies a 4x4 homogeneous matrix into a Transform.
// The bottom row must be exactly [0 0 0 1].
func NewTransformFromMatrix(m mat.Matrix) (*Transform, error) {
	if r, c := m.Dims(); r != 4 || c != 4 {
		return nil, newBadMatrixShapeError(r, c)
	}
	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 || m.At(3, 3) != 1 {
		return nil, newBadBottomRowError(m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3))
	}
	return &Transform{m: mat.DenseCopyOf(m)}, nil
}

// Compose returns the transform a·b, the result of applying b first and
// then a.
func Compose(a, b *Transform) *Transform {
	var out mat.Dense
	out.Mul(a.m, b.m)
	// guard the bottom row against accumulated floating error
	out.Set(3, 0, 0)
	out.Set(3, 1, 0)
	out.Set(3, 2, 0)
	out.Set(3, 3, 1)
	return &Transform{m: &out}
}

// Invert returns the rigid inverse [Rᵀ −Rᵀt; 0 1].
func (tf *Transform) Invert() *Transform {
	out := NewTransform()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.m.Set(i, j, tf.m.At(j, i))
		}
	}
	t := tf.Translation()
	for i := 0; i < 3; i++ {
		out.m.Set(i, 3, -(out.m.At(i, 0)*t.X + out.m.At(i, 1)*t.Y + out.m.At(i, 2)*t.Z))
	}
	return out
}

// TransformPoint maps a point from the source frame into the destination
// frame.
func (tf *Transform) TransformPoint(p r3.Vector) r3.Vector {
	return r3.Vector{
		X: tf.m.At(0, 0)*p.X + tf.m.At(0, 1)*p.Y + tf.m.At(0, 2)*p.Z + tf.m.At(0, 3),
		Y: tf.m.At(1, 0)*p.X + tf.m.At(1, 1)*p.Y + tf.m.At(1, 2)*p.Z + tf.m.At(1, 3),
		Z: tf.m.At(2, 0)*p.X + tf.m.At(2, 1)*p.Y + tf.m.At(2, 2)*p.Z + tf.m.At(2, 3),
	}
}

// Translation returns the translation column of the transform.
func (tf *Transform) Translation() r3.Vector {
	return r3.Vector{X: tf.m.At(0, 3), Y: tf.m.At(1, 3), Z: tf.m.At(2, 3)}
}

// Rotation returns a copy of the 3x3 rotation block.
func (tf *Transform) Rotation() *mat.Dense {
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, tf.m.At(i, j))
		}
	}
	return rot
}

// Matrix returns a copy of the full 4x4 matrix.
func (tf *Transform) Matrix() *mat.Dense {
	return mat.DenseCopyOf(tf.m)
}

// AlmostEqual reports whether every element of the two transforms agrees
// within tol.
func (tf *Transform) AlmostEqual(other *Transform, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(tf.m.At(i, j)-other.m.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
