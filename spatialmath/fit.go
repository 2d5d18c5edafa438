package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MinFitPoints is the minimum number of correspondences for a well-posed 3D
// rigid fit.
const MinFitPoints = 3

// BestFitTransform computes the rigid transform that maps the from points
// onto the to points with least-squares residual. Correspondence is
// positional: from[i] pairs with to[i]. The rotation is solved with the
// Kabsch algorithm (orthogonal Procrustes, no scaling, reflections
// excluded); the result is independent of the order of the correspondences.
func BestFitTransform(from, to []r3.Vector) (*Transform, error) {
	if len(from) != len(to) {
		return nil, newCorrespondenceMismatchError(len(from), len(to))
	}
	if len(from) < MinFitPoints {
		return nil, newTooFewCorrespondencesError(len(from))
	}

	fromCentroid := centroid(from)
	toCentroid := centroid(to)

	// cross-covariance of the centered clouds: H = Σ (fᵢ−f̄)(tᵢ−t̄)ᵀ
	h := mat.NewDense(3, 3, nil)
	for i := range from {
		f := from[i].Sub(fromCentroid)
		t := to[i].Sub(toCentroid)
		fc := [3]float64{f.X, f.Y, f.Z}
		tc := [3]float64{t.X, t.Y, t.Z}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				h.Set(r, c, h.At(r, c)+fc[r]*tc[c])
			}
		}
	}

	var svd mat.SVD
	if !svd.Factorize(h, mat.SVDFull) {
		return nil, errors.New("failed to factorize cross-covariance matrix")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// R = V·D·Uᵀ with D = diag(1, 1, det(V·Uᵀ)) so a reflection can never
	// masquerade as the optimal rotation.
	var vut mat.Dense
	vut.Mul(&v, u.T())
	d := 1.0
	if mat.Det(&vut) < 0 {
		d = -1.0
	}
	corr := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, d})
	var vd, rot mat.Dense
	vd.Mul(&v, corr)
	rot.Mul(&vd, u.T())

	translation := toCentroid.Sub(applyRotation(&rot, fromCentroid))
	return NewTransformFromRotationTranslation(&rot, translation)
}

func centroid(pts []r3.Vector) r3.Vector {
	var sum r3.Vector
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

func applyRotation(rot *mat.Dense, p r3.Vector) r3.Vector {
	return r3.Vector{
		X: rot.At(0, 0)*p.X + rot.At(0, 1)*p.Y + rot.At(0, 2)*p.Z,
		Y: rot.At(1, 0)*p.X + rot.At(1, 1)*p.Y + rot.At(1, 2)*p.Z,
		Z: rot.At(2, 0)*p.X + rot.At(2, 1)*p.Y + rot.At(2, 2)*p.Z,
	}
}
