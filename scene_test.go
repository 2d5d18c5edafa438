package scenetree

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	ws := NewWorkspace(golog.NewTestLogger(t))
	scene, err := ws.CreateScene("test", nil)
	test.That(t, err, test.ShouldBeNil)
	return scene
}

func TestSceneObjectAccess(t *testing.T) {
	scene := newTestScene(t)

	_, err := scene.Object("p")
	test.That(t, err, test.ShouldBeError, NewObjectNotFoundError("test", "p"))

	err = scene.SetObject("p", NewPoint(1, 2, 3))
	test.That(t, err, test.ShouldBeNil)
	obj, err := scene.Object("p")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, obj, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, scene.HasObject("p"), test.ShouldBeTrue)
	test.That(t, scene.Len(), test.ShouldEqual, 1)

	err = scene.DeleteObject("p")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.HasObject("p"), test.ShouldBeFalse)

	err = scene.DeleteObject("p")
	test.That(t, err, test.ShouldBeError, NewObjectNotFoundError("test", "p"))
}

func TestSceneUpdate(t *testing.T) {
	scene := newTestScene(t)

	err := scene.Update(map[string]interface{}{
		"p1": NewPoint(1, 0, 0),
		"p2": NewPoint(0, 1, 0),
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Len(), test.ShouldEqual, 2)

	ids, err := scene.ObjectIDs()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ids, test.ShouldResemble, []string{"p1", "p2"})
}

func TestAddPointsFromObservations(t *testing.T) {
	scene := newTestScene(t)

	err := scene.AddPointsFromObservations([]Observation{
		{"QP.F1", r3.Vector{X: 1, Y: 2, Z: 3}},
		{"QP.F1", r3.Vector{X: 1.1, Y: 2.1, Z: 3.1}},
		{"QP.F2", r3.Vector{X: 4, Y: 5, Z: 6}},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.Len(), test.ShouldEqual, 2)

	obj, err := scene.Object("QP.F1")
	test.That(t, err, test.ShouldBeNil)
	ps, ok := obj.(*PointSet)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, ps.Len(), test.ShouldEqual, 2)
	test.That(t, ps.Points()[0], test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	obj, err = scene.Object("QP.F2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, obj.(*PointSet).Len(), test.ShouldEqual, 1)

	// repeated coalescing overwrites the prior entry
	err = scene.AddPointsFromObservations([]Observation{
		{"QP.F1", r3.Vector{X: 9, Y: 9, Z: 9}},
	})
	test.That(t, err, test.ShouldBeNil)
	obj, err = scene.Object("QP.F1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, obj.(*PointSet).Len(), test.ShouldEqual, 1)
}

func TestScenePoint(t *testing.T) {
	scene := newTestScene(t)

	test.That(t, scene.SetObject("single", NewPoint(1, 2, 3)), test.ShouldBeNil)
	ps, err := NewPointSet(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 2, Y: 2, Z: 2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.SetObject("multi", ps), test.ShouldBeNil)
	test.That(t, scene.SetObject("other", "not a point"), test.ShouldBeNil)

	p, err := scene.Point("single")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	p, err = scene.Point("multi")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r3.Vector{X: 1, Y: 1, Z: 1})

	_, err = scene.Point("other")
	test.That(t, err, test.ShouldBeError, NewUnsupportedTypeError("not a point"))

	_, err = scene.Point("missing")
	test.That(t, err, test.ShouldBeError, NewObjectNotFoundError("test", "missing"))
}

func TestSceneMeanPositions(t *testing.T) {
	scene := newTestScene(t)

	test.That(t, scene.SetObject("p", NewPoint(1, 0, 0)), test.ShouldBeNil)
	ps, err := NewPointSet(r3.Vector{X: 0, Y: 2, Z: 0}, r3.Vector{X: 0, Y: 4, Z: 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.SetObject("ps", ps), test.ShouldBeNil)
	test.That(t, scene.SetObject("junk", 42), test.ShouldBeNil)

	positions, err := scene.MeanPositions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, positions, test.ShouldResemble, map[string]r3.Vector{
		"p":  {X: 1, Y: 0, Z: 0},
		"ps": {X: 0, Y: 3, Z: 0},
	})
}

func TestStaleSceneProxy(t *testing.T) {
	ws := NewWorkspace(golog.NewTestLogger(t))
	scene := &Scene{ws: ws, name: "ghost"}

	_, err := scene.Object("p")
	test.That(t, err, test.ShouldBeError, NewSceneNotFoundError("ghost"))
	test.That(t, scene.SetObject("p", NewPoint(0, 0, 0)), test.ShouldBeError, NewSceneNotFoundError("ghost"))
	test.That(t, scene.Len(), test.ShouldEqual, 0)
	test.That(t, scene.HasObject("p"), test.ShouldBeFalse)
}

func TestPointSet(t *testing.T) {
	_, err := NewPointSet()
	test.That(t, err, test.ShouldBeError, newEmptyPointSetError())

	src := []r3.Vector{{X: 1}, {Y: 1}}
	ps, err := NewPointSet(src...)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ps.Len(), test.ShouldEqual, 2)

	// members are copied in and copied out
	src[0] = r3.Vector{X: 99}
	test.That(t, ps.Points()[0], test.ShouldResemble, r3.Vector{X: 1})
	out := ps.Points()
	out[0] = r3.Vector{X: 42}
	test.That(t, ps.Points()[0], test.ShouldResemble, r3.Vector{X: 1})

	c := ps.Centroid()
	test.That(t, c.X, test.ShouldAlmostEqual, 0.5)
	test.That(t, c.Y, test.ShouldAlmostEqual, 0.5)
	test.That(t, c.Z, test.ShouldAlmostEqual, 0)

	ps.Add(r3.Vector{Z: 3})
	test.That(t, ps.Len(), test.ShouldEqual, 3)
	test.That(t, ps.Centroid().Z, test.ShouldAlmostEqual, 1)
}
