package scenetree

import (
	"github.com/gobwas/glob"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/scenetree/spatialmath"
)

// View projects objects from the scenes of one configuration into a single
// reference frame. It holds no state beyond the configuration and the
// reference scene name and always recomputes transforms against the current
// graph.
type View struct {
	config    *Configuration
	reference string
}

// ReferenceScene returns the name of the scene whose frame query results are
// expressed in.
func (v *View) ReferenceScene() string {
	return v.reference
}

// GetObject fetches one object and expresses it in the reference frame. A
// point maps to a single transformed point; a point set maps member-wise,
// preserving count and order. Object kinds that cannot be projected yield
// the Unsupported sentinel rather than an error, so batch callers can skip
// them.
func (v *View) GetObject(sceneName, objectID string) (interface{}, error) {
	tf, err := v.config.Transform(sceneName, v.reference)
	if err != nil {
		return nil, err
	}
	scene, err := v.config.ws.Scene(sceneName)
	if err != nil {
		return nil, err
	}
	obj, err := scene.Object(objectID)
	if err != nil {
		return nil, err
	}
	return transformObject(tf, obj), nil
}

// Query matches object identities against a glob pattern across the
// reference scene and every scene connected to it, restricted to fromScenes
// when given. Matches are expressed in the reference frame, and matches
// sharing an identity are consolidated into one PointSet regardless of which
// scenes they came from. Unsupported object kinds and scenes with no path to
// the reference are skipped. Naming a nonexistent scene in fromScenes is a
// caller error and fails with not found.
func (v *View) Query(pattern string, fromScenes ...string) (map[string]*PointSet, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid object pattern %q", pattern)
	}
	g, err := v.config.graph()
	if err != nil {
		return nil, err
	}

	sceneNames := fromScenes
	if len(sceneNames) == 0 {
		sceneNames = v.config.ws.SceneNames()
	} else {
		for _, name := range sceneNames {
			if !v.config.ws.HasScene(name) {
				return nil, NewSceneNotFoundError(name)
			}
		}
	}

	results := map[string]*PointSet{}
	for _, sceneName := range sceneNames {
		tf := spatialmath.NewTransform()
		if sceneName != v.reference {
			if !g.Connected(sceneName, v.reference) {
				continue
			}
			if tf, err = g.Transform(sceneName, v.reference); err != nil {
				return nil, err
			}
		}
		scene, err := v.config.ws.Scene(sceneName)
		if err != nil {
			return nil, err
		}
		ids, err := scene.ObjectIDs()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !matcher.Match(id) {
				continue
			}
			obj, err := scene.Object(id)
			if err != nil {
				return nil, err
			}
			var members []r3.Vector
			switch projected := transformObject(tf, obj).(type) {
			case r3.Vector:
				members = []r3.Vector{projected}
			case *PointSet:
				members = projected.Points()
			default:
				continue
			}
			if existing, ok := results[id]; ok {
				existing.Add(members...)
			} else {
				results[id] = &PointSet{points: members}
			}
		}
	}
	return results, nil
}

// transformObject expresses a stored object in another frame, passing
// through the Unsupported sentinel for kinds it cannot project.
func transformObject(tf *spatialmath.Transform, obj interface{}) interface{} {
	switch o := obj.(type) {
	case r3.Vector:
		return tf.TransformPoint(o)
	case *PointSet:
		pts := o.Points()
		for i, p := range pts {
			pts[i] = tf.TransformPoint(p)
		}
		return &PointSet{points: pts}
	default:
		return Unsupported
	}
}
