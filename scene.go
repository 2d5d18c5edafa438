package scenetree

import (
	"sort"

	"github.com/golang/geo/r3"
)

// Scene is a proxy providing keyed access to the objects of one scene. It
// references data owned by the parent workspace; retrieve a fresh proxy from
// the workspace rather than storing one long-term.
type Scene struct {
	ws   *Workspace
	name string
}

// Observation is one raw sighting of an identified point.
type Observation struct {
	ObjectID    string
	Coordinates r3.Vector
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

func (s *Scene) data() (map[string]interface{}, error) {
	data, ok := s.ws.scenes[s.name]
	if !ok {
		return nil, NewSceneNotFoundError(s.name)
	}
	return data, nil
}

// Object returns the object stored under an identity.
func (s *Scene) Object(objectID string) (interface{}, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}
	obj, ok := data[objectID]
	if !ok {
		return nil, NewObjectNotFoundError(s.name, objectID)
	}
	return obj, nil
}

// SetObject stores an object under an identity, overwriting any prior entry.
func (s *Scene) SetObject(objectID string, obj interface{}) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	data[objectID] = obj
	return nil
}

// DeleteObject removes the object stored under an identity.
func (s *Scene) DeleteObject(objectID string) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	if _, ok := data[objectID]; !ok {
		return NewObjectNotFoundError(s.name, objectID)
	}
	delete(data, objectID)
	return nil
}

// HasObject reports whether an identity is present in the scene.
func (s *Scene) HasObject(objectID string) bool {
	data, err := s.data()
	if err != nil {
		return false
	}
	_, ok := data[objectID]
	return ok
}

// Len returns the number of objects in the scene, or 0 if the scene no
// longer exists in the workspace.
func (s *Scene) Len() int {
	data, err := s.data()
	if err != nil {
		return 0
	}
	return len(data)
}

// ObjectIDs returns the sorted identities of every object in the scene.
func (s *Scene) ObjectIDs() ([]string, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Update batch-merges an identity→object mapping into the scene.
func (s *Scene) Update(objects map[string]interface{}) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	for id, obj := range objects {
		data[id] = obj
	}
	return nil
}

// AddPointsFromObservations coalesces raw point observations into the scene:
// all coordinates sharing an identity become one PointSet in observation
// order, overwriting any prior entry for that identity.
func (s *Scene) AddPointsFromObservations(observations []Observation) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	grouped := map[string][]r3.Vector{}
	for _, obs := range observations {
		grouped[obs.ObjectID] = append(grouped[obs.ObjectID], obs.Coordinates)
	}
	for id, coords := range grouped {
		ps, err := NewPointSet(coords...)
		if err != nil {
			return err
		}
		data[id] = ps
	}
	return nil
}

// Point returns a single representative position for an object: the
// coordinates of a point, or the centroid of a point set. Any other stored
// kind is a hard error.
func (s *Scene) Point(objectID string) (r3.Vector, error) {
	obj, err := s.Object(objectID)
	if err != nil {
		return r3.Vector{}, err
	}
	return meanPosition(obj)
}

// MeanPositions returns the representative position of every point-like
// entry in the scene. Entries of other kinds are silently omitted; this is
// the query that feeds best-fit alignment.
func (s *Scene) MeanPositions() (map[string]r3.Vector, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}
	result := make(map[string]r3.Vector, len(data))
	for id, obj := range data {
		pos, err := meanPosition(obj)
		if err != nil {
			continue
		}
		result[id] = pos
	}
	return result, nil
}
