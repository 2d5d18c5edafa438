package scenetree

import (
	"sort"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"go.viam.com/scenetree/spatialmath"
	"go.viam.com/scenetree/transformgraph"
)

// Configuration is a proxy for managing the rigid transforms that relate
// scenes to each other. It references a transform graph owned by the parent
// workspace; retrieve a fresh proxy from the workspace rather than storing
// one long-term.
type Configuration struct {
	ws   *Workspace
	name string
}

// Name returns the configuration name.
func (c *Configuration) Name() string {
	return c.name
}

func (c *Configuration) graph() (*transformgraph.Graph, error) {
	g, ok := c.ws.configurations[c.name]
	if !ok {
		return nil, NewConfigurationNotFoundError(c.name)
	}
	return g, nil
}

// Connect adds a transform mapping from-scene coordinates to to-scene
// coordinates, overwriting any transform previously stored between the two
// scenes. Both scenes must exist in the workspace.
func (c *Configuration) Connect(fromScene, toScene string, tf *spatialmath.Transform) error {
	g, err := c.graph()
	if err != nil {
		return err
	}
	var errAll error
	if !c.ws.HasScene(fromScene) {
		multierr.AppendInto(&errAll, NewSceneNotFoundError(fromScene))
	}
	if !c.ws.HasScene(toScene) {
		multierr.AppendInto(&errAll, NewSceneNotFoundError(toScene))
	}
	if errAll != nil {
		return errAll
	}
	if tf == nil {
		return newNilTransformError()
	}
	g.SetTransform(fromScene, toScene, tf)
	c.ws.logger.Debugw("connected scenes", "configuration", c.name, "from", fromScene, "to", toScene)
	return nil
}

// Transform returns the transform mapping from-scene coordinates to to-scene
// coordinates, composed through the transform graph when the scenes are not
// directly connected.
func (c *Configuration) Transform(fromScene, toScene string) (*spatialmath.Transform, error) {
	g, err := c.graph()
	if err != nil {
		return nil, err
	}
	return g.Transform(fromScene, toScene)
}

// BestFitPoints computes, stores, and returns the rigid transform that best
// aligns the shared point-like objects of two scenes. Point sets contribute
// their centroids. The candidate identities are the intersection of both
// scenes' point-like entries, narrowed to objectIDs when given; at least
// three shared identities are required. The result does not depend on the
// iteration order of the shared identities.
func (c *Configuration) BestFitPoints(fromScene, toScene string, objectIDs ...string) (*spatialmath.Transform, error) {
	if _, err := c.graph(); err != nil {
		return nil, err
	}
	from, err := c.ws.Scene(fromScene)
	if err != nil {
		return nil, err
	}
	to, err := c.ws.Scene(toScene)
	if err != nil {
		return nil, err
	}
	fromPositions, err := from.MeanPositions()
	if err != nil {
		return nil, err
	}
	toPositions, err := to.MeanPositions()
	if err != nil {
		return nil, err
	}

	var shared []string
	if len(objectIDs) > 0 {
		// the candidate subset is a set; repeated IDs must not inflate the
		// correspondence count
		seen := make(map[string]struct{}, len(objectIDs))
		for _, id := range objectIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			_, inFrom := fromPositions[id]
			_, inTo := toPositions[id]
			if inFrom && inTo {
				shared = append(shared, id)
			}
		}
	} else {
		for id := range fromPositions {
			if _, ok := toPositions[id]; ok {
				shared = append(shared, id)
			}
		}
	}
	if len(shared) < spatialmath.MinFitPoints {
		return nil, NewInsufficientPointsError(len(shared))
	}
	sort.Strings(shared)

	fromPoints := make([]r3.Vector, 0, len(shared))
	toPoints := make([]r3.Vector, 0, len(shared))
	for _, id := range shared {
		fromPoints = append(fromPoints, fromPositions[id])
		toPoints = append(toPoints, toPositions[id])
	}

	tf, err := spatialmath.BestFitTransform(fromPoints, toPoints)
	if err != nil {
		return nil, err
	}
	if err := c.Connect(fromScene, toScene, tf); err != nil {
		return nil, err
	}
	c.ws.logger.Debugw("fit transform between scenes",
		"configuration", c.name, "from", fromScene, "to", toScene, "sharedPoints", len(shared))
	return tf, nil
}

// Snapshot returns a copy of the transform graph, independent of future
// mutations to the configuration.
func (c *Configuration) Snapshot() (*transformgraph.Graph, error) {
	g, err := c.graph()
	if err != nil {
		return nil, err
	}
	return g.Copy(), nil
}

// ViewFrom returns a read-oriented view of the configuration anchored at the
// given reference scene.
func (c *Configuration) ViewFrom(referenceScene string) (*View, error) {
	if _, err := c.graph(); err != nil {
		return nil, err
	}
	if !c.ws.HasScene(referenceScene) {
		return nil, NewSceneNotFoundError(referenceScene)
	}
	return &View{config: c, reference: referenceScene}, nil
}
