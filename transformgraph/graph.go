// Package transformgraph stores directed rigid-transform edges between named
// scenes and composes transforms along multi-hop paths between any two
// connected scenes.
package transformgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"go.viam.com/scenetree/spatialmath"
)

type edgeKey struct {
	from, to string
}

// Graph is a directed graph whose nodes are scene names and whose edges carry
// 4x4 rigid transforms. Exactly one transform is stored per directed pair;
// the reverse direction is always derivable by inversion and is never stored.
// Structure lives in a gonum directed graph so path discovery can be
// delegated to gonum's shortest-path search; transform payloads live in a
// side map keyed by scene-name pair.
type Graph struct {
	structure  *simple.WeightedDirectedGraph
	ids        map[string]int64
	names      map[int64]string
	transforms map[edgeKey]*spatialmath.Transform
	nextID     int64
}

// New returns an empty transform graph.
func New() *Graph {
	return &Graph{
		structure:  simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		ids:        map[string]int64{},
		names:      map[int64]string{},
		transforms: map[edgeKey]*spatialmath.Transform{},
	}
}

// node returns the structural node for a scene name, allocating an ID on
// first use.
func (tg *Graph) node(name string) graph.Node {
	if id, ok := tg.ids[name]; ok {
		return tg.structure.Node(id)
	}
	id := tg.nextID
	tg.nextID++
	tg.ids[name] = id
	tg.names[id] = name
	n := simple.Node(id)
	tg.structure.AddNode(n)
	return n
}

// SetTransform inserts or overwrites the edge from→to. Both directions are
// registered in the structural graph so path discovery can traverse the edge
// against its stored direction; only the stored direction carries a payload.
func (tg *Graph) SetTransform(from, to string, tf *spatialmath.Transform) {
	u := tg.node(from)
	v := tg.node(to)
	if from != to {
		tg.structure.SetWeightedEdge(tg.structure.NewWeightedEdge(u, v, 1))
		tg.structure.SetWeightedEdge(tg.structure.NewWeightedEdge(v, u, 1))
	}
	delete(tg.transforms, edgeKey{to, from})
	tg.transforms[edgeKey{from, to}] = tf
}

// HasScene reports whether a scene name appears in the graph.
func (tg *Graph) HasScene(name string) bool {
	_, ok := tg.ids[name]
	return ok
}

// SceneNames returns the sorted names of every scene in the graph.
func (tg *Graph) SceneNames() []string {
	names := make([]string, 0, len(tg.ids))
	for name := range tg.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Connected reports whether a transform path exists between two scenes.
func (tg *Graph) Connected(from, to string) bool {
	fromID, ok := tg.ids[from]
	if !ok {
		return false
	}
	toID, ok := tg.ids[to]
	if !ok {
		return false
	}
	if fromID == toID {
		return true
	}
	return topo.PathExistsIn(tg.structure, tg.structure.Node(fromID), tg.structure.Node(toID))
}

// hopTransform returns the transform for a single hop, inverting the stored
// payload when the hop runs against the stored direction.
func (tg *Graph) hopTransform(from, to string) (*spatialmath.Transform, bool) {
	if tf, ok := tg.transforms[edgeKey{from, to}]; ok {
		return tf, true
	}
	if tf, ok := tg.transforms[edgeKey{to, from}]; ok {
		return tf.Invert(), true
	}
	return nil, false
}

// Transform returns the composed transform mapping from-frame coordinates to
// to-frame coordinates. A direct edge is returned as stored (or inverted if
// only the reverse edge exists); otherwise the transform is composed along a
// shortest-hop path. The choice among equal-length paths is unspecified.
func (tg *Graph) Transform(from, to string) (*spatialmath.Transform, error) {
	if !tg.HasScene(from) {
		return nil, newSceneNotInGraphError(from)
	}
	if !tg.HasScene(to) {
		return nil, newSceneNotInGraphError(to)
	}
	if from == to {
		return spatialmath.NewTransform(), nil
	}
	if tf, ok := tg.hopTransform(from, to); ok {
		return tf, nil
	}

	shortest := path.DijkstraFrom(tg.structure.Node(tg.ids[from]), tg.structure)
	hops, weight := shortest.To(tg.ids[to])
	if math.IsInf(weight, 1) || len(hops) < 2 {
		return nil, newPathNotFoundError(from, to)
	}

	total := spatialmath.NewTransform()
	for i := 0; i < len(hops)-1; i++ {
		hop, ok := tg.hopTransform(tg.names[hops[i].ID()], tg.names[hops[i+1].ID()])
		if !ok {
			return nil, newPathNotFoundError(from, to)
		}
		// new hops apply after everything accumulated so far
		total = spatialmath.Compose(hop, total)
	}
	return total, nil
}

// Copy returns a graph with the same scenes and edges, independent of future
// mutations to the original. Transform payloads are immutable and shared.
func (tg *Graph) Copy() *Graph {
	out := New()
	for key, tf := range tg.transforms {
		out.SetTransform(key.from, key.to, tf)
	}
	// carry scenes that have no edges yet
	for name := range tg.ids {
		out.node(name)
	}
	return out
}
