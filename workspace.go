// Package scenetree tracks geometric objects across named coordinate frames
// ("scenes") and relates those frames through rigid transforms grouped into
// named configurations. A View projects objects from many scenes into one
// reference frame.
package scenetree

import (
	"sort"

	"github.com/edaniels/golog"

	"go.viam.com/scenetree/transformgraph"
)

// Workspace owns every scene and configuration. The Scene, Configuration,
// and View values handed to callers are thin proxies into this state; they
// re-resolve it on every call and must be re-obtained after structural
// changes rather than cached. Nothing here is synchronized: a single logical
// owner is expected to serialize writes, and reads may only run concurrently
// with other reads.
type Workspace struct {
	scenes         map[string]map[string]interface{}
	configurations map[string]*transformgraph.Graph
	logger         golog.Logger
}

// NewWorkspace returns an empty workspace.
func NewWorkspace(logger golog.Logger) *Workspace {
	return &Workspace{
		scenes:         map[string]map[string]interface{}{},
		configurations: map[string]*transformgraph.Graph{},
		logger:         logger,
	}
}

// CreateScene creates a scene, optionally pre-populated with the given
// objects, and returns a proxy to it. The object map is copied in, never
// aliased. A nil object map creates an empty scene.
func (ws *Workspace) CreateScene(name string, objects map[string]interface{}) (*Scene, error) {
	if _, ok := ws.scenes[name]; ok {
		return nil, NewSceneAlreadyExistsError(name)
	}
	data := make(map[string]interface{}, len(objects))
	for id, obj := range objects {
		data[id] = obj
	}
	ws.scenes[name] = data
	ws.logger.Debugw("created scene", "name", name, "objects", len(data))
	return &Scene{ws: ws, name: name}, nil
}

// Scene returns a proxy to a previously created scene.
func (ws *Workspace) Scene(name string) (*Scene, error) {
	if _, ok := ws.scenes[name]; !ok {
		return nil, NewSceneNotFoundError(name)
	}
	return &Scene{ws: ws, name: name}, nil
}

// HasScene reports whether a scene with the given name exists.
func (ws *Workspace) HasScene(name string) bool {
	_, ok := ws.scenes[name]
	return ok
}

// SceneNames returns the sorted names of every scene in the workspace.
func (ws *Workspace) SceneNames() []string {
	names := make([]string, 0, len(ws.scenes))
	for name := range ws.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateConfiguration creates an empty configuration and returns a proxy to
// it.
func (ws *Workspace) CreateConfiguration(name string) (*Configuration, error) {
	if _, ok := ws.configurations[name]; ok {
		return nil, NewConfigurationAlreadyExistsError(name)
	}
	ws.configurations[name] = transformgraph.New()
	ws.logger.Debugw("created configuration", "name", name)
	return &Configuration{ws: ws, name: name}, nil
}

// Configuration returns a proxy to a previously created configuration.
func (ws *Workspace) Configuration(name string) (*Configuration, error) {
	if _, ok := ws.configurations[name]; !ok {
		return nil, NewConfigurationNotFoundError(name)
	}
	return &Configuration{ws: ws, name: name}, nil
}

// ConfigurationNames returns the sorted names of every configuration in the
// workspace.
func (ws *Workspace) ConfigurationNames() []string {
	names := make([]string, 0, len(ws.configurations))
	for name := range ws.configurations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
