package scenetree

import (
	"github.com/pkg/errors"

	"go.viam.com/scenetree/spatialmath"
)

// NewSceneNotFoundError is used when a named scene is not in the workspace.
func NewSceneNotFoundError(name string) error {
	return errors.Errorf("scene %q does not exist", name)
}

// NewSceneAlreadyExistsError is used when creating a scene whose name is taken.
func NewSceneAlreadyExistsError(name string) error {
	return errors.Errorf("scene %q already exists", name)
}

// NewConfigurationNotFoundError is used when a named configuration is not in
// the workspace.
func NewConfigurationNotFoundError(name string) error {
	return errors.Errorf("configuration %q does not exist", name)
}

// NewConfigurationAlreadyExistsError is used when creating a configuration
// whose name is taken.
func NewConfigurationAlreadyExistsError(name string) error {
	return errors.Errorf("configuration %q already exists", name)
}

// NewObjectNotFoundError is used when a scene has no object under an identity.
func NewObjectNotFoundError(scene, objectID string) error {
	return errors.Errorf("object %q not found in scene %q", objectID, scene)
}

// NewUnsupportedTypeError is used when an operation needs a concrete position
// but the stored object is neither a point nor a point set.
func NewUnsupportedTypeError(obj interface{}) error {
	return errors.Errorf("expected a point or point set but got %T", obj)
}

// NewInsufficientPointsError is used when too few shared identities remain to
// fit a rigid transform between two scenes.
func NewInsufficientPointsError(found int) error {
	return errors.Errorf("need at least %d shared points for best fit, found %d", spatialmath.MinFitPoints, found)
}

func newEmptyPointSetError() error {
	return errors.New("a point set needs at least one point")
}

func newNilTransformError() error {
	return errors.New("transform must not be nil")
}
