package transformgraph

import "github.com/pkg/errors"

func newSceneNotInGraphError(name string) error {
	return errors.Errorf("scene %q has no transforms in this configuration", name)
}

func newPathNotFoundError(from, to string) error {
	return errors.Errorf("no transform path from scene %q to scene %q", from, to)
}
