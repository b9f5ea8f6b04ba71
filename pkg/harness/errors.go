package harness

import "errors"

var (
	// ErrNoSuchContainer indicates the requested container does not exist
	ErrNoSuchContainer = errors.New("no such container")

	// ErrNoSuchNetwork indicates the container is not attached to any network
	ErrNoSuchNetwork = errors.New("container has no networks")
)
