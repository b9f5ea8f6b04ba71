package containers

//go:generate go run ../generator/generator.go ListOptions
// ListOptions are optional options for listing containers
type ListOptions struct {
	// All lists every container, not only the running ones
	All *bool
	// Filters to narrow down the listing, e.g. an id filter
	Filters map[string][]string
	// Limit caps the listing to the most recently created containers
	Limit *int
}

//go:generate go run ../generator/generator.go CreateOptions
// CreateOptions are optional options for creating containers
type CreateOptions struct {
	// Name for the new container; the daemon picks one when unset
	Name *string
}

//go:generate go run ../generator/generator.go StartOptions
// StartOptions are optional options for starting containers
type StartOptions struct {
	// DetachKeys overrides the key sequence for detaching a container
	DetachKeys *string `schema:"detachKeys"`
}

//go:generate go run ../generator/generator.go StopOptions
// StopOptions are optional options for stopping containers
type StopOptions struct {
	// Timeout in seconds the daemon waits before killing the container
	Timeout *uint `schema:"t"`
}

//go:generate go run ../generator/generator.go RemoveOptions
// RemoveOptions are optional options for removing containers
type RemoveOptions struct {
	// Force removes the container even when it is running
	Force *bool
	// Ignore swallows the daemon's not-found answer; stays client side
	Ignore *bool `schema:"-"`
	// Volumes removes the anonymous volumes of the container as well
	Volumes *bool `schema:"v"`
}

//go:generate go run ../generator/generator.go PruneOptions
// PruneOptions are optional options for pruning containers
type PruneOptions struct {
	// Filters to narrow down which stopped containers get pruned
	Filters map[string][]string
}
