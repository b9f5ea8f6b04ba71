package entities

// ContainerCreateResponse is the daemon's answer to creating a container.
type ContainerCreateResponse struct {
	// ID of the container created
	ID string `json:"Id"`
	// Warnings during container creation
	Warnings []string `json:"Warnings"`
}

// EndpointSettings describes a container's attachment to one network.
type EndpointSettings struct {
	NetworkID   string `json:",omitempty"`
	EndpointID  string `json:",omitempty"`
	Gateway     string `json:",omitempty"`
	IPAddress   string `json:",omitempty"`
	IPPrefixLen int    `json:",omitempty"`
	MacAddress  string `json:",omitempty"`
}

// NetworkSettingsSummary is the network half of a container list entry.
type NetworkSettingsSummary struct {
	// Networks, keyed by network name
	Networks map[string]*EndpointSettings `json:",omitempty"`
}

// ListContainer describes a container suitable for listing.
type ListContainer struct {
	// The unique identifier of the container
	ID string `json:"Id"`
	// The names assigned to the container
	Names []string `json:",omitempty"`
	// Image the container was created from
	Image string `json:",omitempty"`
	// The id of the image the container was created from
	ImageID string `json:",omitempty"`
	// Command run in the container
	Command string `json:",omitempty"`
	// Time when container was created
	Created int64 `json:",omitempty"`
	// State of the container, e.g. running
	State string `json:",omitempty"`
	// Human readable status, e.g. "Up 2 minutes"
	Status string `json:",omitempty"`
	// Labels attached to the container
	Labels map[string]string `json:",omitempty"`
	// Summary of the container's attached networks
	NetworkSettings *NetworkSettingsSummary `json:",omitempty"`
}

func (l ListContainer) Id() string { //nolint
	return l.ID
}

// ContainerPruneReport is the daemon's summary of a container prune.
type ContainerPruneReport struct {
	ContainersDeleted []string `json:",omitempty"`
	SpaceReclaimed    uint64   `json:",omitempty"`
}
