// Package specgen defines the body of a container create request.
package specgen

import (
	"strconv"

	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
)

// PortBinding maps a published container port onto a port of the host.
type PortBinding struct {
	// HostPort is the host port the container port is published on, in
	// the daemon's decimal string form.
	HostPort string `json:"HostPort"`
}

// PortMap maps container ports, e.g. "80/tcp", onto their host bindings.
type PortMap map[nat.Port][]PortBinding

// SpecGenerator describes the body of a container create request.  A
// valid spec carries exactly one of the two supported shapes: published
// ports, or a network mode.
type SpecGenerator struct {
	// Image is the image the container is created from.
	// Mandatory.
	Image string `json:"Image"`
	// PortBindings publishes container ports on the host.
	// Conflicts with NetworkMode.
	PortBindings PortMap `json:"PortBindings,omitempty"`
	// NetworkMode attaches the container to another container's network
	// stack ("container:<id>") or to a named network driver.
	// Conflicts with PortBindings.
	NetworkMode string `json:"NetworkMode,omitempty"`
}

// NewSpecGenerator returns a spec for the given image.  One of the two
// shapes has to be set before the spec validates.
func NewSpecGenerator(image string) *SpecGenerator {
	return &SpecGenerator{Image: image}
}

// WithPortBinding publishes containerPort, e.g. "80/tcp", on the given
// host port.
func (s *SpecGenerator) WithPortBinding(containerPort nat.Port, hostPort uint16) *SpecGenerator {
	if s.PortBindings == nil {
		s.PortBindings = PortMap{}
	}
	s.PortBindings[containerPort] = append(s.PortBindings[containerPort], PortBinding{HostPort: strconv.Itoa(int(hostPort))})
	return s
}

// WithNetworkMode joins the container to the given network mode.
func (s *SpecGenerator) WithNetworkMode(mode string) *SpecGenerator {
	s.NetworkMode = mode
	return s
}

// Validate verifies the spec is complete and carries exactly one shape.
func (s *SpecGenerator) Validate() error {
	if s.Image == "" {
		return errors.New("no image specified in the container spec")
	}
	if len(s.PortBindings) > 0 && s.NetworkMode != "" {
		return errors.New("PortBindings and NetworkMode are mutually exclusive options")
	}
	if len(s.PortBindings) == 0 && s.NetworkMode == "" {
		return errors.New("either PortBindings or a NetworkMode must be specified")
	}
	return nil
}
