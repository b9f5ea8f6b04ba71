// Package harness sequences the raw bindings into the handful of container
// operations integration tests actually need: get an image, run something
// from it, find out how to reach it, tear it down afterwards.
package harness

import (
	"context"
	"strconv"

	"github.com/docker/go-connections/nat"
	"github.com/docker/go-units"
	"github.com/docksock/docksock/pkg/bindings/containers"
	"github.com/docksock/docksock/pkg/domain/entities"
	"github.com/docksock/docksock/pkg/errorhandling"
	"github.com/docksock/docksock/pkg/specgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FindContainers lists the containers whose ID matches id, regardless of
// their state.
func FindContainers(ctx context.Context, id string) ([]entities.ListContainer, error) {
	options := new(containers.ListOptions).WithAll(true).WithFilters(map[string][]string{"id": {id}})
	return containers.List(ctx, options)
}

// StartContainerWithPortBinding creates and starts a container from imageRef
// with containerPort published on the host's hostPort, and returns the ID of
// the new container.  The image is pulled first when it is missing locally.
func StartContainerWithPortBinding(ctx context.Context, name, imageRef string, containerPort, hostPort uint16) (string, error) {
	if err := EnsureImage(ctx, imageRef); err != nil {
		return "", err
	}
	port, err := nat.NewPort("tcp", strconv.Itoa(int(containerPort)))
	if err != nil {
		return "", err
	}
	s := specgen.NewSpecGenerator(imageRef)
	s.WithPortBinding(port, hostPort)
	return createAndStart(ctx, s, name)
}

// StartContainerWithNetworkMode creates and starts a container from imageRef
// joined to networkMode, e.g. "container:<id>", and returns the ID of the
// new container.  The image is pulled first when it is missing locally.
func StartContainerWithNetworkMode(ctx context.Context, name, imageRef, networkMode string) (string, error) {
	if err := EnsureImage(ctx, imageRef); err != nil {
		return "", err
	}
	s := specgen.NewSpecGenerator(imageRef)
	s.WithNetworkMode(networkMode)
	return createAndStart(ctx, s, name)
}

// createAndStart runs the two steps strictly in order.  A container that was
// created but failed to start is left behind for the caller to inspect or
// prune; its ID comes back alongside the error.
func createAndStart(ctx context.Context, s *specgen.SpecGenerator, name string) (string, error) {
	var options *containers.CreateOptions
	if name != "" {
		options = new(containers.CreateOptions).WithName(name)
	}
	response, err := containers.CreateWithSpec(ctx, s, options)
	if err != nil {
		return "", err
	}
	if err := containers.Start(ctx, response.ID, nil); err != nil {
		return response.ID, err
	}
	return response.ID, nil
}

// StartContainer starts the container with the given name or ID.  Whether
// starting an already running container is an error is the daemon's call.
func StartContainer(ctx context.Context, nameOrID string) error {
	return containers.Start(ctx, nameOrID, nil)
}

// StopContainer stops the container with the given name or ID.
func StopContainer(ctx context.Context, nameOrID string) error {
	return containers.Stop(ctx, nameOrID, nil)
}

// RemoveContainer deletes the container with the given name or ID.  Running
// containers are refused by the daemon unless stopped first.
func RemoveContainer(ctx context.Context, nameOrID string) error {
	return containers.Remove(ctx, nameOrID, nil)
}

// RemoveContainers force-removes every given container and reports all
// failures in a single error.
func RemoveContainers(ctx context.Context, namesOrIDs ...string) error {
	removeErrors := make([]error, 0, len(namesOrIDs))
	for _, nameOrID := range namesOrIDs {
		options := new(containers.RemoveOptions).WithForce(true).WithVolumes(true)
		if err := containers.Remove(ctx, nameOrID, options); err != nil {
			removeErrors = append(removeErrors, errors.Wrapf(err, "unable to remove container %q", nameOrID))
		}
	}
	return errorhandling.JoinErrors(removeErrors)
}

// PruneContainers removes stopped containers from the daemon.  Pruning is
// best-effort cleanup for test teardown paths: any failure is logged and
// swallowed so that cleaning up never fails the test that asked for it.
func PruneContainers(ctx context.Context) {
	report, err := containers.Prune(ctx, nil)
	if err != nil {
		logrus.Warnf("Unable to prune containers: %v", err)
		return
	}
	logrus.Debugf("Pruned %d containers, reclaimed %s", len(report.ContainersDeleted), units.HumanSize(float64(report.SpaceReclaimed)))
}

// StopAndCleanupContainer stops the container and prunes stopped containers
// afterwards.  A stop failure propagates and skips the prune; the prune
// itself never fails the call.
func StopAndCleanupContainer(ctx context.Context, nameOrID string) error {
	if err := StopContainer(ctx, nameOrID); err != nil {
		return err
	}
	PruneContainers(ctx)
	return nil
}

// StopAndRemoveContainer stops the container, then deletes it.  Both steps
// propagate their failure and the first failing step ends the call.
func StopAndRemoveContainer(ctx context.Context, nameOrID string) error {
	if err := StopContainer(ctx, nameOrID); err != nil {
		return err
	}
	return RemoveContainer(ctx, nameOrID)
}

// ContainerIP returns the IP address of the container on one of its
// networks.  The address of a container on more than one network is
// nondeterministic: the networks arrive as a map and an arbitrary entry
// wins.  Callers that care about a specific network must not use this.
func ContainerIP(ctx context.Context, id string) (string, error) {
	cons, err := FindContainers(ctx, id)
	if err != nil {
		return "", err
	}
	if len(cons) == 0 {
		return "", errors.Wrapf(ErrNoSuchContainer, "unable to find container %q", id)
	}
	con := cons[0]
	if con.NetworkSettings == nil {
		return "", errors.Wrapf(ErrNoSuchNetwork, "container %q is not attached to any network", id)
	}
	for _, network := range con.NetworkSettings.Networks {
		if network == nil {
			continue
		}
		return network.IPAddress, nil
	}
	return "", errors.Wrapf(ErrNoSuchNetwork, "container %q is not attached to any network", id)
}
