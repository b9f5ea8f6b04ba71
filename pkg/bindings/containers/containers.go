package containers

import (
	"context"
	"net/http"

	"github.com/docksock/docksock/pkg/bindings"
	"github.com/docksock/docksock/pkg/domain/entities"
	"github.com/sirupsen/logrus"
)

// List obtains a list of containers known to the daemon.  All parameters to
// this method are optional.  By default only running containers are returned;
// the All option widens the listing to every container regardless of state.
// The filters are used to determine which containers are listed, and Limit
// caps the result to the most recently created ones.
func List(ctx context.Context, options *ListOptions) ([]entities.ListContainer, error) {
	if options == nil {
		options = new(ListOptions)
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	var containers []entities.ListContainer
	params, err := options.ToParams()
	if err != nil {
		return nil, err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodGet, "/containers/json", params, nil)
	if err != nil {
		return containers, err
	}
	return containers, response.Process(&containers)
}

// Start starts a non-running container.  The nameOrID can be a container name
// or a partial/full ID.  The optional parameter for detach keys overrides the
// default detach key sequence.
func Start(ctx context.Context, nameOrID string, options *StartOptions) error {
	if options == nil {
		options = new(StartOptions)
	}
	logrus.Infof("Going to start container %q", nameOrID)
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return err
	}
	params, err := options.ToParams()
	if err != nil {
		return err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodPost, "/containers/%s/start", params, nil, nameOrID)
	if err != nil {
		return err
	}
	return response.Process(nil)
}

// Stop stops a running container.  The timeout is optional and is expressed
// in seconds; the daemon kills the container once it elapses.  The nameOrID
// can be a container name or a partial/full ID.
func Stop(ctx context.Context, nameOrID string, options *StopOptions) error {
	if options == nil {
		options = new(StopOptions)
	}
	params, err := options.ToParams()
	if err != nil {
		return err
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodPost, "/containers/%s/stop", params, nil, nameOrID)
	if err != nil {
		return err
	}
	return response.Process(nil)
}

// Remove deletes a container from the daemon.  The force bool designates
// that the container should be removed forcibly (example, even it is running).
// The volumes bool dictates that the anonymous volumes of a container should
// also be removed.  The Ignore option indicates that if the container did not
// exist, ignore the error; it never travels as a query parameter.
func Remove(ctx context.Context, nameOrID string, options *RemoveOptions) error {
	if options == nil {
		options = new(RemoveOptions)
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return err
	}
	params, err := options.ToParams()
	if err != nil {
		return err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodDelete, "/containers/%s", params, nil, nameOrID)
	if err != nil {
		return err
	}
	if err := response.Process(nil); err != nil {
		if options.GetIgnore() {
			if code, checkErr := bindings.CheckResponseCode(err); checkErr == nil && code == http.StatusNotFound {
				return nil
			}
		}
		return err
	}
	return nil
}

// Prune removes stopped and exited containers from the daemon.  The optional
// filters can be used for more granular selection of containers.  The report
// lists the IDs of the deleted containers and the amount of disk space freed.
func Prune(ctx context.Context, options *PruneOptions) (*entities.ContainerPruneReport, error) {
	if options == nil {
		options = new(PruneOptions)
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	params, err := options.ToParams()
	if err != nil {
		return nil, err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodPost, "/containers/prune", params, nil)
	if err != nil {
		return nil, err
	}
	report := entities.ContainerPruneReport{}
	return &report, response.Process(&report)
}
