package containers

import (
	"context"
	"net/http"
	"strings"

	"github.com/docksock/docksock/pkg/bindings"
	"github.com/docksock/docksock/pkg/domain/entities"
	"github.com/docksock/docksock/pkg/specgen"
	jsoniter "github.com/json-iterator/go"
)

// CreateWithSpec creates a container from the given spec and returns the ID
// the daemon assigned to it.  The spec is validated before anything goes over
// the wire so that contradictory requests fail on the client side.  A name
// for the container can be requested through the options; when none is given
// the daemon invents one.
func CreateWithSpec(ctx context.Context, s *specgen.SpecGenerator, options *CreateOptions) (entities.ContainerCreateResponse, error) {
	var ccr entities.ContainerCreateResponse
	if options == nil {
		options = new(CreateOptions)
	}
	if err := s.Validate(); err != nil {
		return ccr, err
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return ccr, err
	}
	specgenString, err := jsoniter.MarshalToString(s)
	if err != nil {
		return ccr, err
	}
	params, err := options.ToParams()
	if err != nil {
		return ccr, err
	}
	stringReader := strings.NewReader(specgenString)
	response, err := conn.DoRequest(ctx, stringReader, http.MethodPost, "/containers/create", params, nil)
	if err != nil {
		return ccr, err
	}
	return ccr, response.Process(&ccr)
}
