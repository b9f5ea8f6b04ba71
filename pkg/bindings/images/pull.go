package images

import (
	"context"
	"net/http"

	"github.com/docksock/docksock/pkg/bindings"
)

// Pull asks the daemon to pull the given image reference, which may carry
// a tag, e.g. "ubuntu:20.04".  The progress stream the daemon answers
// with is drained and discarded; whether the image actually arrived is
// the follow-up query's business.
func Pull(ctx context.Context, fromImage string, options *PullOptions) error {
	if options == nil {
		options = new(PullOptions)
	}
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return err
	}
	params, err := options.ToParams()
	if err != nil {
		return err
	}
	params.Set("fromImage", fromImage)

	response, err := conn.DoRequest(ctx, nil, http.MethodPost, "/images/create", params, nil)
	if err != nil {
		return err
	}
	return response.Process(nil)
}
