package system

import (
	"context"
	"net/http"

	"github.com/docksock/docksock/pkg/bindings"
	"github.com/docksock/docksock/pkg/domain/entities"
)

// Ping asks the daemon for a sign of life.  Every connection is pinged once
// while it is being established; this is for callers who want to know the
// daemon is still answering later on.
func Ping(ctx context.Context) error {
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodGet, "/_ping", nil, nil)
	if err != nil {
		return err
	}
	return response.Process(nil)
}

// Version returns the version and build information the daemon reports
// about itself.
func Version(ctx context.Context, options *VersionOptions) (*entities.VersionReport, error) {
	if options == nil {
		options = new(VersionOptions)
	}
	_ = options
	conn, err := bindings.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	response, err := conn.DoRequest(ctx, nil, http.MethodGet, "/version", nil, nil)
	if err != nil {
		return nil, err
	}
	report := entities.VersionReport{}
	return &report, response.Process(&report)
}
