package bindings

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/blang/semver/v4"
	"github.com/docksock/docksock/version"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultSocket is the conventional address of the local daemon's API
// socket.  Callers whose daemon listens elsewhere pass their own unix://
// URI to NewConnection.
const DefaultSocket = "unix:///var/run/docker.sock"

type APIResponse struct {
	*http.Response
	Request *http.Request
}

type Connection struct {
	URI    *url.URL
	Client *http.Client
}

type valueKey string

const (
	clientKey  = valueKey("Client")
	versionKey = valueKey("ServiceVersion")
)

// ConnectError is the error returned when connecting to the daemon socket
// fails.
type ConnectError struct {
	Err error
}

func (c ConnectError) Error() string {
	return "unable to connect to the daemon socket: " + c.Err.Error()
}

func (c ConnectError) Unwrap() error {
	return c.Err
}

func newConnectError(err error) error {
	return ConnectError{Err: err}
}

// GetClient from context build by NewConnection()
func GetClient(ctx context.Context) (*Connection, error) {
	if c, ok := ctx.Value(clientKey).(*Connection); ok {
		return c, nil
	}
	return nil, errors.Errorf("%s not set in context", clientKey)
}

// ServiceVersion from context build by NewConnection()
func ServiceVersion(ctx context.Context) *semver.Version {
	if v, ok := ctx.Value(versionKey).(*semver.Version); ok {
		return v
	}
	return new(semver.Version)
}

// NewConnection takes a URI as a string and returns a context with the
// Connection embedded as a value.  This context needs to be passed to each
// endpoint to work correctly.
//
// Only unix sockets are supported, e.g. unix:///var/run/docker.sock.
func NewConnection(ctx context.Context, uri string) (context.Context, error) {
	_url, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "value of URI is not a valid url: %s", uri)
	}
	if _url.Scheme != "unix" {
		return nil, errors.Errorf("unable to create connection. %q is not a supported schema", _url.Scheme)
	}

	connection := unixClient(_url)
	ctx = context.WithValue(ctx, clientKey, &connection)
	serviceVersion, err := pingNewConnection(ctx)
	if err != nil {
		return nil, newConnectError(err)
	}
	ctx = context.WithValue(ctx, versionKey, serviceVersion)
	return ctx, nil
}

func unixClient(_url *url.URL) Connection {
	connection := Connection{URI: _url}
	connection.Client = &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, "unix", _url.Path)
			},
			DisableCompression: true,
			// Every call dials the daemon fresh and tears the socket
			// down afterwards; nothing is pooled between calls.
			DisableKeepAlives: true,
		},
	}
	return connection
}

// pingNewConnection pings to make sure the RESTFUL service is up
// and running. it should only be used when initializing a connection
func pingNewConnection(ctx context.Context) (*semver.Version, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return nil, err
	}
	response, err := client.DoRequest(ctx, nil, http.MethodGet, "/_ping", nil, nil)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		versionHdr := response.Header.Get("API-Version")
		if versionHdr == "" {
			logrus.Info("Daemon did not provide API-Version Header")
			return new(semver.Version), nil
		}
		versionSrv, err := semver.ParseTolerant(versionHdr)
		if err != nil {
			return nil, err
		}

		switch version.MinimalAPIVersion.Compare(versionSrv) {
		case -1, 0:
			// Server's job when the client version is equal or older
			return &versionSrv, nil
		default:
			return nil, errors.Errorf("daemon API version is too old. Client %q, server %q", version.MinimalAPIVersion.String(), versionSrv.String())
		}
	}
	return nil, errors.Errorf("ping response was %d", response.StatusCode)
}

// DoRequest assembles the http request and returns the response.
func (c *Connection) DoRequest(ctx context.Context, httpBody io.Reader, httpMethod, endpoint string, queryParams url.Values, headers http.Header, pathValues ...string) (*APIResponse, error) {
	safePathValues := make([]interface{}, len(pathValues))
	// url.URL lacks the semantics for escaping embedded path parameters,
	// so escape each one and assume the caller included the correct
	// formatting in "endpoint"
	for i, pv := range pathValues {
		safePathValues[i] = url.PathEscape(pv)
	}

	// The daemon ignores the host part; localhost merely keeps the URL
	// well formed.  No API version is spliced into the path, the daemon
	// serves its default version.
	uri := fmt.Sprintf("http://localhost"+endpoint, safePathValues...)
	logrus.Debugf("DoRequest Method: %s URI: %v", httpMethod, uri)

	req, err := http.NewRequestWithContext(ctx, httpMethod, uri, httpBody)
	if err != nil {
		return nil, err
	}
	if len(queryParams) > 0 {
		req.URL.RawQuery = queryParams.Encode()
	}

	if httpBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, val := range headers {
		for _, v := range val {
			req.Header.Add(key, v)
		}
	}

	// A single attempt, no retries; failures go straight back to the
	// caller.
	response, err := c.Client.Do(req) // nolint
	return &APIResponse{response, req}, err
}

// IsInformational returns true if the response code is 1xx
func (h *APIResponse) IsInformational() bool {
	return h.Response.StatusCode/100 == 1
}

// IsSuccess returns true if the response code is inside the window the
// daemon uses for successful calls, 200 through 204.  Note that a 3xx is
// not a success for these endpoints.
func (h *APIResponse) IsSuccess() bool {
	return h.Response.StatusCode >= http.StatusOK && h.Response.StatusCode <= http.StatusNoContent
}

// IsRedirection returns true if the response code is 3xx
func (h *APIResponse) IsRedirection() bool {
	return h.Response.StatusCode/100 == 3
}

// IsClientError returns true if the response code is 4xx
func (h *APIResponse) IsClientError() bool {
	return h.Response.StatusCode/100 == 4
}

// IsServerError returns true if the response code is 5xx
func (h *APIResponse) IsServerError() bool {
	return h.Response.StatusCode/100 == 5
}
