package bindings

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/docksock/docksock/pkg/errorhandling"
	"github.com/pkg/errors"
)

// Process drains and closes the response body.  On a successful status the
// body is unmarshalled into unmarshalInto when one is given; otherwise the
// response becomes an *errorhandling.ErrorModel carrying the request path,
// the status code and the verbatim body.
func (h APIResponse) Process(unmarshalInto interface{}) error {
	defer h.Response.Body.Close()

	data, err := io.ReadAll(h.Response.Body)
	if err != nil {
		return errors.Wrap(err, "unable to process API response")
	}
	if !utf8.Valid(data) {
		return errors.Errorf("request %s returned a body that is not valid UTF-8", h.Request.URL.Path)
	}
	if h.IsSuccess() {
		if unmarshalInto != nil {
			if err := json.Unmarshal(data, unmarshalInto); err != nil {
				return errors.Wrapf(err, "unable to decode API response: %s", string(data))
			}
		}
		return nil
	}
	return h.handleError(data)
}

func (h APIResponse) handleError(data []byte) error {
	e := errorhandling.ErrorModel{
		RequestPath:  h.Request.URL.Path,
		ResponseCode: h.Response.StatusCode,
		Body:         string(data),
	}
	// The daemon usually answers failures with {"message": ...}; keep
	// whatever parses but never require it.
	_ = json.Unmarshal(data, &e)
	return &e
}

// CheckResponseCode returns the daemon's status code from the error, or an
// error when inError did not originate from a daemon response.
func CheckResponseCode(inError error) (int, error) {
	switch e := inError.(type) {
	case errorhandling.ErrorModel:
		return e.Code(), nil
	case *errorhandling.ErrorModel:
		return e.Code(), nil
	default:
		return -1, errors.New("error is not type ErrorModel")
	}
}
