package errorhandling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// maxUnwrapDepth bounds Cause so a cyclic error chain cannot spin forever.
const maxUnwrapDepth = 100

// ErrorModel is the error payload the daemon answers failed API calls with,
// joined with enough request context to make the failure actionable.
type ErrorModel struct {
	// Message is the human readable error sent by the daemon, when the
	// response body carried the usual JSON error payload.
	Message string `json:"message"`
	// RequestPath is the path of the request the daemon rejected.
	RequestPath string `json:"-"`
	// ResponseCode is the HTTP status the daemon answered with.
	ResponseCode int `json:"-"`
	// Body is the verbatim response body.
	Body string `json:"-"`
}

func (e ErrorModel) Error() string {
	return fmt.Sprintf("request %s returned response code %d: %s", e.RequestPath, e.ResponseCode, e.Body)
}

// Code returns the HTTP status carried by the error.
func (e ErrorModel) Code() int {
	return e.ResponseCode
}

// JoinErrors converts the error slice into a single human-readable error.
func JoinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	// `multierror` appends new lines which we need to remove to prevent
	// blank lines when printing the error.
	var multiE *multierror.Error
	multiE = multierror.Append(multiE, errs...)

	finalErr := multiE.ErrorOrNil()
	if finalErr == nil {
		return nil
	}
	return errors.New(strings.TrimSpace(finalErr.Error()))
}

// Cause unwraps err down to the innermost error in its chain.
func Cause(err error) error {
	cause := err
	for depth := 0; depth < maxUnwrapDepth; depth++ {
		unwrapped := errors.Unwrap(cause)
		if unwrapped == nil {
			break
		}
		cause = unwrapped
	}
	return cause
}
