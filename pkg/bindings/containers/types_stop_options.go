package containers

import (
	"net/url"

	"github.com/docksock/docksock/pkg/bindings/internal/util"
)

/*
This file is generated automatically by go generate.  Do not edit.
*/

// Changed
func (o *StopOptions) Changed(fieldName string) bool {
	return util.Changed(o, fieldName)
}

// ToParams
func (o *StopOptions) ToParams() (url.Values, error) {
	return util.ToParams(o)
}

// WithTimeout
func (o *StopOptions) WithTimeout(value uint) *StopOptions {
	v := &value
	o.Timeout = v
	return o
}

// GetTimeout
func (o *StopOptions) GetTimeout() uint {
	var timeout uint
	if o.Timeout == nil {
		return timeout
	}
	return *o.Timeout
}
