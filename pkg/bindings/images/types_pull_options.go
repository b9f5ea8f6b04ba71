package images

import (
	"net/url"

	"github.com/docksock/docksock/pkg/bindings/internal/util"
)

/*
This file is generated automatically by go generate.  Do not edit.
*/

// Changed
func (o *PullOptions) Changed(fieldName string) bool {
	return util.Changed(o, fieldName)
}

// ToParams
func (o *PullOptions) ToParams() (url.Values, error) {
	return util.ToParams(o)
}

// WithPlatform
func (o *PullOptions) WithPlatform(value string) *PullOptions {
	v := &value
	o.Platform = v
	return o
}

// GetPlatform
func (o *PullOptions) GetPlatform() string {
	var platform string
	if o.Platform == nil {
		return platform
	}
	return *o.Platform
}
