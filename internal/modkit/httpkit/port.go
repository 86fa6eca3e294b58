// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	perrs "followup/internal/platform/errors"
)

// deviceHeader carries the submitting device's id; the mobile client sets
// it on every sync call so logs and staging rows can be attributed
const deviceHeader = "X-Device-ID"

// DeviceFunc validates a raw device id and returns the canonical form
// a nil DeviceFunc accepts any non empty id as is
type DeviceFunc func(raw string) (deviceID string, err error)

// Port extracts the device id from a request header and delegates to a DeviceFunc
type Port struct {
	parse DeviceFunc
}

// NewPortFunc builds a Port from a validator function
func NewPortFunc(fn DeviceFunc) *Port {
	return &Port{parse: fn}
}

// Parse returns the device id on the request, empty when the header is absent.
// A present but unparseable id is invalid input rather than anonymous
func (p *Port) Parse(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(deviceHeader))
	if raw == "" {
		return "", nil
	}
	if p == nil || p.parse == nil {
		return raw, nil
	}
	id, err := p.parse(raw)
	if err != nil {
		return "", perrs.InvalidArgf("invalid %s header", deviceHeader)
	}
	return id, nil
}
