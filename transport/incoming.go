package transport

import (
	"net/http"

	"github.com/jrsteele09/go-oauth1-client/client"
)

var _ client.IncomingRequestReader = (*IncomingRequest)(nil)

// IncomingRequest adapts the authorization callback *http.Request to the
// client.IncomingRequestReader contract.
type IncomingRequest struct {
	req *http.Request
}

// NewIncomingRequest wraps a received callback request
func NewIncomingRequest(req *http.Request) *IncomingRequest {
	return &IncomingRequest{req: req}
}

func (ir *IncomingRequest) QueryParam(name string) string {
	return ir.req.URL.Query().Get(name)
}

func (ir *IncomingRequest) BodyParam(name string) string {
	return ir.req.PostFormValue(name)
}
