package repofakes

import (
	"github.com/jrsteele09/go-oauth1-client/client"
)

var _ client.IncomingRequestReader = (*FakeIncomingRequest)(nil)

// FakeIncomingRequest serves callback parameters from fixed maps.
type FakeIncomingRequest struct {
	Query map[string]string
	Body  map[string]string
}

func NewFakeIncomingRequest() *FakeIncomingRequest {
	return &FakeIncomingRequest{
		Query: make(map[string]string),
		Body:  make(map[string]string),
	}
}

func (ir *FakeIncomingRequest) QueryParam(name string) string {
	return ir.Query[name]
}

func (ir *FakeIncomingRequest) BodyParam(name string) string {
	return ir.Body[name]
}
