package repofakes

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/jrsteele09/go-oauth1-client/client"
	"github.com/pkg/errors"
)

var _ client.Transport = (*FakeTransport)(nil)

// FakeTransport replays queued responses and records every sent request for
// inspection.
type FakeTransport struct {
	responses []url.Values
	sendErr   error
	sent      []*http.Request
	lock      sync.Mutex
}

func NewFakeTransport() *FakeTransport {
	return &FakeTransport{}
}

// QueueResponse appends a parsed response body returned by the next Send
func (tr *FakeTransport) QueueResponse(values url.Values) {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.responses = append(tr.responses, values)
}

// FailWith makes every subsequent Send return err
func (tr *FakeTransport) FailWith(err error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.sendErr = err
}

func (tr *FakeTransport) Build(method, rawURL string) (*http.Request, error) {
	return http.NewRequest(method, rawURL, nil)
}

func (tr *FakeTransport) Send(req *http.Request) (url.Values, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	tr.sent = append(tr.sent, req)
	if tr.sendErr != nil {
		return nil, tr.sendErr
	}
	if len(tr.responses) == 0 {
		return nil, errors.New("no queued response")
	}
	response := tr.responses[0]
	tr.responses = tr.responses[1:]
	return response, nil
}

// SentRequests returns the requests passed to Send, in order
func (tr *FakeTransport) SentRequests() []*http.Request {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	return append([]*http.Request(nil), tr.sent...)
}
