package scorer

import (
	"net/http"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/inspect"
)

// newFakeInspector builds an Inspector whose HTTP client answers every host
// from the given transport.
func newFakeInspector(rt fakeTransport) *inspect.Inspector {
	return inspect.New(inspect.WithHTTPClient(&http.Client{Transport: rt}))
}
