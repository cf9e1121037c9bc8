package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wraps a recorded request in the event shape that
// handlers receive from the router, bypassing routing and middleware.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := new(core.RequestEvent)
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}
