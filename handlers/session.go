package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

type contextKey string

const SessionKey contextKey = "session"
const HeaderDataKey contextKey = "headerData"

// Session identifies who is working in this request. UserID stamps the
// owner field on everything the request creates.
type Session struct {
	UserID string
	Name   string
	Email  string
}

// GetSession extracts the session from the request context. Requests that
// skipped the middleware get a zero session, which stamps no owner.
func GetSession(r *http.Request) Session {
	if val, ok := r.Context().Value(SessionKey).(Session); ok {
		return val
	}
	return Session{}
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// SessionMiddleware builds the Session from the authenticated record and
// stores it, together with the layout HeaderData, in the request context so
// every handler and template can use them.
func SessionMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var session Session
		if e.Auth != nil {
			session = Session{
				UserID: e.Auth.Id,
				Name:   e.Auth.GetString("name"),
				Email:  e.Auth.GetString("email"),
			}
		}
		if session.Name == "" {
			session.Name = "Oficina"
		}

		headerData := templates.HeaderData{
			UserName:   session.Name,
			ActivePath: e.Request.URL.Path,
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, session)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
