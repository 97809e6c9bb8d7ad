// Package middle contains middleware for use with the Boreal debug server.
package middle

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/oxixes/boreal-lang-ext/server/result"
	"github.com/oxixes/boreal-lang-ext/server/token"
)

type mwFunc http.HandlerFunc

func (sf mwFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sf(w, req)
}

// Middleware is a function that takes a handler and returns a new handler which
// wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// AuthKey is a key in the context of a request populated by an AuthHandler.
type AuthKey int64

// AuthLoggedIn is the context key holding whether the client presented a
// valid bearer token. The debug server recognizes only one principal, the
// holder of the configured API key, so there is no accompanying AuthUser.
const AuthLoggedIn AuthKey = iota

// AuthHandler is middleware that extracts the bearer token from a request
// and validates it against the server's secret.
//
// AuthLoggedIn is added to the request context before the request is passed
// to the next step in the chain (only meaningful for optional auth; for
// required auth, not being logged in results in an HTTP error being returned
// before the request reaches the next handler).
type AuthHandler struct {
	secret        []byte
	required      bool
	unauthedDelay time.Duration
	next          http.Handler
}

func (ah *AuthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var loggedIn bool

	tok, err := token.Get(req)
	if err != nil {
		// deliberately leaving as embedded if instead of &&
		if ah.required {
			// error here means token isn't present (or at least isn't in the
			// expected format, which for all intents and purposes is non-existent).
			// This is not okay if auth is required.

			r := result.Unauthorized("", err.Error())
			time.Sleep(ah.unauthedDelay)
			r.WriteResponse(w)
			r.Log(req)
			return
		}
	} else if verr := token.Validate(tok, ah.secret); verr != nil {
		// deliberately leaving as embedded if instead of &&
		if ah.required {
			// the token failed validation. the client does not count as
			// logged in. if logging in is required, that's not okay.

			r := result.Unauthorized("", verr.Error())
			time.Sleep(ah.unauthedDelay)
			r.WriteResponse(w)
			r.Log(req)
			return
		}
	} else {
		loggedIn = true
	}

	ctx := context.WithValue(req.Context(), AuthLoggedIn, loggedIn)
	req = req.WithContext(ctx)
	ah.next.ServeHTTP(w, req)
}

// RequireAuth rejects any request that does not carry a bearer token valid
// against secret.
func RequireAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{secret: secret, unauthedDelay: unauthDelay, required: true, next: next}
	}
}

// OptionalAuth records whether a request carries a bearer token valid
// against secret, but passes every request through either way.
func OptionalAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{secret: secret, unauthedDelay: unauthDelay, required: false, next: next}
	}
}

// DontPanic returns a Middleware that performs a panic check as it exits. If
// the function is panicking, it will write out an HTTP response with a generic
// message to the client and add it to the log.
func DontPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			defer panicTo500(w, r)
			next.ServeHTTP(w, r)
		})
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		r := result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		)
		r.WriteResponse(w)
		r.Log(req)
		return true
	}
	return false
}
