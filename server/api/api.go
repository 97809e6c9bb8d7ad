// Package api provides HTTP API endpoints for the Boreal debug server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oxixes/boreal-lang-ext/server/result"
	"github.com/oxixes/boreal-lang-ext/server/serr"
)

const (
	// PathPrefix is the prefix of all paths in the API. Routers should mount
	// a sub-router that routes all requests to the API at this path.
	PathPrefix = "/api/v1"
)

// API holds parameters needed by endpoint handlers. There is no backend
// service to call into: every endpoint runs the boreal package's analysis
// functions directly against the request body.
type API struct {
	// UnauthDelay is the amount of time that a request will pause before
	// responding with an HTTP-401 or HTTP-500, to deprioritize such requests
	// from processing and I/O.
	UnauthDelay time.Duration

	// Secret is the secret used to sign bearer tokens.
	Secret []byte

	// APIKeyHash is the bcrypt hash of the API key accepted by the login
	// endpoint.
	APIKeyHash []byte
}

// parseJSON decodes the JSON body of req into v, which must be a pointer to
// a type. It returns an error such that errors.Is(err, serr.ErrBodyUnmarshal)
// is true if the problem was with decoding the JSON itself.
func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")

	if strings.ToLower(contentType) != "application/json" {
		return fmt.Errorf("request content-type is not application/json")
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	defer func() {
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewBuffer(bodyData))
	}()

	if err := json.Unmarshal(bodyData, v); err != nil {
		return serr.New("malformed JSON in request", err, serr.ErrBodyUnmarshal)
	}

	return nil
}

// EndpointFunc is a handler for a single API route. It returns the Result to
// send to the client rather than writing to the ResponseWriter directly, so
// that cross-cutting concerns (logging, the unauth delay, panic recovery)
// live in one place.
type EndpointFunc func(req *http.Request) result.Result

// Endpoint adapts an EndpointFunc into an http.HandlerFunc, applying the
// unauth delay and logging every response.
func (api API) Endpoint(ep EndpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)

		r := ep(req)
		if r.Status == 0 {
			panic("endpoint result was never populated")
		}

		if r.Status == http.StatusUnauthorized || r.Status == http.StatusInternalServerError {
			time.Sleep(api.UnauthDelay)
		}

		r.WriteResponse(w)
		r.Log(req)
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) {
	if panicErr := recover(); panicErr != nil {
		r := result.InternalServerError("panic: %v", panicErr)
		r.WriteResponse(w)
		r.Log(req)
	}
}
