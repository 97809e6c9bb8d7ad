package api

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/oxixes/boreal-lang-ext/server/result"
	"github.com/oxixes/boreal-lang-ext/server/serr"
	"github.com/oxixes/boreal-lang-ext/server/token"
)

// LoginRequest is the body of a login request.
type LoginRequest struct {
	APIKey string `json:"api_key"`
}

// LoginResponse is the body of a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
}

// HTTPCreateLogin returns a HandlerFunc that exchanges a valid API key for a
// bearer token. There is no per-user account system backing this server, so
// every successful login yields a token of identical shape.
func (api API) HTTPCreateLogin() http.HandlerFunc {
	return api.Endpoint(api.epCreateLogin)
}

func (api API) epCreateLogin(req *http.Request) result.Result {
	var body LoginRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest("the request body was invalid", err.Error())
	}

	if body.APIKey == "" {
		return result.BadRequest("api_key: property is empty or missing from request", "empty api key")
	}

	if len(api.APIKeyHash) == 0 {
		return result.Unauthorized("", serr.New("no API key configured for this server", serr.ErrBadCredentials))
	}

	if err := bcrypt.CompareHashAndPassword(api.APIKeyHash, []byte(body.APIKey)); err != nil {
		return result.Unauthorized("", serr.New("", serr.ErrBadCredentials))
	}

	tok, err := token.Issue(api.Secret)
	if err != nil {
		return result.InternalServerError("issue token: %s", err.Error())
	}

	return result.Created(LoginResponse{Token: tok}, "client authenticated with API key")
}
