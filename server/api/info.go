package api

import (
	"net/http"

	"github.com/oxixes/boreal-lang-ext/internal/version"
	"github.com/oxixes/boreal-lang-ext/server/middle"
	"github.com/oxixes/boreal-lang-ext/server/result"
)

// InfoModel describes the response body of the info endpoint.
type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		Boreal string `json:"boreal"`
	} `json:"version"`
	LoggedIn bool `json:"logged_in"`
}

// HTTPGetInfo returns a HandlerFunc that reports the server and toolchain
// versions.
//
// The handler requires that the request context carries middle.AuthLoggedIn;
// it should only ever be reached through middle.OptionalAuth or
// middle.RequireAuth.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return api.Endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	loggedIn, _ := req.Context().Value(middle.AuthLoggedIn).(bool)

	var resp InfoModel
	resp.Version.Server = version.ServerCurrent
	resp.Version.Boreal = version.Current
	resp.LoggedIn = loggedIn

	clientStr := "unauthed client"
	if loggedIn {
		clientStr = "authed client"
	}
	return result.OK(resp, "%s got API info", clientStr)
}
