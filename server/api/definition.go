package api

import (
	"net/http"
	"strconv"

	"github.com/oxixes/boreal-lang-ext"
	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/server/result"
)

// DefinitionResponse is the body of a successful definition response.
type DefinitionResponse struct {
	Found  bool `json:"found"`
	Line   int  `json:"line,omitempty"`
	Column int  `json:"column,omitempty"`
	Length int  `json:"length,omitempty"`
}

// HTTPGetDefinition returns a HandlerFunc that resolves the identifier at a
// given line/column in a posted source buffer to its declaration site.
//
// The source is passed as a query parameter rather than a JSON body because
// the request is logically a GET: it has no side effects and is naturally
// cacheable by the caller.
func (api API) HTTPGetDefinition() http.HandlerFunc {
	return api.Endpoint(api.epGetDefinition)
}

func (api API) epGetDefinition(req *http.Request) result.Result {
	q := req.URL.Query()
	source := q.Get("source")

	line, err := strconv.Atoi(q.Get("line"))
	if err != nil {
		return result.BadRequest("line: must be an integer", err.Error())
	}
	column, err := strconv.Atoi(q.Get("column"))
	if err != nil {
		return result.BadRequest("column: must be an integer", err.Error())
	}

	loc := boreal.FindDefinitionWithConfig(source, line, column, config.Default())

	resp := DefinitionResponse{Found: loc.Found}
	if loc.Found {
		resp.Line = loc.Span.Line
		resp.Column = loc.Span.Column
		resp.Length = loc.Span.Length
	}

	return result.OK(resp, "definition lookup at %d:%d (found=%t)", line, column, loc.Found)
}
