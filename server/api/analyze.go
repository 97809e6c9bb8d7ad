package api

import (
	"net/http"

	"github.com/oxixes/boreal-lang-ext"
	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/sema"
	"github.com/oxixes/boreal-lang-ext/server/result"
)

// AnalyzeRequest is the body of an analyze request.
type AnalyzeRequest struct {
	Source string `json:"source"`
}

// DiagnosticModel is the JSON shape of a single diag.Diagnostic.
type DiagnosticModel struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Length  int    `json:"length"`
}

// SemanticTokenModel is the JSON shape of a single sema.SemanticToken.
type SemanticTokenModel struct {
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Length     int    `json:"length"`
	TokenType  string `json:"token_type"`
	Definition bool   `json:"definition"`
}

// AnalyzeResponse is the body of a successful analyze response.
type AnalyzeResponse struct {
	RunID            string               `json:"run_id"`
	Accepted         bool                 `json:"accepted"`
	LexicalErrors    []DiagnosticModel    `json:"lexical_errors"`
	SyntaxErrors     []DiagnosticModel    `json:"syntax_errors"`
	SemanticErrors   []DiagnosticModel    `json:"semantic_errors"`
	SemanticWarnings []DiagnosticModel    `json:"semantic_warnings"`
	SemanticTokens   []SemanticTokenModel `json:"semantic_tokens"`
}

func diagnosticModels(ds []diag.Diagnostic) []DiagnosticModel {
	models := make([]DiagnosticModel, len(ds))
	for i, d := range ds {
		models[i] = DiagnosticModel{
			Message: d.Message,
			Line:    d.Span.Line,
			Column:  d.Span.Column,
			Length:  d.Span.Length,
		}
	}
	return models
}

func semanticTokenModels(ts []sema.SemanticToken) []SemanticTokenModel {
	models := make([]SemanticTokenModel, len(ts))
	for i, t := range ts {
		models[i] = SemanticTokenModel{
			Line:       t.Line,
			Column:     t.Column,
			Length:     t.Length,
			TokenType:  t.TokenType.String(),
			Definition: t.Modifiers&sema.ModifierDefinition != 0,
		}
	}
	return models
}

// HTTPCreateAnalyze returns a HandlerFunc that runs the full Boreal analysis
// pipeline over a posted source buffer.
func (api API) HTTPCreateAnalyze() http.HandlerFunc {
	return api.Endpoint(api.epCreateAnalyze)
}

func (api API) epCreateAnalyze(req *http.Request) result.Result {
	var body AnalyzeRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest("the request body was invalid", err.Error())
	}

	res := boreal.AnalyzeWithConfig(body.Source, config.Default())

	resp := AnalyzeResponse{
		RunID:            res.RunID.String(),
		Accepted:         res.Accepted,
		LexicalErrors:    diagnosticModels(res.LexicalErrors),
		SyntaxErrors:     diagnosticModels(res.SyntaxErrors),
		SemanticErrors:   diagnosticModels(res.SemanticErrors),
		SemanticWarnings: diagnosticModels(res.SemanticWarnings),
		SemanticTokens:   semanticTokenModels(res.SemanticTokens),
	}

	return result.OK(resp, "ran analysis %s (ok=%t)", res.RunID, res.OK())
}
