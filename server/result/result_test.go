package result

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OK_writesJSONWithStatus200(t *testing.T) {
	r := OK(map[string]string{"hello": "world"})
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func Test_BadRequest_isErrAndJSON(t *testing.T) {
	r := BadRequest("bad input", "field x missing")
	assert.True(t, r.IsErr)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "field x missing", r.InternalMsg)
}

func Test_Unauthorized_setsWWWAuthenticateHeader(t *testing.T) {
	r := Unauthorized("")
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
}

func Test_NoContent_writesEmptyBody(t *testing.T) {
	r := NoContent()
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func Test_TextErr_writesPlainText(t *testing.T) {
	r := TextErr(http.StatusInternalServerError, "oops", "panic: boom")
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "oops", w.Body.String())
}

func Test_WriteResponse_panicsOnUnpopulatedResult(t *testing.T) {
	var r Result
	w := httptest.NewRecorder()
	assert.Panics(t, func() { r.WriteResponse(w) })
}

func Test_WithHeader_doesNotMutateOriginal(t *testing.T) {
	base := OK(nil)
	withHdr := base.WithHeader("X-Test", "1")

	assert.Empty(t, base.hdrs)
	w := httptest.NewRecorder()
	withHdr.WriteResponse(w)
	assert.Equal(t, "1", w.Header().Get("X-Test"))
}
