package middle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxixes/boreal-lang-ext/server/token"
)

var testSecret = []byte("super-secret-key-used-only-for-tests-0123456789")

func lastHandler() (http.Handler, *bool) {
	var loggedIn bool
	reached := false
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reached = true
		loggedIn, _ = req.Context().Value(AuthLoggedIn).(bool)
		_ = loggedIn
		w.WriteHeader(http.StatusOK)
	})
	return h, &reached
}

func Test_RequireAuth_rejectsMissingToken(t *testing.T) {
	next, reached := lastHandler()
	mw := RequireAuth(testSecret, 0)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func Test_RequireAuth_acceptsValidToken(t *testing.T) {
	next, reached := lastHandler()
	mw := RequireAuth(testSecret, 0)(next)

	tok, err := token.Issue(testSecret)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func Test_OptionalAuth_passesUnauthedRequestThrough(t *testing.T) {
	next, reached := lastHandler()
	mw := OptionalAuth(testSecret, 0)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func Test_DontPanic_convertsPanicToHTTP500(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	mw := DontPanic()(panicky)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { mw.ServeHTTP(w, req) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
