package token

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("super-secret-key-used-only-for-tests-0123456789")

func Test_IssueThenValidate_succeeds(t *testing.T) {
	tok, err := Issue(testSecret)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	assert.NoError(t, Validate(tok, testSecret))
}

func Test_Validate_rejectsWrongSecret(t *testing.T) {
	tok, err := Issue(testSecret)
	assert.NoError(t, err)

	err = Validate(tok, []byte("a completely different secret"))
	assert.Error(t, err)
}

func Test_Validate_rejectsGarbage(t *testing.T) {
	assert.Error(t, Validate("not.a.jwt", testSecret))
}

func Test_Get_extractsBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	tok, err := Get(req)
	assert.NoError(t, err)
	assert.Equal(t, "abc123", tok)
}

func Test_Get_rejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := Get(req)
	assert.Error(t, err)
}

func Test_Get_rejectsNonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	_, err := Get(req)
	assert.Error(t, err)
}
