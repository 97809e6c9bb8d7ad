package serr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error_messageWithCause(t *testing.T) {
	e := New("bad key", ErrBadCredentials)
	assert.Equal(t, "bad key: "+ErrBadCredentials.Error(), e.Error())
}

func Test_Error_messageWithoutCause(t *testing.T) {
	e := New("just a message")
	assert.Equal(t, "just a message", e.Error())
}

func Test_Error_messageFallsBackToCauseWhenEmpty(t *testing.T) {
	e := New("", ErrBadArgument)
	assert.Equal(t, ErrBadArgument.Error(), e.Error())
}

func Test_Error_IsMatchesCause(t *testing.T) {
	e := New("nope", ErrBadCredentials)
	assert.True(t, errors.Is(e, ErrBadCredentials))
	assert.False(t, errors.Is(e, ErrBadArgument))
}

func Test_Error_UnwrapReturnsCauses(t *testing.T) {
	e := New("nope", ErrBadCredentials, ErrBodyUnmarshal)
	assert.ElementsMatch(t, []error{ErrBadCredentials, ErrBodyUnmarshal}, e.Unwrap())
}
