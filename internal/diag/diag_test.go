package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_isErrorSeverity(t *testing.T) {
	d := New(Span{Line: 1, Column: 2}, "bad %s", "thing")
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "bad thing", d.Message)
}

func Test_Warn_isWarningSeverity(t *testing.T) {
	d := Warn(Span{}, "maybe fine")
	assert.Equal(t, SeverityWarning, d.Severity)
}

func Test_Span_End(t *testing.T) {
	s := Span{Position: 10, Length: 5}
	assert.Equal(t, 15, s.End())
}

func Test_Wrap_unwrapsToCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "context")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "context: root cause", err.Error())
}

func Test_FormatExpected_noExpectedList(t *testing.T) {
	msg := FormatExpected("';'", nil)
	assert.Equal(t, "unexpected ';'", msg)
}

func Test_FormatExpected_oxfordJoinsMultiple(t *testing.T) {
	msg := FormatExpected("'x'", []string{"IDENT", "INTLIT", "'('"})
	assert.Contains(t, msg, "IDENT, INTLIT, or '('")
}
