package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuotedData_DoubleQuoted(t *testing.T) {
	content, rest, err := parseQuotedData(`"abc"`)
	require.NoError(t, err)
	assert.Equal(t, "abc", content)
	assert.Empty(t, rest)
}

func TestParseQuotedData_SingleQuoted(t *testing.T) {
	content, rest, err := parseQuotedData(`'abc'`)
	require.NoError(t, err)
	assert.Equal(t, "abc", content)
	assert.Empty(t, rest)
}

func TestParseQuotedData_LeadingAndTrailingWhitespace(t *testing.T) {
	content, rest, err := parseQuotedData("  \t 'abc'   next")
	require.NoError(t, err)
	assert.Equal(t, "abc", content)
	assert.Equal(t, "next", rest)
}

func TestParseQuotedData_Unterminated(t *testing.T) {
	_, _, err := parseQuotedData(`"abc`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)

	_, _, err = parseQuotedData(`'abc`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestParseQuotedData_DoubleQuoteTriedFirst(t *testing.T) {
	// The double-quoted reading wins even though a single-quoted
	// reading also starts at the same position.
	content, rest, err := parseQuotedData(`"a'b"c'`)
	require.NoError(t, err)
	assert.Equal(t, "a'b", content)
	assert.Equal(t, "c'", rest)
}

func TestParseQuotedData_BackslashIsLiteral(t *testing.T) {
	content, _, err := parseQuotedData(`"a\nb\"`)
	require.NoError(t, err)
	assert.Equal(t, `a\nb\`, content)
}

func TestParseQuotedData_NotQuoted(t *testing.T) {
	_, _, err := parseQuotedData(`plain`)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnterminatedQuote)
}

func TestParseQuotedData_EmptyContent(t *testing.T) {
	content, rest, err := parseQuotedData(`"" tail`)
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.Equal(t, "tail", rest)
}

func TestParseLineContinuation(t *testing.T) {
	rest, ok := parseLineContinuation("  \\ \n  -X 'GET'")
	assert.True(t, ok)
	assert.Equal(t, "-X 'GET'", rest)

	// No trailing newline required.
	rest, ok = parseLineContinuation(" \\")
	assert.True(t, ok)
	assert.Empty(t, rest)

	// No backslash: nothing is consumed.
	rest, ok = parseLineContinuation("  -X 'GET'")
	assert.False(t, ok)
	assert.Equal(t, "  -X 'GET'", rest)
}
