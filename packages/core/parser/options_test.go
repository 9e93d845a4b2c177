package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOption_Method(t *testing.T) {
	e, rest, err := parseOption(`-X 'POST' tail`)
	require.NoError(t, err)
	assert.Equal(t, Entry{Kind: KindMethod, Flag: "-X", Value: "POST"}, e)
	assert.Equal(t, "tail", rest)
}

func TestParseOption_Header(t *testing.T) {
	e, _, err := parseOption(`-H "Accept: */*"`)
	require.NoError(t, err)
	assert.Equal(t, KindHeader, e.Kind)
	assert.Equal(t, "-H", e.Flag)
	assert.Equal(t, "Accept: */*", e.Value)
}

func TestParseOption_DataCanonicalized(t *testing.T) {
	short, _, err := parseOption(`-d 'a=b'`)
	require.NoError(t, err)

	long, _, err := parseOption(`--data 'a=b'`)
	require.NoError(t, err)

	// Both spellings map to the canonical "-d" identifier.
	assert.Equal(t, short, long)
	assert.Equal(t, Entry{Kind: KindData, Flag: "-d", Value: "a=b"}, long)
}

func TestParseOption_Flag(t *testing.T) {
	e, rest, err := parseOption(`-v next`)
	require.NoError(t, err)
	assert.Equal(t, Entry{Kind: KindFlag, Flag: "-v"}, e)
	assert.Equal(t, " next", rest)

	e, _, err = parseOption(`--insecure`)
	require.NoError(t, err)
	assert.Equal(t, Entry{Kind: KindFlag, Flag: "--insecure"}, e)
}

func TestParseOption_HeaderBeatsFlag(t *testing.T) {
	// "-H" followed by quoted data must parse as a header, never as a
	// bare "-H" flag that strands its value.
	e, _, err := parseOption(`-H "X: 1"`)
	require.NoError(t, err)
	assert.Equal(t, KindHeader, e.Kind)
	assert.Equal(t, "X: 1", e.Value)
}

func TestParseOption_FlagRejectedBeforeQuotedData(t *testing.T) {
	// An unrecognized option followed by quoted data is not a flag:
	// the flag parser must not absorb another construct's value.
	_, _, err := parseOption(`-Z "value"`)
	assert.Error(t, err)
}

func TestParseOption_EmptyValueRejected(t *testing.T) {
	_, _, err := parseOption(`-X ""`)
	assert.Error(t, err)

	_, _, err = parseOption(`-d ''`)
	assert.Error(t, err)
}

func TestParseOption_RequiresWhitespaceAfterTag(t *testing.T) {
	// The tag and its argument must be separated; "-X'GET'" is not a
	// method option, and the flag reading is rejected by the quoted
	// data that follows.
	_, _, err := parseOption(`-X'GET'`)
	assert.Error(t, err)
}

func TestParseOption_LineContinuationPrefix(t *testing.T) {
	e, _, err := parseOption("\\\n  -X 'GET'")
	require.NoError(t, err)
	assert.Equal(t, Entry{Kind: KindMethod, Flag: "-X", Value: "GET"}, e)
}

func TestParseOptions_StopsAtFirstStall(t *testing.T) {
	entries, rest := parseOptions(`-X 'GET' -H 'A: 1' notanoption -v`)
	require.Len(t, entries, 2)
	assert.Equal(t, KindMethod, entries[0].Kind)
	assert.Equal(t, KindHeader, entries[1].Kind)
	assert.Contains(t, rest, "notanoption")
}

func TestParseOptions_EncounterOrder(t *testing.T) {
	entries, rest := parseOptions(`-H 'B: 2' -d 'x=y' -X 'PUT' --insecure`)
	assert.Empty(t, rest)
	require.Len(t, entries, 4)
	assert.Equal(t, KindHeader, entries[0].Kind)
	assert.Equal(t, KindData, entries[1].Kind)
	assert.Equal(t, KindMethod, entries[2].Kind)
	assert.Equal(t, Entry{Kind: KindFlag, Flag: "--insecure"}, entries[3])
}
