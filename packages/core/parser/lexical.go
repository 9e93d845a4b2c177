package parser

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote indicates a quote was opened but never closed.
var ErrUnterminatedQuote = errors.New("unterminated quoted data")

// errNoMatch is the internal "this alternative does not apply here"
// failure. It never escapes the package.
var errNoMatch = errors.New("no match")

const whitespace = " \t\r\n"

func skipSpace(s string) string {
	return strings.TrimLeft(s, whitespace)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseQuote parses one value enclosed in the given delimiter: leading
// whitespace is skipped, the content runs to the next occurrence of the
// same delimiter, and trailing whitespace after the closing delimiter
// is consumed. Backslashes inside the content are literal data, not
// escape introducers.
func parseQuote(input string, delim byte) (content, rest string, err error) {
	s := skipSpace(input)
	if len(s) == 0 || s[0] != delim {
		return "", input, errNoMatch
	}
	end := strings.IndexByte(s[1:], delim)
	if end < 0 {
		return "", input, ErrUnterminatedQuote
	}
	return s[1 : 1+end], skipSpace(s[end+2:]), nil
}

// parseQuotedData parses a quoted value of either style. The
// double-quoted form is tried first, unconditionally; only when it does
// not apply is the single-quoted form attempted. An opened-but-unclosed
// double quote is reported as such instead of falling through.
func parseQuotedData(input string) (content, rest string, err error) {
	content, rest, err = parseQuote(input, '"')
	if err == nil || errors.Is(err, ErrUnterminatedQuote) {
		return content, rest, err
	}
	return parseQuote(input, '\'')
}

// parseLineContinuation recognizes a curl line-continuation marker:
// optional whitespace, a single backslash, optional whitespace. A
// trailing newline is not required, so a continuation at the very end
// of the input still matches.
func parseLineContinuation(input string) (rest string, ok bool) {
	s := skipSpace(input)
	if len(s) == 0 || s[0] != '\\' {
		return input, false
	}
	return skipSpace(s[1:]), true
}

// skipContinuation applies parseLineContinuation as an optional prefix.
func skipContinuation(input string) string {
	if rest, ok := parseLineContinuation(input); ok {
		return rest
	}
	return input
}
