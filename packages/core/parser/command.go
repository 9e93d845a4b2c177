package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/curlparse/packages/core/urlparse"
)

const commandToken = "curl"

var (
	// ErrNotCurlCommand indicates the input does not begin with the
	// curl command token.
	ErrNotCurlCommand = errors.New("not a curl command")

	// ErrMissingURL indicates no quoted token after the command header
	// could be decomposed into a URL. A curl command without a target
	// URL is malformed, not partially parseable.
	ErrMissingURL = errors.New("no target URL found")

	// ErrTrailingInput is returned by ParseStrict when non-whitespace
	// input remains after the option repetition stalls.
	ErrTrailingInput = errors.New("unparsed trailing input")
)

// IsCurlCommand reports whether the input begins with the literal
// "curl" token, ignoring leading whitespace and letter case.
func IsCurlCommand(input string) bool {
	trimmed := strings.TrimLeft(input, whitespace)
	return strings.HasPrefix(strings.ToLower(trimmed), commandToken)
}

// StripCommandHeader removes the leading command token from an already
// left-trimmed input. Callers must check IsCurlCommand first; behavior
// on shorter input is undefined.
func StripCommandHeader(input string) string {
	return input[len(commandToken):]
}

// Parse parses a full curl command into its ordered entries: the URL
// first, then options in source order.
//
// Trailing text that matches none of the option families is silently
// discarded; use ParseStrict to surface it instead.
func Parse(input string) ([]Entry, error) {
	entries, _, err := parse(input)
	return entries, err
}

// ParseStrict behaves like Parse but additionally returns
// ErrTrailingInput when non-whitespace input remains unconsumed. The
// entries gathered before the stall are returned alongside the error.
func ParseStrict(input string) ([]Entry, error) {
	entries, rest, err := parse(input)
	if err != nil {
		return nil, err
	}
	if trailing := strings.TrimSpace(rest); trailing != "" {
		return entries, fmt.Errorf("%w: %q", ErrTrailingInput, trailing)
	}
	return entries, nil
}

func parse(input string) ([]Entry, string, error) {
	if !IsCurlCommand(input) {
		return nil, input, ErrNotCurlCommand
	}
	rest := StripCommandHeader(strings.TrimLeft(input, whitespace))

	raw, rest, err := parseQuotedData(skipContinuation(rest))
	if err != nil {
		return nil, rest, fmt.Errorf("%w: %v", ErrMissingURL, err)
	}
	u, err := urlparse.Parse(raw)
	if err != nil {
		return nil, rest, fmt.Errorf("%w: %v", ErrMissingURL, err)
	}

	entries := []Entry{{Kind: KindURL, URL: u}}
	options, rest := parseOptions(rest)
	return append(entries, options...), rest, nil
}
