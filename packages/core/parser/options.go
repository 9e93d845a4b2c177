package parser

import (
	"errors"
	"strings"
)

// errEmptyValue rejects valued options whose quoted argument is empty.
// An empty value is never represented as an entry.
var errEmptyValue = errors.New("empty option value")

// valuedOption describes one valued option family: the tags it accepts
// on the command line and the canonical flag stored on the entry. One
// generic parser covers all families instead of per-option copies.
type valuedOption struct {
	kind      EntryKind
	canonical string
	tags      []string
}

// Alternation order is fixed: Method, Header, Data, then Flag. The
// first parser that succeeds at a position wins.
var valuedOptions = []valuedOption{
	{kind: KindMethod, canonical: "-X", tags: []string{"-X"}},
	{kind: KindHeader, canonical: "-H", tags: []string{"-H"}},
	{kind: KindData, canonical: "-d", tags: []string{"-d", "--data"}},
}

// parseValued parses one valued option: optional line continuation,
// leading whitespace, a recognized tag, required whitespace, and a
// quoted argument.
func parseValued(input string, opt valuedOption) (Entry, string, error) {
	s := skipSpace(skipContinuation(input))
	for _, tag := range opt.tags {
		if !strings.HasPrefix(s, tag) {
			continue
		}
		after := s[len(tag):]
		if after == "" || !isSpace(after[0]) {
			continue
		}
		value, rest, err := parseQuotedData(after)
		if err != nil {
			return Entry{}, input, err
		}
		if value == "" {
			return Entry{}, input, errEmptyValue
		}
		return Entry{Kind: opt.kind, Flag: opt.canonical, Value: value}, rest, nil
	}
	return Entry{}, input, errNoMatch
}

// parseFlag parses a bare flag: '-', any one character, then zero or
// more alphanumerics. A flag never absorbs a value — when the text
// after the candidate token is itself quoted data, that data belongs to
// some other construct and the flag match is rejected.
func parseFlag(input string) (Entry, string, error) {
	s := skipSpace(skipContinuation(input))
	if len(s) < 2 || s[0] != '-' || isSpace(s[1]) {
		return Entry{}, input, errNoMatch
	}
	i := 2
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	ident, rest := s[:i], s[i:]
	if next := skipSpace(rest); next != "" && (next[0] == '"' || next[0] == '\'') {
		return Entry{}, input, errNoMatch
	}
	return Entry{Kind: KindFlag, Flag: ident}, rest, nil
}

// parseOption tries each option family in the fixed alternation order.
// A valued option that matched its tag but has a malformed or empty
// argument fails the whole alternation: the error propagates and stalls
// the enclosing repetition instead of falling through to a flag match.
func parseOption(input string) (Entry, string, error) {
	for _, opt := range valuedOptions {
		e, rest, err := parseValued(input, opt)
		if err == nil {
			return e, rest, nil
		}
		if !errors.Is(err, errNoMatch) {
			return Entry{}, input, err
		}
	}
	return parseFlag(input)
}

// parseOptions greedily repeats parseOption, accumulating entries in
// encounter order. The repetition stops at the first position where no
// alternative matches; the remainder is returned unconsumed.
func parseOptions(input string) ([]Entry, string) {
	var entries []Entry
	rest := input
	for {
		e, r, err := parseOption(rest)
		if err != nil {
			return entries, rest
		}
		entries = append(entries, e)
		rest = r
	}
}
