package parser

import (
	"github.com/abdul-hamid-achik/curlparse/packages/core/urlparse"
)

// EntryKind discriminates the variants of a parsed entry.
type EntryKind int

const (
	KindURL EntryKind = iota
	KindMethod
	KindHeader
	KindData
	KindFlag
)

func (k EntryKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindMethod:
		return "method"
	case KindHeader:
		return "header"
	case KindData:
		return "data"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Entry is one structured unit of a parsed curl command.
//
// For valued options, Flag holds the canonical tag ("-X", "-H", "-d" —
// "--data" is canonicalized to "-d") and Value the quoted argument,
// which is never empty. For KindFlag, Flag holds the full identifier
// ("-v", "--insecure") and Value is empty. For KindURL only URL is set.
//
// Entries are immutable once constructed and owned by the caller.
type Entry struct {
	Kind  EntryKind
	Flag  string
	Value string
	URL   *urlparse.URL
}
