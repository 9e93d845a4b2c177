// Package parser turns a textual curl invocation into an ordered list
// of typed entries: the target URL followed by the recognized options
// in source order.
//
// The grammar covers:
//   - the leading "curl" command token (case-insensitive)
//   - single- and double-quoted arguments (backslash is literal data)
//   - backslash line continuations between options
//   - the four option families: method (-X), header (-H),
//     data (-d/--data), and bare flags (-v, --insecure, ...)
//
// Parsing is a single left-to-right pass built from small fallible
// functions over a string remainder. Each function either consumes a
// prefix and returns the rest, or fails without consuming anything;
// ordered alternation between them keeps the grammar deterministic.
package parser
