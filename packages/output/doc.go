// Package output renders parse results for humans and machines.
//
// Three formatters are provided: console (colored, one line per
// entry), JSON (the stable document shape downstream tools consume,
// also described by packages/schema), and YAML (the same document as
// YAML).
package output
