// Package convert renders parsed curl commands as .http request
// documents, the plain-text format used by file-based API test runners.
package convert

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
)

// Converter renders parse results as .http request blocks.
type Converter struct {
	includeFlags bool
}

// Option is a functional option for Converter.
type Option func(*Converter)

// WithFlags configures whether bare curl flags are kept as annotation
// comments in the output.
func WithFlags(include bool) Option {
	return func(c *Converter) {
		c.includeFlags = include
	}
}

// NewConverter creates a new converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		includeFlags: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertCommand parses a curl command and renders it as one .http
// request block.
func (c *Converter) ConvertCommand(command string) (string, error) {
	entries, err := parser.Parse(command)
	if err != nil {
		return "", err
	}
	return c.Render(entries)
}

// Render renders already-parsed entries. The entry order is the source
// order: URL first, then options.
func (c *Converter) Render(entries []parser.Entry) (string, error) {
	var (
		target  string
		path    string
		method  string
		headers []string
		data    []string
		flags   []string
	)

	for _, e := range entries {
		switch e.Kind {
		case parser.KindURL:
			if e.URL != nil {
				target = e.URL.String()
				path = e.URL.Path
			}
		case parser.KindMethod:
			method = strings.ToUpper(e.Value)
		case parser.KindHeader:
			headers = append(headers, e.Value)
		case parser.KindData:
			data = append(data, e.Value)
		case parser.KindFlag:
			flags = append(flags, e.Flag)
		}
	}

	if target == "" {
		return "", fmt.Errorf("no URL entry to convert")
	}

	// curl semantics: -d without an explicit method implies POST.
	if method == "" {
		method = "GET"
		if len(data) > 0 {
			method = "POST"
		}
	}

	var sb strings.Builder

	sb.WriteString("### ")
	sb.WriteString(requestName(method, path))
	sb.WriteString("\n")

	if c.includeFlags {
		for _, flag := range flags {
			sb.WriteString("# @flag ")
			sb.WriteString(flag)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(method)
	sb.WriteString(" ")
	sb.WriteString(target)
	sb.WriteString("\n")

	for _, h := range headers {
		sb.WriteString(h)
		sb.WriteString("\n")
	}

	// Multiple -d values are joined with '&', as curl itself sends them.
	if len(data) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(data, "&"))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// requestName derives a readable block name from the method and path.
func requestName(method, path string) string {
	name := strings.Trim(path, "/")
	if name == "" {
		name = "root"
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ToLower(method) + "_" + name
}
