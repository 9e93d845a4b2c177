package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
)

// Document is the machine-readable form of a parse result. Its JSON
// rendering is the interchange format validated by packages/schema.
type Document struct {
	Command string  `json:"command" yaml:"command"`
	Entries []Entry `json:"entries" yaml:"entries"`
	Time    string  `json:"time" yaml:"time"`
}

// Entry mirrors parser.Entry with stable serialized field names.
type Entry struct {
	Kind  string `json:"kind" yaml:"kind"`
	Flag  string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	URL   *URL   `json:"url,omitempty" yaml:"url,omitempty"`
}

// URL mirrors urlparse.URL.
type URL struct {
	Scheme   string    `json:"scheme" yaml:"scheme"`
	Userinfo *Userinfo `json:"userinfo,omitempty" yaml:"userinfo,omitempty"`
	Host     string    `json:"host" yaml:"host"`
	Path     string    `json:"path,omitempty" yaml:"path,omitempty"`
	Queries  []Query   `json:"queries,omitempty" yaml:"queries,omitempty"`
	Fragment string    `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Userinfo mirrors urlparse.Userinfo.
type Userinfo struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Query is one key/value pair; values may legitimately be empty.
type Query struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// BuildDocument converts a parse result into the serializable document.
func BuildDocument(command string, entries []parser.Entry) Document {
	doc := Document{
		Command: command,
		Entries: make([]Entry, 0, len(entries)),
		Time:    time.Now().Format(time.RFC3339),
	}
	for _, e := range entries {
		entry := Entry{Kind: e.Kind.String(), Flag: e.Flag, Value: e.Value}
		if e.URL != nil {
			u := &URL{
				Scheme:   e.URL.Scheme.String(),
				Host:     e.URL.Host,
				Path:     e.URL.Path,
				Fragment: e.URL.Fragment,
			}
			if e.URL.Userinfo != nil {
				u.Userinfo = &Userinfo{
					Username: e.URL.Userinfo.Username,
					Password: e.URL.Userinfo.Password,
				}
			}
			for _, q := range e.URL.Query {
				u.Queries = append(u.Queries, Query{Key: q.Key, Value: q.Value})
			}
			entry.URL = u
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc
}

// MarshalEntries renders a parse result as indented JSON bytes.
func MarshalEntries(command string, entries []parser.Entry) ([]byte, error) {
	return json.MarshalIndent(BuildDocument(command, entries), "", "  ")
}

// JSONFormatter writes parse results as JSON documents.
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatEntries(command string, entries []parser.Entry) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocument(command, entries))
}
