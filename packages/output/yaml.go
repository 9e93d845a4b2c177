package output

import (
	"io"
	"os"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes the same document shape as the JSON formatter,
// encoded as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

type YAMLOption func(*YAMLFormatter)

func NewYAMLFormatter(opts ...YAMLOption) *YAMLFormatter {
	f := &YAMLFormatter{writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func YAMLWithWriter(w io.Writer) YAMLOption {
	return func(f *YAMLFormatter) {
		f.writer = w
	}
}

func (f *YAMLFormatter) FormatEntries(command string, entries []parser.Entry) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(BuildDocument(command, entries))
}
