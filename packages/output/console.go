package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
	"github.com/fatih/color"
)

// ConsoleFormatter renders parse results as a colored, human-readable
// listing, one entry per line in source order.
type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatEntries(command string, entries []parser.Entry) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, e := range entries {
		switch e.Kind {
		case parser.KindURL:
			fmt.Fprintf(f.writer, "  %s     %s\n", cyan("url"), e.URL.String())
			if f.verbose {
				f.formatURLDetail(e, faint)
			}
		case parser.KindMethod:
			fmt.Fprintf(f.writer, "  %s  %s %s\n", green("method"), faint(e.Flag), e.Value)
		case parser.KindHeader:
			fmt.Fprintf(f.writer, "  %s  %s %s\n", yellow("header"), faint(e.Flag), e.Value)
		case parser.KindData:
			fmt.Fprintf(f.writer, "  %s    %s %s\n", magenta("data"), faint(e.Flag), e.Value)
		case parser.KindFlag:
			fmt.Fprintf(f.writer, "  %s    %s\n", blue("flag"), e.Flag)
		}
	}
}

func (f *ConsoleFormatter) formatURLDetail(e parser.Entry, faint func(...any) string) {
	u := e.URL
	fmt.Fprintf(f.writer, "    %s %s\n", faint("scheme:"), u.Scheme)
	if u.Userinfo != nil {
		fmt.Fprintf(f.writer, "    %s %s:%s\n", faint("userinfo:"), u.Userinfo.Username, u.Userinfo.Password)
	}
	fmt.Fprintf(f.writer, "    %s %s\n", faint("host:"), u.Host)
	if u.Path != "" {
		fmt.Fprintf(f.writer, "    %s %s\n", faint("path:"), u.Path)
	}
	for _, q := range u.Query {
		fmt.Fprintf(f.writer, "    %s %s=%s\n", faint("query:"), q.Key, q.Value)
	}
	if u.Fragment != "" {
		fmt.Fprintf(f.writer, "    %s %s\n", faint("fragment:"), u.Fragment)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("error:"), err)
}
