package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/curlparse/packages/core/config"
	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
	"github.com/abdul-hamid-achik/curlparse/packages/history"
	"github.com/abdul-hamid-achik/curlparse/packages/output"
)

var parseCmd = &cobra.Command{
	Use:   "parse [command...]",
	Short: "Parse curl command lines into structured entries",
	Long: `Parse one or more curl command lines into structured entries.

The command can be given as arguments, read from stdin with "-", or
read from a file with --file. Files may hold several commands, one per
logical line; blank lines and lines starting with # are skipped, and a
trailing backslash continues a command on the next line.

Examples:
  curlparse parse "curl 'https://api.example.com/users' -X 'POST'"
  pbpaste | curlparse parse -
  curlparse parse --file commands.txt --output json
  curlparse parse --file commands.txt --query 'entries.0.url.host'
  curlparse parse --file commands.txt --watch
  curlparse parse --part header "curl 'https://example.com' -H 'A: 1' -v"`,
	Args: cobra.ArbitraryArgs,
	RunE: parseCommand,
}

const (
	// WatchDebounceDelay throttles re-parses while a watched file is
	// being written to
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	fileFlag       string
	partFlag       string
	outputFlag     string
	outputFileFlag string
	queryFlag      string
	strictFlag     bool
	saveFlag       bool
	watchFlag      bool
	verboseFlag    bool
	noColorFlag    bool
	configFlag     string
)

func init() {
	parseCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read commands from a file instead of arguments")
	parseCmd.Flags().StringVar(&partFlag, "part", "", "Show only entries of one kind: url, method, header, data, flag")
	parseCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("CURLPARSE_OUTPUT", ""), "Output format: console, json, yaml (env: CURLPARSE_OUTPUT)")
	parseCmd.Flags().StringVar(&outputFileFlag, "output-file", "", "Write output to file (default: stdout)")
	parseCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Print only the JSON document field at this gjson path")
	parseCmd.Flags().BoolVar(&strictFlag, "strict", getEnvBool("CURLPARSE_STRICT", false), "Fail when trailing input cannot be parsed (env: CURLPARSE_STRICT)")
	parseCmd.Flags().BoolVar(&saveFlag, "save", false, "Record parse results in the history database")
	parseCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the --file for changes and re-parse")
	parseCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show URL component breakdown in console output")
	parseCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("CURLPARSE_NO_COLOR", false), "Disable colored output (env: CURLPARSE_NO_COLOR)")
	parseCmd.Flags().StringVar(&configFlag, "config", getEnvString("CURLPARSE_CONFIG", ""), "Path to config file (env: CURLPARSE_CONFIG)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func parseCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	if partFlag != "" && !validPart(partFlag) {
		return fmt.Errorf("invalid --part %q (expected url, method, header, data or flag)", partFlag)
	}

	commands, err := collectCommands(args)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		return fmt.Errorf("nothing to parse: pass a command, '-' for stdin, or --file")
	}

	outWriter := cmd.OutOrStdout()
	if outputFileFlag != "" {
		f, err := os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		outWriter = f
	}

	var store *history.Store
	if saveFlag || cfg.GetSave() {
		store, err = history.Open(cfg.ResolveHistoryPath())
		if err != nil {
			return err
		}
		defer store.Close()
	}

	failed := runParse(outWriter, commands, cfg, store)

	if !watchFlag {
		if failed > 0 {
			os.Exit(ExitParseError)
		}
		return nil
	}

	if fileFlag == "" {
		return fmt.Errorf("--watch requires --file")
	}
	return watchFile(cmd, outWriter, cfg, store)
}

// loadMergedConfig loads the config file (if any) and layers explicitly
// set CLI flags on top.
func loadMergedConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		if configFlag != "" {
			return nil, fmt.Errorf("cannot load config %s: %w", configFlag, err)
		}
		cfg = config.DefaultConfig()
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("output") || outputFlag != "" {
		overrides.Output = outputFlag
	}
	if cmd.Flags().Changed("strict") || strictFlag {
		overrides.Strict = config.BoolPtr(strictFlag)
	}
	if cmd.Flags().Changed("verbose") {
		overrides.Verbose = config.BoolPtr(verboseFlag)
	}
	if cmd.Flags().Changed("no-color") || noColorFlag {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}
	if cmd.Flags().Changed("save") {
		overrides.Save = config.BoolPtr(saveFlag)
	}
	return cfg.Merge(overrides), nil
}

func validPart(part string) bool {
	switch part {
	case "url", "method", "header", "data", "flag":
		return true
	}
	return false
}

// collectCommands gathers the commands to parse from arguments, stdin
// or the --file flag.
func collectCommands(args []string) ([]string, error) {
	if fileFlag != "" {
		return readCommandFile(fileFlag)
	}
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		return splitCommands(string(data)), nil
	}
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	return nil, nil
}

func readCommandFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return splitCommands(string(data)), nil
}

// splitCommands breaks file or stdin content into logical commands.
// Blank lines and # comments separate commands; a trailing backslash
// joins the next physical line into the same command.
func splitCommands(content string) []string {
	var commands []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			commands = append(commands, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			flush()
			continue
		}
		current = append(current, line)
		if !strings.HasSuffix(trimmed, "\\") {
			flush()
		}
	}
	flush()

	return commands
}

// runParse parses each command and writes formatted output. It returns
// the number of commands that failed to parse.
func runParse(w io.Writer, commands []string, cfg *config.Config, store *history.Store) int {
	console := output.NewConsoleFormatter(
		output.WithWriter(w),
		output.WithVerbose(cfg.GetVerbose()),
		output.WithNoColor(cfg.GetNoColor()),
	)

	failed := 0
	for i, command := range commands {
		entries, err := parseOne(command, cfg.GetStrict())
		if err != nil {
			console.FormatError(err)
			failed++
			continue
		}

		if store != nil {
			if _, err := store.Record(command, entries); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
			}
		}

		entries = filterEntries(entries, partFlag)

		if queryFlag != "" {
			if err := printQuery(w, command, entries); err != nil {
				console.FormatError(err)
				failed++
			}
			continue
		}

		switch strings.ToLower(cfg.Output) {
		case "json":
			if err := output.NewJSONFormatter(output.JSONWithWriter(w)).FormatEntries(command, entries); err != nil {
				console.FormatError(err)
				failed++
			}
		case "yaml":
			if err := output.NewYAMLFormatter(output.YAMLWithWriter(w)).FormatEntries(command, entries); err != nil {
				console.FormatError(err)
				failed++
			}
		default: // "console"
			if i > 0 {
				fmt.Fprintln(w)
			}
			console.FormatEntries(command, entries)
		}
	}

	return failed
}

func parseOne(command string, strict bool) ([]parser.Entry, error) {
	if strict {
		return parser.ParseStrict(command)
	}
	return parser.Parse(command)
}

func filterEntries(entries []parser.Entry, part string) []parser.Entry {
	if part == "" {
		return entries
	}
	filtered := make([]parser.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind.String() == part {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// printQuery renders the JSON document and prints the value at the
// gjson path given by --query.
func printQuery(w io.Writer, command string, entries []parser.Entry) error {
	data, err := output.MarshalEntries(command, entries)
	if err != nil {
		return err
	}
	result := gjson.GetBytes(data, queryFlag)
	if !result.Exists() {
		return fmt.Errorf("query %q matched nothing", queryFlag)
	}
	fmt.Fprintln(w, result.String())
	return nil
}

// watchFile re-parses the --file whenever it changes. A rate limiter
// collapses the bursts of write events editors emit while saving.
func watchFile(cmd *cobra.Command, w io.Writer, cfg *config.Config, store *history.Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(fileFlag)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", fileFlag, err)
	}

	limiter := rate.NewLimiter(rate.Every(WatchDebounceDelay), 1)

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n\n", fileFlag)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(fileFlag) {
				continue
			}
			if !limiter.Allow() {
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\n\n", event.Name)

			commands, err := readCommandFile(fileFlag)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			runParse(w, commands, cfg, store)

			fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", fileFlag)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}
