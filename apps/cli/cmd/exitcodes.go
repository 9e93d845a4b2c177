package cmd

// Exit codes for the curlparse CLI
const (
	// ExitSuccess indicates every command parsed
	ExitSuccess = 0

	// ExitParseError indicates one or more commands failed to parse
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
