// Package cmd implements the curlparse CLI commands using Cobra.
//
// Available commands:
//   - parse: Dissect curl command lines into structured entries
//   - convert: Render curl commands as .http request blocks
//   - history: Inspect parses recorded in the local SQLite database
//   - bench: Measure parse latency percentiles
//   - schema: Print or validate against the JSON output schema
//   - version: Show curlparse version information
//
// The CLI supports output formatting (console, JSON, YAML), gjson
// queries over the JSON document, strict parsing, and watch mode for
// re-parsing command files as they change.
package cmd
