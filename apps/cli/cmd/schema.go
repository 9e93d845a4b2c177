package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/curlparse/packages/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for parse output",
	Long: `Print the JSON Schema that documents produced by "parse --output json"
conform to. Useful for generating types or validating stored output.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), schema.Document)
	},
}

var schemaValidateCmd = &cobra.Command{
	Use:   "validate <file|->",
	Short: "Validate a JSON document against the output schema",
	Args:  cobra.ExactArgs(1),
	RunE:  schemaValidateCommand,
}

func init() {
	schemaCmd.AddCommand(schemaValidateCmd)
}

func schemaValidateCommand(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
	}

	problems, err := schema.Validate(data)
	if err != nil {
		return err
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  %s\n", p)
		}
		return fmt.Errorf("document has %d schema violation(s)", len(problems))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Document is valid.")
	return nil
}
