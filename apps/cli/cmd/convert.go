package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/curlparse/packages/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [command...]",
	Short: "Convert curl commands to .http request blocks",
	Long: `Convert curl command lines into .http request blocks, the plain-text
format understood by file-based API test runners and editor REST clients.

Examples:
  curlparse convert "curl 'https://api.example.com/users' -X 'POST' -d '{}'"
  curlparse convert --file commands.txt > requests.http
  pbpaste | curlparse convert -`,
	Args: cobra.ArbitraryArgs,
	RunE: convertCommand,
}

var (
	convertFileFlag    string
	convertOutFlag     string
	convertNoFlagsFlag bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertFileFlag, "file", "f", "", "Read commands from a file instead of arguments")
	convertCmd.Flags().StringVar(&convertOutFlag, "output-file", "", "Write output to file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertNoFlagsFlag, "no-flags", false, "Drop bare curl flags instead of keeping them as annotations")
}

func convertCommand(cmd *cobra.Command, args []string) error {
	// Reuse the parse command's input plumbing.
	fileFlag = convertFileFlag
	commands, err := collectCommands(args)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		return fmt.Errorf("nothing to convert: pass a command, '-' for stdin, or --file")
	}

	outWriter := cmd.OutOrStdout()
	if convertOutFlag != "" {
		f, err := os.Create(convertOutFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		outWriter = f
	}

	converter := convert.NewConverter(convert.WithFlags(!convertNoFlagsFlag))

	for i, command := range commands {
		block, err := converter.ConvertCommand(command)
		if err != nil {
			return fmt.Errorf("cannot convert command %d: %w", i+1, err)
		}
		if i > 0 {
			fmt.Fprintln(outWriter)
		}
		fmt.Fprint(outWriter, block)
	}

	return nil
}
