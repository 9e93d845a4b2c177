package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/curlparse/packages/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench <command...>",
	Short: "Measure parse latency for a command",
	Long: `Parse a command repeatedly and report latency percentiles.

Examples:
  curlparse bench "curl 'https://api.example.com/users' -X 'POST'"
  curlparse bench -n 100000 "curl 'https://example.com' -v"`,
	Args: cobra.MinimumNArgs(1),
	RunE: benchCommand,
}

var benchIterationsFlag int

func init() {
	benchCmd.Flags().IntVarP(&benchIterationsFlag, "iterations", "n", 10000, "Number of parse iterations")
}

func benchCommand(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")

	result, err := bench.Run(command, benchIterationsFlag)
	if err != nil {
		return err
	}

	faint := color.New(color.Faint).SprintFunc()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %d entries per parse, %d iterations in %s\n\n",
		faint("bench:"), result.Entries, result.Iterations, result.Total.Round(time.Microsecond))
	fmt.Fprintf(out, "  p50     %s\n", result.P50)
	fmt.Fprintf(out, "  p95     %s\n", result.P95)
	fmt.Fprintf(out, "  p99     %s\n", result.P99)
	fmt.Fprintf(out, "  min     %s\n", result.Min)
	fmt.Fprintf(out, "  max     %s\n", result.Max)
	fmt.Fprintf(out, "  mean    %s\n", result.Mean)
	fmt.Fprintf(out, "  stddev  %s\n", result.StdDev)

	return nil
}
