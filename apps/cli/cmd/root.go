package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "curlparse",
	Short: "Dissect curl command lines. No guessing.",
	Long: `curlparse breaks a curl invocation copied from browser devtools or
shell history into structured entries: the target URL split into its
components, plus every -X, -H, -d and bare flag in source order.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
