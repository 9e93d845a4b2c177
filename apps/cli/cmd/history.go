package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/curlparse/packages/core/config"
	"github.com/abdul-hamid-achik/curlparse/packages/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the parse history database",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded parses, most recent first",
	RunE:  historyListCommand,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded parses",
	RunE:  historyClearCommand,
}

var (
	historyPathFlag  string
	historyLimitFlag int
)

func init() {
	historyCmd.PersistentFlags().StringVar(&historyPathFlag, "history-path", getEnvString("CURLPARSE_HISTORY", ""), "History database location (env: CURLPARSE_HISTORY)")
	historyListCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", getEnvInt("CURLPARSE_HISTORY_LIMIT", 20), "Maximum records to show, 0 for all (env: CURLPARSE_HISTORY_LIMIT)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory() (*history.Store, error) {
	path := historyPathFlag
	if path == "" {
		cfg, err := config.LoadConfig("")
		if err != nil {
			cfg = config.DefaultConfig()
		}
		path = cfg.ResolveHistoryPath()
	}
	return history.Open(path)
}

func historyListCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(historyLimitFlag)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded parses.")
		return nil
	}

	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s (%d entries)\n",
			faint(r.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			faint(r.ID[:8]),
			cyan(r.URL),
			r.EntryCount,
		)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r.Command)
	}

	return nil
}

func historyClearCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
