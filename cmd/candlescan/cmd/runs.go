package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"candlescan/journal"
	"candlescan/patterns"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Query the run journal",
	Long: `Query and display analysis runs recorded in the SQLite run journal.

Examples:
  candlescan runs list
  candlescan runs show <run-id>`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var (
	runsDBPath string
	runsLimit  int
)

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)

	runsCmd.PersistentFlags().StringVarP(&runsDBPath, "db", "d", "", "run journal database path (overrides config)")
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum runs to list")
}

func openJournal() (*journal.SQLiteJournal, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.Journal.DBPath
	if runsDBPath != "" {
		path = runsDBPath
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open run journal: %w", err)
	}
	return j, nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns(runsLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  rows=%d skipped=%d  %s\n",
			r.RunID, r.Started.Format("2006-01-02 15:04:05"), r.Rows, r.Skipped, r.Input)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	r, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Printf("Run:     %s\n", r.RunID)
	fmt.Printf("Started: %s\n", r.Started.Format("2006-01-02 15:04:05"))
	fmt.Printf("Input:   %s\n", r.Input)
	fmt.Printf("Output:  %s\n", r.Output)
	fmt.Printf("Rows:    %d (skipped %d)\n", r.Rows, r.Skipped)
	fmt.Println("Patterns:")
	for _, tag := range patterns.Tags {
		fmt.Printf("  %-18s %d\n", tag, r.Counts[tag])
	}
	return nil
}
