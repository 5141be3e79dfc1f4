package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"candlescan/feed"
	"candlescan/patterns"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print per-pattern occurrence counts for a candle file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var datesCmd = &cobra.Command{
	Use:   "dates <file> <pattern>",
	Short: "Print the dates on which one pattern fired",
	Long: `Dates analyzes a candle file and prints the dates where the named
pattern was confirmed, in ascending order. A pattern that never fired
prints nothing and exits 0.

Example:
  candlescan dates data/NIFTY_2024.csv Doji`,
	Args: cobra.ExactArgs(2),
	RunE: runDates,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(datesCmd)
}

// analyzeFile loads and labels a file in memory, without writing output.
func analyzeFile(path string) ([]patterns.LabeledRow, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)

	s, err := feed.New(log).Load(path)
	if err != nil {
		return nil, err
	}
	rows, err := patterns.Analyze(s, cfg.Patterns)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	return rows, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	rows, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	sum := patterns.Summarize(rows)
	for _, tag := range patterns.Tags {
		fmt.Printf("%-18s %d\n", tag, sum[tag].Count)
	}
	return nil
}

func runDates(cmd *cobra.Command, args []string) error {
	tag, err := parseTag(args[1])
	if err != nil {
		return err
	}

	rows, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	for _, d := range patterns.Dates(rows, tag) {
		fmt.Println(d.Format("2006-01-02"))
	}
	return nil
}

func parseTag(raw string) (patterns.Tag, error) {
	for _, tag := range patterns.Tags {
		if string(tag) == raw {
			return tag, nil
		}
	}
	return "", fmt.Errorf("unknown pattern %q (one of %v)", raw, patterns.Tags)
}
