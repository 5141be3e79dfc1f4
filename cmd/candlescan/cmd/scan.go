package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"candlescan/journal"
	"candlescan/patterns"
	"candlescan/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Analyze a candle file and write labeled output",
	Long: `Scan reads a CSV candle file (plain, .xz, or .zip), runs all pattern
detectors, and writes the input table plus a 'pattern' column to
<input>_with_patterns.csv alongside the input.

Examples:
  candlescan scan data/NIFTY_2024.csv
  candlescan scan --latest data/
  candlescan scan --skip-invalid --journal data/NIFTY_2024.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var (
	scanLatestDir   string
	scanGlob        string
	scanSkipInvalid bool
	scanJournal     bool
	scanDBPath      string
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanLatestDir, "latest", "", "scan the newest matching file in this directory instead of a named file")
	scanCmd.Flags().StringVar(&scanGlob, "glob", "*.csv", "filename glob used with --latest")
	scanCmd.Flags().BoolVar(&scanSkipInvalid, "skip-invalid", false, "skip invalid rows instead of failing the run")
	scanCmd.Flags().BoolVar(&scanJournal, "journal", false, "record this run in the SQLite run journal")
	scanCmd.Flags().StringVar(&scanDBPath, "db", "", "run journal database path (overrides config)")
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && scanLatestDir == "" {
		return fmt.Errorf("either a file argument or --latest is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if scanSkipInvalid {
		cfg.Patterns.SkipInvalid = true
	}
	if scanJournal {
		cfg.Journal.Enabled = true
	}
	if scanDBPath != "" {
		cfg.Journal.DBPath = scanDBPath
	}

	log := newLogger(cfg)

	var jnl journal.Journal
	if cfg.Journal.Enabled {
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return fmt.Errorf("open run journal: %w", err)
		}
		defer j.Close()
		jnl = j
	}

	p := scan.New(cfg, log, jnl)

	var res *scan.Result
	if scanLatestDir != "" {
		res, err = p.ProcessLatest(scanLatestDir, scanGlob)
	} else {
		res, err = p.ProcessFile(args[0])
	}
	if err != nil {
		return err
	}

	printScanSummary(res)
	return nil
}

func printScanSummary(res *scan.Result) {
	fmt.Println("Candlestick Pattern Analysis Summary:")
	fmt.Printf("  Input file:  %s\n", res.InputPath)
	fmt.Printf("  Output file: %s\n", res.OutputPath)
	fmt.Printf("  Total candles analyzed: %d\n", len(res.Rows))
	if len(res.Skipped) > 0 {
		fmt.Printf("  Skipped invalid rows:   %d\n", len(res.Skipped))
	}
	fmt.Println("  Patterns found:")
	found := false
	for _, tag := range patterns.Tags {
		if n := res.Summary[tag].Count; n > 0 {
			fmt.Printf("    - %s: %d\n", tag, n)
			found = true
		}
	}
	if !found {
		fmt.Println("    (none)")
	}
}
