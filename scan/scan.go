// Package scan wires the pipeline together: feed -> patterns -> journal.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"candlescan/config"
	"candlescan/feed"
	"candlescan/id"
	"candlescan/journal"
	"candlescan/market"
	"candlescan/patterns"
)

// Result holds everything produced by one analysis run.
type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	Rows       []patterns.LabeledRow
	Skipped    []*market.ValidationError
	Summary    patterns.Summary
}

// Processor runs file-level analyses. The journal is optional; pass nil
// to skip run-history recording.
type Processor struct {
	cfg *config.Config
	log zerolog.Logger
	jnl journal.Journal
}

func New(cfg *config.Config, log zerolog.Logger, jnl journal.Journal) *Processor {
	return &Processor{cfg: cfg, log: log, jnl: jnl}
}

// ProcessFile reads a tabular candle file, runs pattern analysis, and
// writes the labeled table to a sibling file named
// `<input-stem>_with_patterns.csv`.
func (p *Processor) ProcessFile(input string) (*Result, error) {
	started := time.Now().UTC()

	s, err := feed.New(p.log).Load(input)
	if err != nil {
		return nil, err
	}

	rows, skipped, err := patterns.AnalyzeWithReport(s, p.cfg.Patterns)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", input, err)
	}
	for _, sk := range skipped {
		p.log.Warn().Int("row", sk.Index).Str("reason", sk.Reason).Msg("skipped invalid row")
	}

	output := outputPath(input)
	if err := journal.WriteLabeled(output, rows); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}

	res := &Result{
		RunID:      id.New(),
		InputPath:  input,
		OutputPath: output,
		Rows:       rows,
		Skipped:    skipped,
		Summary:    patterns.Summarize(rows),
	}

	if p.jnl != nil {
		if err := p.jnl.RecordRun(journal.RunRecord{
			RunID:   res.RunID,
			Input:   input,
			Output:  output,
			Rows:    len(rows),
			Skipped: len(skipped),
			Started: started,
			Counts:  counts(res.Summary),
		}); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
	}

	p.log.Info().
		Str("run_id", res.RunID).
		Str("input", input).
		Str("output", output).
		Int("rows", len(rows)).
		Int("skipped", len(skipped)).
		Msg("scan complete")
	return res, nil
}

// ProcessLatest finds the newest file in dir matching glob (by
// modification time) and processes it.
func (p *Processor) ProcessLatest(dir, glob string) (*Result, error) {
	if glob == "" {
		glob = "*.csv"
	}

	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files matching %s in %s", glob, dir)
	}

	var latest string
	var latestMod time.Time
	for _, m := range matches {
		st, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if latest == "" || st.ModTime().After(latestMod) {
			latest = m
			latestMod = st.ModTime()
		}
	}

	p.log.Debug().Str("path", latest).Msg("picked latest candle file")
	return p.ProcessFile(latest)
}

// outputPath strips compression and csv extensions from the input name
// and appends the conventional suffix.
func outputPath(input string) string {
	stem := input
	for _, ext := range []string{".xz", ".zip", ".csv"} {
		if strings.EqualFold(filepath.Ext(stem), ext) {
			stem = strings.TrimSuffix(stem, filepath.Ext(stem))
		}
	}
	return stem + "_with_patterns.csv"
}

func counts(sum patterns.Summary) map[patterns.Tag]int {
	out := make(map[patterns.Tag]int, len(sum))
	for tag, stat := range sum {
		out[tag] = stat.Count
	}
	return out
}
