// Package journal persists scan output: the labeled CSV table handed to
// downstream tooling, and an optional SQLite history of analysis runs.
package journal

import (
	"time"

	"candlescan/patterns"
)

// RunRecord summarizes one completed analysis run.
type RunRecord struct {
	RunID   string
	Input   string
	Output  string
	Rows    int
	Skipped int
	Started time.Time
	Counts  map[patterns.Tag]int
}

// Journal records and queries run history.
type Journal interface {
	RecordRun(RunRecord) error
	GetRun(runID string) (RunRecord, error)
	ListRuns(limit int) ([]RunRecord, error)
	Close() error
}
