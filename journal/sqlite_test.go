package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candlescan/id"
	"candlescan/patterns"
)

func openTestJournal(t *testing.T) *SQLiteJournal {
	t.Helper()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func testRun(runID string) RunRecord {
	return RunRecord{
		RunID:   runID,
		Input:   "nifty.csv",
		Output:  "nifty_with_patterns.csv",
		Rows:    250,
		Skipped: 2,
		Started: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Counts: map[patterns.Tag]int{
			patterns.Doji:             14,
			patterns.BullishEngulfing: 3,
		},
	}
}

func TestRecordAndGetRun(t *testing.T) {
	j := openTestJournal(t)

	runID := id.New()
	require.NoError(t, j.RecordRun(testRun(runID)))

	rec, err := j.GetRun(runID)
	require.NoError(t, err)

	assert.Equal(t, "nifty.csv", rec.Input)
	assert.Equal(t, 250, rec.Rows)
	assert.Equal(t, 2, rec.Skipped)
	assert.Equal(t, 14, rec.Counts[patterns.Doji])
	assert.Equal(t, 3, rec.Counts[patterns.BullishEngulfing])
	assert.Equal(t, 0, rec.Counts[patterns.MorningStar])
}

func TestGetRunNotFound(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.GetRun("missing")
	assert.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	first := id.New()
	second := id.New()
	require.NoError(t, j.RecordRun(testRun(first)))
	require.NoError(t, j.RecordRun(testRun(second)))

	runs, err := j.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, first, runs[1].RunID)
}
