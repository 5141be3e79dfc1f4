package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"candlescan/patterns"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, input, output, rows, skipped, started,
		 doji, hammer, shooting_star, bearish_engulfing, bullish_engulfing, evening_star, morning_star)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Input, r.Output, r.Rows, r.Skipped, r.Started,
		r.Counts[patterns.Doji],
		r.Counts[patterns.Hammer],
		r.Counts[patterns.ShootingStar],
		r.Counts[patterns.BearishEngulfing],
		r.Counts[patterns.BullishEngulfing],
		r.Counts[patterns.EveningStar],
		r.Counts[patterns.MorningStar],
	)
	return err
}

const runColumns = `run_id, input, output, rows, skipped, started,
	doji, hammer, shooting_star, bearish_engulfing, bullish_engulfing, evening_star, morning_star`

// GetRun returns a single run record by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns the most recent runs, newest first. ULID run IDs are
// time-sortable, so ordering by run_id orders by start time.
func (j *SQLiteJournal) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`SELECT `+runColumns+` FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var rec RunRecord
	var doji, hammer, shooting, bearish, bullish, evening, morning int

	err := s.Scan(
		&rec.RunID,
		&rec.Input,
		&rec.Output,
		&rec.Rows,
		&rec.Skipped,
		&rec.Started,
		&doji, &hammer, &shooting, &bearish, &bullish, &evening, &morning,
	)
	if err != nil {
		return RunRecord{}, err
	}

	rec.Counts = map[patterns.Tag]int{
		patterns.Doji:             doji,
		patterns.Hammer:           hammer,
		patterns.ShootingStar:     shooting,
		patterns.BearishEngulfing: bearish,
		patterns.BullishEngulfing: bullish,
		patterns.EveningStar:      evening,
		patterns.MorningStar:      morning,
	}
	return rec, nil
}
