package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	input TEXT NOT NULL,
	output TEXT NOT NULL,
	rows INTEGER NOT NULL,
	skipped INTEGER NOT NULL,
	started DATETIME NOT NULL,
	doji INTEGER NOT NULL,
	hammer INTEGER NOT NULL,
	shooting_star INTEGER NOT NULL,
	bearish_engulfing INTEGER NOT NULL,
	bullish_engulfing INTEGER NOT NULL,
	evening_star INTEGER NOT NULL,
	morning_star INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
`
