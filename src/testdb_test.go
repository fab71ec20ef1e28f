package src

import (
	"database/sql"
	"testing"
)

var testSchema = []string{
	`CREATE TABLE players (
		player_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		team TEXT
	)`,
	`CREATE TABLE season_batting_stats (
		player_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		team TEXT,
		games INTEGER,
		plate_appearances INTEGER,
		at_bats INTEGER,
		hits INTEGER,
		home_runs INTEGER,
		rbi INTEGER,
		batting_avg REAL,
		obp REAL,
		slg REAL,
		ops REAL
	)`,
	`CREATE TABLE game_batting_logs (
		player_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		date TEXT NOT NULL,
		at_bats INTEGER,
		hits INTEGER,
		home_runs INTEGER
	)`,
	`CREATE TABLE streaks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		num_games INTEGER NOT NULL,
		batting_avg REAL,
		obp REAL,
		slg REAL,
		ops REAL,
		home_runs INTEGER,
		hits INTEGER,
		at_bats INTEGER,
		walks INTEGER,
		strikeouts INTEGER,
		performance TEXT
	)`,
	`CREATE TABLE streaks_sensitive (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		season INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		num_games INTEGER NOT NULL,
		batting_avg REAL,
		obp REAL,
		slg REAL,
		ops REAL,
		home_runs INTEGER,
		hits INTEGER,
		at_bats INTEGER,
		walks INTEGER,
		strikeouts INTEGER,
		performance TEXT,
		season_ops REAL
	)`,
}

// newTestStore opens an in-memory stats database with the production
// schema. A single pooled connection keeps the in-memory database
// alive across queries.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range testSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return &Store{db: db}
}

func mustExec(t *testing.T, s *Store, stmt string, args ...any) {
	t.Helper()
	if _, err := s.db.Exec(stmt, args...); err != nil {
		t.Fatalf("exec %q: %v", stmt, err)
	}
}

func seedPlayers(t *testing.T, s *Store) {
	t.Helper()
	mustExec(t, s, `INSERT INTO players VALUES ('judge01', 'Aaron Judge', 'NYY')`)
	mustExec(t, s, `INSERT INTO players VALUES ('ohtani01', 'Shohei Ohtani', 'LAD')`)
	mustExec(t, s, `INSERT INTO season_batting_stats
		(player_id, season, team, games, plate_appearances, at_bats, hits, home_runs, rbi, batting_avg, obp, slg, ops)
		VALUES ('judge01', 2024, 'NYY', 158, 704, 559, 180, 58, 144, 0.322, 0.458, 0.701, 1.159)`)
	mustExec(t, s, `INSERT INTO season_batting_stats
		(player_id, season, team, games, plate_appearances, at_bats, hits, home_runs, rbi, batting_avg, obp, slg, ops)
		VALUES ('ohtani01', 2024, 'LAD', 159, 731, 636, 197, 54, 130, 0.310, 0.390, 0.646, 1.036)`)
}
