package src

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestStoreQueryColumnsAndCells(t *testing.T) {
	s := newTestStore(t)
	seedPlayers(t, s)

	res, err := s.Query(context.Background(), `SELECT name, p.team, home_runs, batting_avg
		FROM players p JOIN season_batting_stats b ON p.player_id = b.player_id
		WHERE p.name LIKE '%Judge%'`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	wantCols := []string{"name", "team", "home_runs", "batting_avg"}
	if len(res.Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", res.Columns, wantCols)
	}
	for i, c := range wantCols {
		if res.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, res.Columns[i], c)
		}
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Rows))
	}
	row := res.Rows[0]
	if len(row) != len(res.Columns) {
		t.Fatalf("row width %d != column count %d", len(row), len(res.Columns))
	}
	if row[0] != "Aaron Judge" || row[2] != "58" || row[3] != "0.322" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestStoreQueryRendersNull(t *testing.T) {
	s := newTestStore(t)
	mustExec(t, s, `INSERT INTO players VALUES ('x01', 'Some Guy', NULL)`)

	res, err := s.Query(context.Background(), `SELECT name, team FROM players`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if res.Rows[0][1] != "NULL" {
		t.Fatalf("NULL cell rendered as %q", res.Rows[0][1])
	}
}

func TestStoreQueryCapsRows(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 120; i++ {
		mustExec(t, s, `INSERT INTO game_batting_logs (player_id, season, date, at_bats, hits, home_runs)
			VALUES ('judge01', 2024, ?, 4, 1, 0)`, fmt.Sprintf("2024-04-%03d", i))
	}

	res, err := s.Query(context.Background(), `SELECT date FROM game_batting_logs`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res.Rows) != maxResultRows {
		t.Fatalf("rows = %d, want cap %d", len(res.Rows), maxResultRows)
	}
}

func TestStoreQueryPrepareFailure(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Query(context.Background(), `SELECT nope FROM missing_table`)
	if err == nil {
		t.Fatal("expected error for bad query")
	}
	if !errors.Is(err, ErrQueryPrepare) {
		t.Fatalf("error %v is not ErrQueryPrepare", err)
	}
}

func TestQueryResultEmpty(t *testing.T) {
	var nilRes *QueryResult
	if !nilRes.Empty() {
		t.Fatal("nil result should be empty")
	}
	if !(&QueryResult{Columns: []string{"a"}}).Empty() {
		t.Fatal("zero-row result should be empty")
	}
	if (&QueryResult{Rows: [][]string{{"1"}}}).Empty() {
		t.Fatal("populated result should not be empty")
	}
}
