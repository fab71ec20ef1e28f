package src

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// maxResultRows caps how many rows a single query can feed back into a
// model prompt. Materialization stops at the cap no matter how many
// rows match.
const maxResultRows = 50

// ErrQueryPrepare wraps SQLite rejecting a generated query (syntax
// error, unknown table or column). Callers can treat it as a failed
// ask rather than a crash.
var ErrQueryPrepare = errors.New("query prepare failed")

// QueryResult is a fully materialized, prompt-ready result set: column
// names in dataset order and every cell already rendered as text.
// NULL cells render as the literal string "NULL".
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

func (r *QueryResult) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Store is a read-only handle on the stats database.
type Store struct {
	db *sql.DB
}

var openDB = sql.Open

// OpenStore opens the SQLite database at path in read-only mode.
func OpenStore(path string) (*Store, error) {
	db, err := openDB("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Query runs one read-only statement and stringifies every cell.
func (s *Store) Query(ctx context.Context, query string) (*QueryResult, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryPrepare, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryPrepare, err)
	}

	res := &QueryResult{Columns: cols}
	for rows.Next() {
		if len(res.Rows) == maxResultRows {
			break
		}
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		row := make([]string, len(cols))
		for i, cell := range cells {
			row[i] = renderCell(cell)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stats rows: %w", err)
	}
	return res, nil
}

func renderCell(v any) string {
	switch c := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(c)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
