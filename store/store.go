package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/sketchscore/evaluate"
)

// schema bootstraps both tables on open; re-opening an existing cache is a
// no-op.
const schema = `
CREATE TABLE IF NOT EXISTS session_states (
	state_id   TEXT PRIMARY KEY,
	ref_key    TEXT NOT NULL UNIQUE,
	state_json TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS evaluations (
	evaluation_id TEXT PRIMARY KEY,
	ref_key       TEXT NOT NULL,
	top5_error    REAL NOT NULL,
	mean_error    REAL NOT NULL,
	pixel_count   INTEGER NOT NULL,
	grid_json     TEXT NOT NULL,
	duration_ms   INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluations_ref_key ON evaluations(ref_key, created_at);
`

// Result is one persisted evaluation row.
type Result struct {
	EvaluationID string  `json:"evaluation_id"`
	RefKey       string  `json:"ref_key"`
	Top5Error    float64 `json:"top5_error"`
	MeanError    float64 `json:"mean_error"`
	PixelCount   int     `json:"pixel_count"`
	Grid         [][]int `json:"grid"`
	DurationMS   int64   `json:"duration_ms"`
	CreatedAt    int64   `json:"created_at"`
}

// Store provides persistence for session states and evaluation history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: bootstrap schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveState persists the exported session state under refKey, replacing any
// previous state for the same key. Returns the row ID.
func (s *Store) SaveState(refKey string, state evaluate.SessionState) (string, error) {
	blob, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("store: encode state: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO session_states (state_id, ref_key, state_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ref_key) DO UPDATE SET
			state_id = excluded.state_id,
			state_json = excluded.state_json,
			created_at = excluded.created_at`,
		id, refKey, string(blob), time.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("store: save state: %w", err)
	}
	return id, nil
}

// LoadState fetches the cached session state for refKey. The boolean
// reports whether a state was found.
func (s *Store) LoadState(refKey string) (evaluate.SessionState, bool, error) {
	var blob string
	err := s.db.QueryRow(
		`SELECT state_json FROM session_states WHERE ref_key = ?`, refKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return evaluate.SessionState{}, false, nil
	}
	if err != nil {
		return evaluate.SessionState{}, false, fmt.Errorf("store: load state: %w", err)
	}
	var state evaluate.SessionState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return evaluate.SessionState{}, false, fmt.Errorf("store: decode state: %w", err)
	}
	return state, true, nil
}

// SaveResult appends one evaluation to the history for refKey.
func (s *Store) SaveResult(refKey string, m evaluate.ErrorMetrics, durationMS int64) (string, error) {
	grid, err := json.Marshal(m.Grid)
	if err != nil {
		return "", fmt.Errorf("store: encode grid: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO evaluations (
			evaluation_id, ref_key, top5_error, mean_error, pixel_count,
			grid_json, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, refKey, m.TopK, m.Mean, m.PixelCount,
		string(grid), durationMS, time.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("store: save result: %w", err)
	}
	return id, nil
}

// ListResults returns the evaluation history for refKey, newest first.
func (s *Store) ListResults(refKey string) ([]Result, error) {
	rows, err := s.db.Query(`
		SELECT evaluation_id, ref_key, top5_error, mean_error, pixel_count,
		       grid_json, duration_ms, created_at
		FROM evaluations
		WHERE ref_key = ?
		ORDER BY created_at DESC`, refKey)
	if err != nil {
		return nil, fmt.Errorf("store: query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var grid string
		if err := rows.Scan(&r.EvaluationID, &r.RefKey, &r.Top5Error, &r.MeanError,
			&r.PixelCount, &grid, &r.DurationMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(grid), &r.Grid); err != nil {
			return nil, fmt.Errorf("store: decode grid: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
