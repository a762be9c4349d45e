// Package store persists completed analysis runs in a local SQLite
// file so the review UI can reload and edit them across sessions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
    id           TEXT PRIMARY KEY,
    created_at   TIMESTAMP NOT NULL,
    patient_name TEXT NOT NULL,
    item_count   INTEGER NOT NULL,
    payload      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_runs_created ON analysis_runs(created_at DESC);
`

// RunSummary is the listing row for saved runs.
type RunSummary struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	PatientName string    `json:"patientName"`
	ItemCount   int       `json:"itemCount"`
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens or creates the snapshot database. SQLite is single-writer;
// the pool is pinned to one connection.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, common.WrapError(err, "open snapshot db")
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "apply schema")
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a run snapshot, including any review edits.
func (s *Store) Save(ctx context.Context, res *entity.AnalysisResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return common.WrapError(err, "marshal run")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analysis_runs (id, created_at, patient_name, item_count, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		res.RunID.String(), res.CreatedAt.UTC().Format(time.RFC3339Nano),
		res.Patient.Name, len(res.Items), string(payload))
	if err != nil {
		return common.WrapError(err, "save run")
	}
	s.logger.Debug("store.saved", "run_id", res.RunID, "items", len(res.Items))
	return nil
}

// Get loads one run by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*entity.AnalysisResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM analysis_runs WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("NotFound",
			fmt.Sprintf("run %s not found", id), common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "load run")
	}
	var res entity.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, common.WrapError(err, "decode run payload")
	}
	return &res, nil
}

// List returns saved runs, newest first.
func (s *Store) List(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, patient_name, item_count
		 FROM analysis_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, common.WrapError(err, "list runs")
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rawID, rawTime string
			summary        RunSummary
		)
		if err := rows.Scan(&rawID, &rawTime, &summary.PatientName, &summary.ItemCount); err != nil {
			return nil, err
		}
		if summary.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("corrupt run id %q: %w", rawID, err)
		}
		if summary.CreatedAt, err = time.Parse(time.RFC3339Nano, rawTime); err != nil {
			return nil, fmt.Errorf("corrupt run timestamp %q: %w", rawTime, err)
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// Delete removes one saved run.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM analysis_runs WHERE id = ?`, id.String())
	return err
}
