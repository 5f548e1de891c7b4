package classdata

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	_ "modernc.org/sqlite"
)

// SQLiteRepository is a file-backed Repository
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS participants (
			id TEXT PRIMARY KEY,
			class TEXT NOT NULL,
			show_perk_feedback INTEGER NOT NULL,
			show_debug_feedback INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS enabled_regions (
			region TEXT PRIMARY KEY
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveParticipant upserts a participant row
func (r *SQLiteRepository) SaveParticipant(ctx context.Context, record *ParticipantRecord) error {
	if record == nil {
		return apperr.InvalidArgument("participant record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("participant ID is required")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO participants(id,class,show_perk_feedback,show_debug_feedback) VALUES(?,?,?,?)`,
		record.ID, record.Class, record.ShowPerkFeedback, record.ShowDebugFeedback)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}
	return nil
}

// ListParticipants returns every participant row ordered by id
func (r *SQLiteRepository) ListParticipants(ctx context.Context) ([]*ParticipantRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, class, show_perk_feedback, show_debug_feedback FROM participants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var out []*ParticipantRecord
	for rows.Next() {
		var record ParticipantRecord
		if err := rows.Scan(&record.ID, &record.Class, &record.ShowPerkFeedback, &record.ShowDebugFeedback); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		out = append(out, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return out, nil
}

// SaveEnabledRegions replaces the enabled region rows in one transaction
func (r *SQLiteRepository) SaveEnabledRegions(ctx context.Context, regions []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enabled_regions`); err != nil {
		return fmt.Errorf("failed to clear enabled regions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO enabled_regions(region) VALUES(?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare region insert: %w", err)
	}
	defer stmt.Close()

	for _, region := range regions {
		if _, err := stmt.ExecContext(ctx, region); err != nil {
			return fmt.Errorf("failed to save region %s: %w", region, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit enabled regions: %w", err)
	}
	return nil
}

// ListEnabledRegions returns the enabled regions in sorted order
func (r *SQLiteRepository) ListEnabledRegions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT region FROM enabled_regions ORDER BY region`)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled regions: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		out = append(out, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list enabled regions: %w", err)
	}
	return out, nil
}

var (
	_ Repository = (*SQLiteRepository)(nil)
	_ Repository = (*InMemoryRepository)(nil)
)
