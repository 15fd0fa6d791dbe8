package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id           TEXT PRIMARY KEY,
	kind         TEXT NOT NULL,
	fingerprint  TEXT NOT NULL,
	brand_name   TEXT NOT NULL DEFAULT '',
	context      TEXT NOT NULL DEFAULT '',
	score        INTEGER,
	risk         TEXT NOT NULL DEFAULT '',
	passed       INTEGER NOT NULL,
	issue_count  INTEGER NOT NULL DEFAULT 0,
	summary      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at);
CREATE INDEX IF NOT EXISTS idx_evaluations_kind ON evaluations(kind);
CREATE INDEX IF NOT EXISTS idx_evaluations_brand ON evaluations(brand_name);
CREATE INDEX IF NOT EXISTS idx_evaluations_fingerprint ON evaluations(fingerprint);
`

// StoreConfig configures the SQLite history store.
type StoreConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// WALMode enables Write-Ahead Logging for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultStoreConfig returns the default store configuration.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		Path:         "data/history.db",
		MaxOpenConns: 10,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// Store is a SQLite-backed evaluation history store.
type Store struct {
	db     *sql.DB
	config *StoreConfig
	logger *slog.Logger
}

// NewStore opens the database, applies the schema, and returns a store
// ready for use.
func NewStore(config *StoreConfig) (*Store, error) {
	if config == nil {
		config = DefaultStoreConfig()
	}
	if config.MaxOpenConns <= 0 {
		config.MaxOpenConns = 10
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	logger := slog.Default().With("component", "history.store")

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	s := &Store{db: db, config: config, logger: logger}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("history store initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize enables WAL mode and creates the schema.
func (s *Store) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// Append persists a record. A missing ID or CreatedAt is filled in.
func (s *Store) Append(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("nil record")
	}
	if record.Kind == "" {
		return fmt.Errorf("record kind is required")
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, kind, fingerprint, brand_name, context,
			score, risk, passed, issue_count, summary, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Kind, record.Fingerprint, record.BrandName, record.Context,
		record.Score, record.Risk, record.Passed, record.IssueCount, record.Summary, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending history record: %w", err)
	}

	return nil
}

// Query returns records matching the filters, newest first.
func (s *Store) Query(ctx context.Context, q *Query) ([]*Record, error) {
	if q == nil {
		q = &Query{}
	}

	var conditions []string
	var args []interface{}

	if q.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, q.Kind)
	}
	if q.BrandName != "" {
		conditions = append(conditions, "brand_name = ?")
		args = append(args, q.BrandName)
	}
	if !q.Since.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, q.Since)
	}
	if !q.Until.IsZero() {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, q.Until)
	}

	query := `SELECT id, kind, fingerprint, brand_name, context,
		score, risk, passed, issue_count, summary, created_at
		FROM evaluations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" LIMIT %d", limit)
	if q.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var score sql.NullInt64
		err := rows.Scan(
			&r.ID, &r.Kind, &r.Fingerprint, &r.BrandName, &r.Context,
			&score, &r.Risk, &r.Passed, &r.IssueCount, &r.Summary, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			r.Score = &v
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history records: %w", err)
	}

	return records, nil
}

// Count returns the total number of records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evaluations").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting history records: %w", err)
	}
	return count, nil
}

// DeleteBefore removes records created before the cutoff and returns
// how many were deleted.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM evaluations WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting history records: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return deleted, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
