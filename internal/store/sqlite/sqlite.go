package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campushub/campuschat-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	subject    TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	delivered  BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contact_submissions_created
	ON contact_submissions(created_at DESC);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and applies the schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSubmission inserts a submission and sets its ID.
func (s *SQLiteStore) SaveSubmission(ctx context.Context, sub *store.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, subject, email, message, delivered)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, sub.Name, sub.Subject, sub.Email, sub.Message, sub.Delivered)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	sub.ID = id
	return nil
}

// MarkDelivered flags a submission as successfully mailed.
func (s *SQLiteStore) MarkDelivered(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE contact_submissions SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *SQLiteStore) ListSubmissions(ctx context.Context, limit int) ([]store.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, name, subject, email, message, delivered, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []store.ContactSubmission
	for rows.Next() {
		var sub store.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Subject, &sub.Email, &sub.Message, &sub.Delivered, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}
