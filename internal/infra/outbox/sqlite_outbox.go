package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"proximity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// timeLayout has a fixed width so text comparison orders timestamps.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteOutbox is an append-only queue of undelivered messages kept on local disk.
type sqliteOutbox struct {
	db *sql.DB
}

// Open initializes the outbox database at path and applies its schema.
func Open(ctx context.Context, path string) (service.EventOutbox, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create outbox directory")
		}
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", path))
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite outbox")
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()

			return nil, errors.Wrapf(execErr, "apply pragma %q", pragma)
		}
	}

	store := &sqliteOutbox{db: db}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

func (s *sqliteOutbox) initSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS outbox_items (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			payload BLOB NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			last_error TEXT,
			created_at TEXT NOT NULL,
			delivered_at TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_items_pending ON outbox_items(delivered_at, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "init outbox schema")
		}
	}

	return nil
}

// Enqueue appends the item. An item whose id is already queued is ignored.
func (s *sqliteOutbox) Enqueue(ctx context.Context, item *service.OutboxItem) error {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO outbox_items (id, kind, payload, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		item.ID.String(), string(item.Kind), item.Payload, createdAt.UTC().Format(timeLayout),
	); err != nil {
		return errors.Wrap(err, "enqueue outbox item")
	}

	return nil
}

// Pending returns undelivered items in insertion order.
func (s *sqliteOutbox) Pending(ctx context.Context, limit int) ([]*service.OutboxItem, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, payload, attempts, last_error, created_at
		FROM outbox_items WHERE delivered_at IS NULL ORDER BY seq LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query pending outbox items")
	}
	defer rows.Close()

	var items []*service.OutboxItem
	for rows.Next() {
		var (
			id, kind, createdAt string
			lastError           sql.NullString
			item                service.OutboxItem
		)
		if err := rows.Scan(&id, &kind, &item.Payload, &item.Attempts, &lastError, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scan outbox item")
		}

		if item.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "parse outbox item id %q", id)
		}
		if item.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, errors.Wrapf(err, "parse outbox item time %q", createdAt)
		}
		item.Kind = service.OutboxKind(kind)
		item.LastError = lastError.String
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate outbox items")
	}

	return items, nil
}

func (s *sqliteOutbox) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE outbox_items SET delivered_at = ? WHERE id = ?`,
		time.Now().UTC().Format(timeLayout), id.String(),
	); err != nil {
		return errors.Wrap(err, "mark outbox item delivered")
	}

	return nil
}

func (s *sqliteOutbox) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE outbox_items SET attempts = attempts + 1, last_error = ? WHERE id = ?`,
		reason, id.String(),
	); err != nil {
		return errors.Wrap(err, "mark outbox item failed")
	}

	return nil
}

func (s *sqliteOutbox) OldestPending(ctx context.Context) (*time.Time, error) {
	var createdAt sql.NullString
	if err := s.db.QueryRowContext(ctx,
		`SELECT MIN(created_at) FROM outbox_items WHERE delivered_at IS NULL`,
	).Scan(&createdAt); err != nil {
		return nil, errors.Wrap(err, "query oldest outbox item")
	}
	if !createdAt.Valid {
		return nil, nil
	}

	oldest, err := time.Parse(timeLayout, createdAt.String)
	if err != nil {
		return nil, errors.Wrapf(err, "parse outbox item time %q", createdAt.String)
	}

	return &oldest, nil
}

func (s *sqliteOutbox) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
