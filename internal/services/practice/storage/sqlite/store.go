package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/Vojb/busted-dart/internal/platform/storage/sqlitemigrate"
	"github.com/Vojb/busted-dart/internal/services/practice/storage"
	"github.com/Vojb/busted-dart/internal/services/practice/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed practice document persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a practice SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetDocument returns the document stored under key or storage.ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, key string) (storage.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.DocumentRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DocumentRecord{}, fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return storage.DocumentRecord{}, fmt.Errorf("document key is required")
	}

	var record storage.DocumentRecord
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT doc_key, value, updated_at
FROM practice_documents
WHERE doc_key = ?
`, key).Scan(&record.Key, &record.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.DocumentRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.DocumentRecord{}, fmt.Errorf("get document %s: %w", key, err)
	}
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return record, nil
}

// PutDocument inserts or replaces the document stored under record.Key.
func (s *Store) PutDocument(ctx context.Context, record storage.DocumentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	record.Key = strings.TrimSpace(record.Key)
	if record.Key == "" {
		return fmt.Errorf("document key is required")
	}
	if len(record.Value) == 0 {
		return fmt.Errorf("document value is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO practice_documents (
	doc_key,
	value,
	updated_at
) VALUES (?, ?, ?)
ON CONFLICT(doc_key) DO UPDATE SET
	value = excluded.value,
	updated_at = excluded.updated_at
`,
		record.Key,
		record.Value,
		record.UpdatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put document %s: %w", record.Key, err)
	}
	return nil
}

// DeleteDocument removes the document stored under key. Missing keys are not an error.
func (s *Store) DeleteDocument(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("document key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM practice_documents WHERE doc_key = ?`, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

// ListDocuments lists every stored document ordered by key.
func (s *Store) ListDocuments(ctx context.Context) ([]storage.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT doc_key, value, updated_at
FROM practice_documents
ORDER BY doc_key
`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var records []storage.DocumentRecord
	for rows.Next() {
		var record storage.DocumentRecord
		var updatedAt int64
		if err := rows.Scan(&record.Key, &record.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		record.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return records, nil
}

var _ storage.DocumentStore = (*Store)(nil)
