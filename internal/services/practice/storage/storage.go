package storage

import (
	"context"
	"errors"
	"time"
)

// Document keys used by the practice runtime.
const (
	ProgressKey = "darts_training_progress"
	SettingsKey = "darts_training_settings"
)

// ErrNotFound is returned when no document exists for a key.
var ErrNotFound = errors.New("document not found")

// DocumentRecord is one whole-object JSON value stored under a key.
type DocumentRecord struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// DocumentStore persists key-value documents. Writes replace the whole value.
type DocumentStore interface {
	GetDocument(ctx context.Context, key string) (DocumentRecord, error)
	PutDocument(ctx context.Context, record DocumentRecord) error
	DeleteDocument(ctx context.Context, key string) error
	ListDocuments(ctx context.Context) ([]DocumentRecord, error)
}
