package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Vojb/busted-dart/internal/services/practice/domain"
	"github.com/Vojb/busted-dart/internal/services/practice/storage"
)

// progressDocumentStore keeps progress as one JSON document.
type progressDocumentStore struct {
	docs storage.DocumentStore
	now  func() time.Time
}

func newProgressDocumentStore(docs storage.DocumentStore) *progressDocumentStore {
	return &progressDocumentStore{docs: docs, now: time.Now}
}

func (s *progressDocumentStore) Load(ctx context.Context) (domain.Progress, error) {
	record, err := s.docs.GetDocument(ctx, storage.ProgressKey)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.NewProgress(), nil
	}
	if err != nil {
		return domain.Progress{}, err
	}
	progress := domain.NewProgress()
	if err := json.Unmarshal(record.Value, &progress); err != nil {
		return domain.Progress{}, fmt.Errorf("decode progress: %w", err)
	}
	if progress.Sessions == nil {
		progress.Sessions = []domain.GameSession{}
	}
	return progress, nil
}

func (s *progressDocumentStore) Save(ctx context.Context, progress domain.Progress) error {
	value, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return s.docs.PutDocument(ctx, storage.DocumentRecord{
		Key:       storage.ProgressKey,
		Value:     value,
		UpdatedAt: s.now().UTC(),
	})
}

func (s *progressDocumentStore) Clear(ctx context.Context) error {
	return s.docs.DeleteDocument(ctx, storage.ProgressKey)
}

// ResetStreak zeroes the stored streak and leaves every other total intact.
func (s *progressDocumentStore) ResetStreak(ctx context.Context) error {
	progress, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if progress.CurrentStreak == 0 {
		return nil
	}
	progress.ResetStreak()
	return s.Save(ctx, progress)
}

// settingsDocumentStore keeps settings as one JSON document.
type settingsDocumentStore struct {
	docs storage.DocumentStore
	now  func() time.Time
}

func newSettingsDocumentStore(docs storage.DocumentStore) *settingsDocumentStore {
	return &settingsDocumentStore{docs: docs, now: time.Now}
}

// Load decodes over the defaults so fields missing from older documents keep
// their default values.
func (s *settingsDocumentStore) Load(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	record, err := s.docs.GetDocument(ctx, storage.SettingsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return settings, nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	if err := json.Unmarshal(record.Value, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *settingsDocumentStore) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.docs.PutDocument(ctx, storage.DocumentRecord{
		Key:       storage.SettingsKey,
		Value:     value,
		UpdatedAt: s.now().UTC(),
	})
}

var (
	_ domain.ProgressStore = (*progressDocumentStore)(nil)
	_ domain.SettingsStore = (*settingsDocumentStore)(nil)
)
