package domain

import (
	"context"
	"fmt"
	"time"
)

// ProgressStore loads and saves the whole progress snapshot.
type ProgressStore interface {
	// Load returns empty progress when nothing has been saved.
	Load(ctx context.Context) (Progress, error)
	Save(ctx context.Context, progress Progress) error
	Clear(ctx context.Context) error
}

// SettingsStore loads and saves player settings.
type SettingsStore interface {
	// Load returns DefaultSettings when nothing has been saved.
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// Recorder applies finished games to a progress store.
type Recorder struct {
	store ProgressStore
	newID func() (string, error)
	now   func() time.Time
}

// NewRecorder builds a recorder. Nil newID or now fall back to a timestamp
// identifier and time.Now.
func NewRecorder(store ProgressStore, newID func() (string, error), now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = func() (string, error) {
			return fmt.Sprintf("%d", now().UnixMilli()), nil
		}
	}
	return &Recorder{store: store, newID: newID, now: now}
}

// Record loads progress, adds the finished game's session, updates the
// streak and saves the result.
func (r *Recorder) Record(ctx context.Context, game *Game) (GameSession, Progress, error) {
	if r == nil || r.store == nil {
		return GameSession{}, Progress{}, fmt.Errorf("progress store is not configured")
	}
	id, err := r.newID()
	if err != nil {
		return GameSession{}, Progress{}, fmt.Errorf("generate session id: %w", err)
	}
	session, err := game.Session(id, r.now())
	if err != nil {
		return GameSession{}, Progress{}, err
	}

	progress, err := r.store.Load(ctx)
	if err != nil {
		return GameSession{}, Progress{}, fmt.Errorf("load progress: %w", err)
	}
	progress.AddSession(session)
	progress.RecordStreak(session.Completed, session.DartsThrown, game.Settings().LearningMode)
	if err := r.store.Save(ctx, progress); err != nil {
		return GameSession{}, Progress{}, fmt.Errorf("save progress: %w", err)
	}
	return session, progress, nil
}
