package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/throw"
	platformgrpc "github.com/Vojb/busted-dart/internal/platform/grpc"
	"github.com/Vojb/busted-dart/internal/platform/id"
	"github.com/Vojb/busted-dart/internal/random"
	"github.com/Vojb/busted-dart/internal/services/practice/domain"
	practicesqlite "github.com/Vojb/busted-dart/internal/services/practice/storage/sqlite"
)

// Play modes.
const (
	ModeAuto        = "auto"
	ModeInteractive = "interactive"
)

// RuntimeConfig controls practice startup, storage and play.
type RuntimeConfig struct {
	DBPath string
	// HealthPort serves gRPC health checks while playing; zero disables it.
	HealthPort int
	Games      int
	Mode       string
	// Seed fixes the random source; zero draws a fresh seed.
	Seed                int64
	Difficulty          string
	ExcludeBogeys       bool
	ExactFinishOverride bool
	LearningMode        bool
	// Hit ratio overrides in percent; zero keeps the stored value.
	TripleHit   int
	DoubleHit   int
	SingleHit   int
	BullseyeHit int
	// SaveSettings persists the merged settings before playing and ends
	// the current streak.
	SaveSettings  bool
	ResetProgress bool
	// Dump prints the stored documents and exits without playing.
	Dump   bool
	Locale string

	In  io.Reader
	Out io.Writer
}

// healthServiceName is the health status key for the practice runtime.
const healthServiceName = "practice.runtime"

const (
	defaultPracticeDB    = "data/practice.db"
	defaultPracticeGames = 1
)

// Run opens practice storage, plays the configured games and prints a
// progress report.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultPracticeDB
	}
	if cfg.Games <= 0 {
		cfg.Games = defaultPracticeGames
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = ModeAuto
	}
	if mode != ModeAuto && mode != ModeInteractive {
		return fmt.Errorf("unknown practice mode %q", cfg.Mode)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create practice storage dir: %w", err)
		}
	}

	practiceStore, err := practicesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open practice sqlite store: %w", err)
	}
	defer func() {
		if closeErr := practiceStore.Close(); closeErr != nil {
			log.Printf("close practice sqlite store: %v", closeErr)
		}
	}()

	if cfg.Dump {
		return dumpDocuments(ctx, practiceStore, cfg.Out)
	}

	progressStore := newProgressDocumentStore(practiceStore)
	settingsStore := newSettingsDocumentStore(practiceStore)

	settings, err := settingsStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	settings, err = cfg.applySettings(settings)
	if err != nil {
		return err
	}
	if cfg.SaveSettings {
		if err := settingsStore.Save(ctx, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		if err := progressStore.ResetStreak(ctx); err != nil {
			return fmt.Errorf("reset streak: %w", err)
		}
	}
	if cfg.ResetProgress {
		if err := progressStore.Clear(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		log.Printf("practice progress reset")
	}

	if cfg.HealthPort > 0 {
		stop, err := platformgrpc.ListenAndServeHealth(cfg.HealthPort, healthServiceName)
		if err != nil {
			return err
		}
		defer stop()
	}

	seed, err := random.ResolveSeed(cfg.Seed)
	if err != nil {
		return fmt.Errorf("resolve seed: %w", err)
	}
	log.Printf("practice seed %d, %d games, %s difficulty", seed, cfg.Games, settings.Difficulty)
	rng := random.NewRand(seed)

	rules := throw.DefaultRules()
	rules.ExactFinishOverride = cfg.ExactFinishOverride

	var player Player = Autopilot{}
	if mode == ModeInteractive {
		player = NewLinePlayer(cfg.In, cfg.Out)
	}

	printer := NewPrinter(cfg.Locale)
	session := &Session{
		Settings:   settings,
		Simulator:  throw.NewSimulator(rules, rng),
		BoardRules: board.Rules{ExcludeBogeys: cfg.ExcludeBogeys},
		RNG:        rng,
		Player:     player,
		Recorder:   domain.NewRecorder(progressStore, id.NewID, nil),
		Out:        cfg.Out,
		Printer:    printer,
	}
	summary, err := session.Play(ctx, cfg.Games)
	if err != nil {
		return err
	}

	progress := summary.Progress
	if summary.Games == 0 {
		if progress, err = progressStore.Load(ctx); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
	}
	printer.Fprintf(cfg.Out, "\nThis run: %d games, %d checkouts, %d darts\n", summary.Games, summary.Wins, summary.Darts)
	WriteReport(cfg.Out, printer, progress)
	return nil
}

// applySettings layers the runtime overrides on top of stored settings.
func (cfg RuntimeConfig) applySettings(settings domain.Settings) (domain.Settings, error) {
	if strings.TrimSpace(cfg.Difficulty) != "" {
		band, err := board.ParseBand(cfg.Difficulty)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidDifficulty, err)
		}
		settings.Difficulty = band
	}
	if cfg.TripleHit != 0 {
		settings.Triple = cfg.TripleHit
	}
	if cfg.DoubleHit != 0 {
		settings.Double = cfg.DoubleHit
	}
	if cfg.SingleHit != 0 {
		settings.Single = cfg.SingleHit
	}
	if cfg.BullseyeHit != 0 {
		settings = settings.WithBullseye(cfg.BullseyeHit)
	}
	if cfg.LearningMode {
		settings.LearningMode = true
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
