// Package practice parses practice command flags and launches a practice run.
package practice

import (
	"context"
	"flag"

	entrypoint "github.com/Vojb/busted-dart/internal/platform/cmd"
	practiceapp "github.com/Vojb/busted-dart/internal/services/practice/app"
)

// Config holds practice command configuration.
type Config struct {
	DBPath              string `env:"BUSTED_DART_PRACTICE_DB_PATH" envDefault:"data/practice.db"`
	HealthPort          int    `env:"BUSTED_DART_PRACTICE_HEALTH_PORT"`
	Games               int    `env:"BUSTED_DART_PRACTICE_GAMES" envDefault:"1"`
	Mode                string `env:"BUSTED_DART_PRACTICE_MODE" envDefault:"interactive"`
	Seed                int64  `env:"BUSTED_DART_PRACTICE_SEED"`
	Difficulty          string `env:"BUSTED_DART_PRACTICE_DIFFICULTY"`
	ExcludeBogeys       bool   `env:"BUSTED_DART_PRACTICE_EXCLUDE_BOGEYS" envDefault:"true"`
	ExactFinishOverride bool   `env:"BUSTED_DART_PRACTICE_EXACT_FINISH_OVERRIDE" envDefault:"true"`
	LearningMode        bool   `env:"BUSTED_DART_PRACTICE_LEARNING_MODE"`
	TripleHit           int    `env:"BUSTED_DART_PRACTICE_TRIPLE_HIT"`
	DoubleHit           int    `env:"BUSTED_DART_PRACTICE_DOUBLE_HIT"`
	SingleHit           int    `env:"BUSTED_DART_PRACTICE_SINGLE_HIT"`
	BullseyeHit         int    `env:"BUSTED_DART_PRACTICE_BULLSEYE_HIT"`
	SaveSettings        bool   `env:"BUSTED_DART_PRACTICE_SAVE_SETTINGS"`
	ResetProgress       bool   `env:"BUSTED_DART_PRACTICE_RESET_PROGRESS"`
	Dump                bool   `env:"BUSTED_DART_PRACTICE_DUMP"`
	Locale              string `env:"BUSTED_DART_PRACTICE_LOCALE" envDefault:"en"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The practice SQLite database path")
	fs.IntVar(&cfg.HealthPort, "health-port", cfg.HealthPort, "gRPC health port while playing; 0 disables it")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "Number of checkout games to play")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Play mode: interactive or auto")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 draws a fresh one")
	fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Checkout band: easy, medium, hard or random")
	fs.BoolVar(&cfg.ExcludeBogeys, "exclude-bogeys", cfg.ExcludeBogeys, "Never deal bogey numbers")
	fs.BoolVar(&cfg.ExactFinishOverride, "exact-finish-override", cfg.ExactFinishOverride, "A dart aimed at the exact finishing double always lands")
	fs.BoolVar(&cfg.LearningMode, "learning", cfg.LearningMode, "Show the score after every dart")
	fs.IntVar(&cfg.TripleHit, "triple-hit", cfg.TripleHit, "Triple hit ratio in percent; 0 keeps the stored value")
	fs.IntVar(&cfg.DoubleHit, "double-hit", cfg.DoubleHit, "Double hit ratio in percent; 0 keeps the stored value")
	fs.IntVar(&cfg.SingleHit, "single-hit", cfg.SingleHit, "Single hit ratio in percent; 0 keeps the stored value")
	fs.IntVar(&cfg.BullseyeHit, "bullseye-hit", cfg.BullseyeHit, "Bullseye hit ratio in percent; 0 keeps the stored value")
	fs.BoolVar(&cfg.SaveSettings, "save-settings", cfg.SaveSettings, "Persist the merged settings before playing")
	fs.BoolVar(&cfg.ResetProgress, "reset-progress", cfg.ResetProgress, "Clear stored progress before playing")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "Print the stored progress and settings documents, then exit")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale used to format the report")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts a practice run.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePractice, func(ctx context.Context) error {
		return practiceapp.Run(ctx, cfg.runtimeConfig())
	})
}

func (cfg Config) runtimeConfig() practiceapp.RuntimeConfig {
	return practiceapp.RuntimeConfig{
		DBPath:              cfg.DBPath,
		HealthPort:          cfg.HealthPort,
		Games:               cfg.Games,
		Mode:                cfg.Mode,
		Seed:                cfg.Seed,
		Difficulty:          cfg.Difficulty,
		ExcludeBogeys:       cfg.ExcludeBogeys,
		ExactFinishOverride: cfg.ExactFinishOverride,
		LearningMode:        cfg.LearningMode,
		TripleHit:           cfg.TripleHit,
		DoubleHit:           cfg.DoubleHit,
		SingleHit:           cfg.SingleHit,
		BullseyeHit:         cfg.BullseyeHit,
		SaveSettings:        cfg.SaveSettings,
		ResetProgress:       cfg.ResetProgress,
		Dump:                cfg.Dump,
		Locale:              cfg.Locale,
	}
}
