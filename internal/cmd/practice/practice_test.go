package practice

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_ParsesDefaults(t *testing.T) {
	fs := flag.NewFlagSet("practice", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "data/practice.db" {
		t.Fatalf("db path = %q, want %q", cfg.DBPath, "data/practice.db")
	}
	if cfg.Games != 1 {
		t.Fatalf("games = %d, want 1", cfg.Games)
	}
	if cfg.Mode != "interactive" {
		t.Fatalf("mode = %q, want interactive", cfg.Mode)
	}
	if !cfg.ExcludeBogeys || !cfg.ExactFinishOverride {
		t.Fatalf("cfg = %+v, want bogeys excluded and exact finish override on", cfg)
	}
	if cfg.Locale != "en" {
		t.Fatalf("locale = %q, want en", cfg.Locale)
	}
}

func TestParseConfig_ParsesEnvAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("practice", flag.ContinueOnError)
	t.Setenv("BUSTED_DART_PRACTICE_GAMES", "4")
	t.Setenv("BUSTED_DART_PRACTICE_DIFFICULTY", "hard")
	t.Setenv("BUSTED_DART_PRACTICE_SEED", "99")

	cfg, err := ParseConfig(fs, []string{"-mode", "auto", "-seed", "42", "-exclude-bogeys=false", "-triple-hit", "70", "-dump"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Games != 4 {
		t.Fatalf("games = %d, want 4", cfg.Games)
	}
	if cfg.Difficulty != "hard" {
		t.Fatalf("difficulty = %q, want hard", cfg.Difficulty)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want flag value 42", cfg.Seed)
	}
	if cfg.Mode != "auto" {
		t.Fatalf("mode = %q, want auto", cfg.Mode)
	}
	if cfg.ExcludeBogeys {
		t.Fatal("exclude bogeys = true, want flag override false")
	}
	if cfg.TripleHit != 70 {
		t.Fatalf("triple hit = %d, want 70", cfg.TripleHit)
	}
	if !cfg.Dump {
		t.Fatal("dump = false, want flag value true")
	}
}

func TestParseConfig_RejectsBadEnv(t *testing.T) {
	fs := flag.NewFlagSet("practice", flag.ContinueOnError)
	t.Setenv("BUSTED_DART_PRACTICE_GAMES", "many")

	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for non-numeric games")
	}
}

func TestRuntimeConfigCarriesEveryField(t *testing.T) {
	cfg := Config{
		DBPath:        "p.db",
		Games:         3,
		Mode:          "auto",
		Seed:          5,
		Difficulty:    "easy",
		ExcludeBogeys: true,
		BullseyeHit:   40,
		SaveSettings:  true,
		ResetProgress: true,
		Dump:          true,
		Locale:        "de",
	}
	runtime := cfg.runtimeConfig()
	if runtime.DBPath != "p.db" || runtime.Games != 3 || runtime.Mode != "auto" || runtime.Seed != 5 {
		t.Fatalf("runtime = %+v", runtime)
	}
	if runtime.Difficulty != "easy" || !runtime.ExcludeBogeys || runtime.BullseyeHit != 40 {
		t.Fatalf("runtime = %+v", runtime)
	}
	if !runtime.SaveSettings || !runtime.ResetProgress || !runtime.Dump || runtime.Locale != "de" {
		t.Fatalf("runtime = %+v", runtime)
	}
}

func TestRunPlaysAutopilotGames(t *testing.T) {
	fs := flag.NewFlagSet("practice", flag.ContinueOnError)
	dbPath := filepath.Join(t.TempDir(), "data", "practice.db")

	cfg, err := ParseConfig(fs, []string{"-db-path", dbPath, "-mode", "auto", "-games", "2", "-seed", "7"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("practice database not created: %v", err)
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	cfg := Config{DBPath: filepath.Join(t.TempDir(), "practice.db"), Mode: "tournament", Games: 1}
	err := Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown practice mode") {
		t.Fatalf("err = %v, want unknown practice mode", err)
	}
}
