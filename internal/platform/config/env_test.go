package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Games   int           `env:"BUSTED_DART_TEST_GAMES" envDefault:"3"`
	Timeout time.Duration `env:"BUSTED_DART_TEST_TIMEOUT" envDefault:"2s"`
	Enabled bool          `env:"BUSTED_DART_TEST_ENABLED" envDefault:"true"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Games != 3 || cfg.Timeout != 2*time.Second || !cfg.Enabled {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseEnvReadsProcessEnvironment(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BUSTED_DART_TEST_GAMES", "12")
	t.Setenv("BUSTED_DART_TEST_ENABLED", "false")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Games != 12 || cfg.Enabled {
		t.Fatalf("cfg = %+v", cfg)
	}
}

// TestParseEnvFromIgnoresProcessEnvironment ensures an explicit map replaces os.Environ.
func TestParseEnvFromIgnoresProcessEnvironment(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BUSTED_DART_TEST_GAMES", "12")

	if err := ParseEnvFrom(&cfg, map[string]string{"BUSTED_DART_TEST_TIMEOUT": "5s"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Games != 3 || cfg.Timeout != 5*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BUSTED_DART_TEST_GAMES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
