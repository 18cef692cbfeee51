package domain

import (
	"fmt"

	"github.com/Vojb/busted-dart/internal/darts/board"
)

// Hit ratio bounds, in percent.
const (
	MinHitPercent = 10
	MaxHitPercent = 100
)

// Settings holds the per-zone hit ratios and game preferences.
type Settings struct {
	Triple int `json:"triple"`
	Double int `json:"double"`
	Single int `json:"single"`
	// Bullseye falls back to Single when unset.
	Bullseye     *int       `json:"bullseye,omitempty"`
	Difficulty   board.Band `json:"difficulty"`
	LearningMode bool       `json:"learningMode"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Triple:     65,
		Double:     65,
		Single:     85,
		Difficulty: board.BandMedium,
	}
}

// Validate checks every configured percentage and the difficulty band.
func (s Settings) Validate() error {
	percents := map[string]int{
		"triple": s.Triple,
		"double": s.Double,
		"single": s.Single,
	}
	if s.Bullseye != nil {
		percents["bullseye"] = *s.Bullseye
	}
	for _, name := range []string{"triple", "double", "single", "bullseye"} {
		value, ok := percents[name]
		if !ok {
			continue
		}
		if value < MinHitPercent || value > MaxHitPercent {
			return fmt.Errorf("%s %d: %w", name, value, ErrInvalidPercentage)
		}
	}
	switch s.Difficulty {
	case board.BandEasy, board.BandMedium, board.BandHard, board.BandRandom:
	default:
		return fmt.Errorf("%v: %w", s.Difficulty, ErrInvalidDifficulty)
	}
	return nil
}

// HitPercent returns the configured percentage for a dart aimed at zone.
// Outer bull and anything unrecognized use the single ratio.
func (s Settings) HitPercent(zone board.Zone) int {
	switch zone {
	case board.ZoneTriple:
		return s.Triple
	case board.ZoneDouble:
		return s.Double
	case board.ZoneBull:
		if s.Bullseye != nil {
			return *s.Bullseye
		}
		return s.Single
	default:
		return s.Single
	}
}

// HitProbability is HitPercent as a probability in [0,1].
func (s Settings) HitProbability(zone board.Zone) float64 {
	return float64(s.HitPercent(zone)) / 100
}

// WithBullseye returns a copy with the bullseye ratio set.
func (s Settings) WithBullseye(percent int) Settings {
	s.Bullseye = &percent
	return s
}
