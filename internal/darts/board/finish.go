package board

import (
	"fmt"
	"math/rand"
	"strings"
)

// Finishing bounds.
const (
	MinFinish     = 2
	MaxFinish     = 170
	MaxTwoDartOut = 110
	MaxOneDartOut = BullValue
	DartsPerVisit = 3
)

// bogeys are scores within the three-dart bound that no three darts can finish.
var bogeys = map[int]struct{}{
	159: {}, 162: {}, 163: {}, 165: {}, 166: {}, 168: {}, 169: {},
}

// IsBogey reports whether score is a bogey number.
func IsBogey(score int) bool {
	_, ok := bogeys[score]
	return ok
}

// Source supplies the randomness for score sampling and throw simulation.
// *rand.Rand satisfies it; a single Source must not be shared across
// goroutines unless the implementation says so.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n). Precondition: n > 0.
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int { return rand.Intn(n) }

// GlobalSource returns a Source backed by the process-wide math/rand
// functions, which are safe for concurrent use.
func GlobalSource() Source { return globalSource{} }

// Rules holds the finishing-rule refinements.
type Rules struct {
	// ExcludeBogeys treats bogey numbers as unfinishable.
	ExcludeBogeys bool
}

// DefaultRules excludes bogey numbers.
func DefaultRules() Rules {
	return Rules{ExcludeBogeys: true}
}

// IsFinishable reports whether score can be checked out with dartsRemaining
// darts under the default rules.
func IsFinishable(score, dartsRemaining int) bool {
	return DefaultRules().IsFinishable(score, dartsRemaining)
}

// IsFinishable applies the numeric finishing bounds. It is arithmetic only;
// see the checkout package for concrete routes.
func (r Rules) IsFinishable(score, dartsRemaining int) bool {
	if score < MinFinish || score > MaxFinish {
		return false
	}
	if r.ExcludeBogeys && IsBogey(score) {
		return false
	}
	switch dartsRemaining {
	case 3:
		return true
	case 2:
		return score <= MaxTwoDartOut
	case 1:
		return score <= MaxOneDartOut && score%2 == 0
	default:
		return false
	}
}

// Band selects the range random starting scores are drawn from.
type Band int

const (
	BandUnspecified Band = iota
	BandEasy
	BandMedium
	BandHard
	BandRandom
)

func (b Band) String() string {
	switch b {
	case BandEasy:
		return "easy"
	case BandMedium:
		return "medium"
	case BandHard:
		return "hard"
	case BandRandom:
		return "random"
	default:
		return "unspecified"
	}
}

// Range returns the inclusive score bounds of the band. Unknown bands span
// the full finishing range.
func (b Band) Range() (lo, hi int) {
	switch b {
	case BandEasy:
		return MinFinish, 40
	case BandMedium:
		return 41, 120
	case BandHard:
		return 121, MaxFinish
	default:
		return MinFinish, MaxFinish
	}
}

// MarshalText encodes the band name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a band name.
func (b *Band) UnmarshalText(text []byte) error {
	band, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = band
	return nil
}

// ParseBand maps a band name to a Band.
func ParseBand(value string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return BandEasy, nil
	case "medium":
		return BandMedium, nil
	case "hard":
		return BandHard, nil
	case "random", "":
		return BandRandom, nil
	default:
		return BandUnspecified, fmt.Errorf("unknown difficulty band %q", value)
	}
}

// FinishableScores lists the scores in band that are finishable in three
// darts, ascending.
func (r Rules) FinishableScores(band Band) []int {
	lo, hi := band.Range()
	scores := make([]int, 0, hi-lo+1)
	for score := lo; score <= hi; score++ {
		if r.IsFinishable(score, DartsPerVisit) {
			scores = append(scores, score)
		}
	}
	return scores
}

// RandomFinishableScore draws uniformly from the band's finishable scores,
// falling back to the full 2-170 range when the band has none.
func (r Rules) RandomFinishableScore(band Band, rng Source) int {
	if rng == nil {
		rng = GlobalSource()
	}
	scores := r.FinishableScores(band)
	if len(scores) == 0 {
		scores = r.FinishableScores(BandRandom)
	}
	return scores[rng.Intn(len(scores))]
}
