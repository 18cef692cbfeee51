// Package throw simulates where an aimed dart lands.
package throw

import (
	"fmt"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/random"
)

// Band identifies which step of the miss cascade resolved a throw.
type Band int

const (
	BandUnspecified Band = iota
	BandExactFinish
	BandPerfect
	BandAdjacent
	BandWrongZone
	BandFallback
)

func (b Band) String() string {
	switch b {
	case BandUnspecified:
		return "Unspecified"
	case BandExactFinish:
		return "Exact finish"
	case BandPerfect:
		return "Perfect hit"
	case BandAdjacent:
		return "Adjacent number"
	case BandWrongZone:
		return "Wrong zone"
	case BandFallback:
		return "Fallback"
	default:
		return "Unknown"
	}
}

// Default cascade probabilities.
const (
	DefaultHitProbability       = 0.65
	DefaultAdjacentProbability  = 0.20
	DefaultWrongZoneProbability = 0.10
)

// Treble spill split used when a treble attempt lands elsewhere.
const (
	trebleSpillSameSingle     = 0.5
	trebleSpillAdjacentSingle = 0.8
)

// Rules tunes the cascade.
type Rules struct {
	// ExactFinishOverride makes a dart aimed at the double or bull that
	// exactly finishes the leg always land.
	ExactFinishOverride bool
	// AdjacentProbability is the width of the adjacent-number band.
	AdjacentProbability float64
	// WrongZoneProbability is the width of the wrong-zone band.
	WrongZoneProbability float64
}

// DefaultRules returns the standard cascade with the exact-finish override on.
func DefaultRules() Rules {
	return Rules{
		ExactFinishOverride:  true,
		AdjacentProbability:  DefaultAdjacentProbability,
		WrongZoneProbability: DefaultWrongZoneProbability,
	}
}

// Request describes one aimed dart.
type Request struct {
	Aimed          board.Target
	RemainingScore int
	// HitProbability is the chance in [0,1] of landing exactly on Aimed.
	// Zero selects DefaultHitProbability.
	HitProbability float64
}

// Result captures where the dart landed.
type Result struct {
	Aimed       board.Target
	Hit         board.Target
	Score       int
	WasAccurate bool
	Band        Band
}

// Simulator resolves throws against a random source. A Simulator holds no
// game state; it is not safe for concurrent use unless its Source is.
type Simulator struct {
	rules Rules
	rng   board.Source
}

// NewSimulator builds a simulator. A nil rng uses the process-wide source.
func NewSimulator(rules Rules, rng board.Source) *Simulator {
	if rng == nil {
		rng = board.GlobalSource()
	}
	return &Simulator{rules: rules, rng: rng}
}

// NewSeededSimulator builds a simulator whose throws are reproducible for a
// given seed and request sequence.
func NewSeededSimulator(rules Rules, seed int64) *Simulator {
	return NewSimulator(rules, random.NewRand(seed))
}

// Rules returns the cascade configuration.
func (s *Simulator) Rules() Rules {
	return s.rules
}

// Simulate resolves a throw with the default rules and the process-wide source.
func Simulate(request Request) Result {
	return NewSimulator(DefaultRules(), nil).Simulate(request)
}

// Simulate resolves one throw.
//
// # Cascade
//
// When ExactFinishOverride is on and the aimed double or bull is worth
// exactly the remaining score, the dart lands as aimed without consuming
// randomness. Otherwise one uniform draw r is compared with the cumulative
// edges p1 (hit probability), p1+p2 (adjacent) and p1+p2+p3 (wrong zone):
//
//   - r < p1: the aimed target.
//   - r < p1+p2: same zone on a neighbouring number; the bull drops to 25 and
//     25 drops to a random single.
//   - r < p1+p2+p3: a different zone; bulls drop to a random single, trebles
//     spill 50/30/20 into the same single, an adjacent single or an adjacent
//     treble, singles and doubles move to one of the other two rings.
//   - otherwise: a zero-score miss, except trebles, which spill as above.
//
// Aiming at an off-board number, Miss or an unspecified zone is a caller
// bug and panics.
func (s *Simulator) Simulate(request Request) Result {
	aimed := request.Aimed
	mustBeAimable(aimed)

	if s.rules.ExactFinishOverride && aimed.IsFinishing() && aimed.Value == request.RemainingScore {
		return newResult(aimed, aimed, BandExactFinish)
	}

	p1 := request.HitProbability
	if p1 <= 0 {
		p1 = DefaultHitProbability
	}
	p2 := p1 + s.rules.AdjacentProbability
	p3 := p2 + s.rules.WrongZoneProbability

	r := s.rng.Float64()
	switch {
	case r < p1:
		return newResult(aimed, aimed, BandPerfect)
	case r < p2:
		return newResult(aimed, s.adjacentHit(aimed), BandAdjacent)
	case r < p3:
		return newResult(aimed, s.wrongZoneHit(aimed), BandWrongZone)
	case aimed.Zone == board.ZoneTriple:
		return newResult(aimed, s.trebleSpill(aimed), BandFallback)
	default:
		return newResult(aimed, board.Miss, BandFallback)
	}
}

func (s *Simulator) adjacentHit(aimed board.Target) board.Target {
	switch aimed.Zone {
	case board.ZoneBull:
		return board.OuterBull
	case board.ZoneOuterBull:
		return s.randomSingle()
	default:
		return board.NewTarget(aimed.Zone, s.adjacentNumber(aimed.Number))
	}
}

func (s *Simulator) wrongZoneHit(aimed board.Target) board.Target {
	switch aimed.Zone {
	case board.ZoneBull, board.ZoneOuterBull:
		return s.randomSingle()
	case board.ZoneTriple:
		return s.trebleSpill(aimed)
	}

	others := make([]board.Zone, 0, 2)
	for _, zone := range []board.Zone{board.ZoneSingle, board.ZoneTriple, board.ZoneDouble} {
		if zone != aimed.Zone {
			others = append(others, zone)
		}
	}
	return board.NewTarget(others[s.rng.Intn(len(others))], aimed.Number)
}

func (s *Simulator) trebleSpill(aimed board.Target) board.Target {
	spill := s.rng.Float64()
	switch {
	case spill < trebleSpillSameSingle:
		return board.Single(aimed.Number)
	case spill < trebleSpillAdjacentSingle:
		return board.Single(s.adjacentNumber(aimed.Number))
	default:
		return board.Triple(s.adjacentNumber(aimed.Number))
	}
}

func (s *Simulator) adjacentNumber(number int) int {
	left, right, _ := board.AdjacentNumbers(number)
	if s.rng.Intn(2) == 0 {
		return left
	}
	return right
}

func (s *Simulator) randomSingle() board.Target {
	return board.Single(s.rng.Intn(20) + 1)
}

func newResult(aimed, hit board.Target, band Band) Result {
	return Result{
		Aimed:       aimed,
		Hit:         hit,
		Score:       hit.Value,
		WasAccurate: hit.Equal(aimed),
		Band:        band,
	}
}

// Aimable reports whether a dart can be aimed at target: a board number in
// the single, double or treble ring, or either bull.
func Aimable(target board.Target) bool {
	switch target.Zone {
	case board.ZoneBull, board.ZoneOuterBull:
		return true
	case board.ZoneSingle, board.ZoneDouble, board.ZoneTriple:
		return board.OnBoard(target.Number)
	default:
		return false
	}
}

func mustBeAimable(target board.Target) {
	if !Aimable(target) {
		panic(fmt.Sprintf("throw: target %+v cannot be aimed at", target))
	}
}
