// Package domain holds the checkout practice game loop and progress rules.
package domain

import (
	"fmt"
	"time"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/checkout"
	"github.com/Vojb/busted-dart/internal/darts/throw"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusBust
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusBust:
		return "bust"
	default:
		return "unknown"
	}
}

// Turn records one thrown dart.
type Turn struct {
	// Dart is the 1-based dart number within the game.
	Dart   int
	Result throw.Result
	// Before and After are the pending scores around the dart.
	Before int
	After  int
	// Optimal is true when the aimed target belongs to a curated route for Before.
	Optimal bool
	Status  Status
}

// Game plays one checkout attempt from a starting score down to zero.
type Game struct {
	settings  Settings
	simulator *throw.Simulator

	startingScore int
	pending       int
	displayed     int
	status        Status
	turns         []Turn
	accurate      int
	optimal       int
}

// NewGame starts a game. The simulator supplies randomness and cascade rules.
func NewGame(startingScore int, settings Settings, simulator *throw.Simulator) (*Game, error) {
	if startingScore < board.MinFinish {
		return nil, fmt.Errorf("%d: %w", startingScore, ErrInvalidStartingScore)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if simulator == nil {
		simulator = throw.NewSimulator(throw.DefaultRules(), nil)
	}
	return &Game{
		settings:      settings,
		simulator:     simulator,
		startingScore: startingScore,
		pending:       startingScore,
		displayed:     startingScore,
		status:        StatusPlaying,
	}, nil
}

// Throw resolves one dart aimed at target.
func (g *Game) Throw(aimed board.Target) (Turn, error) {
	if g.status != StatusPlaying {
		return Turn{}, ErrGameOver
	}
	if !throw.Aimable(aimed) {
		return Turn{}, fmt.Errorf("%v: %w", aimed, ErrUnaimableTarget)
	}

	before := g.pending
	result := g.simulator.Simulate(throw.Request{
		Aimed:          aimed,
		RemainingScore: before,
		HitProbability: g.settings.HitProbability(aimed.Zone),
	})
	optimal := checkout.IsOptimalChoice(before, aimed)
	after := before - result.Score

	if result.WasAccurate {
		g.accurate++
	}
	if optimal {
		g.optimal++
	}

	turn := Turn{
		Dart:    len(g.turns) + 1,
		Result:  result,
		Before:  before,
		After:   after,
		Optimal: optimal,
	}
	g.pending = after

	switch {
	case after < 0 || after == 1:
		g.status = StatusBust
	case after == 0 && result.Hit.IsFinishing():
		g.status = StatusWon
	case after == 0:
		g.status = StatusBust
	}

	if g.status != StatusPlaying || turn.Dart%board.DartsPerVisit == 0 || g.settings.LearningMode {
		g.displayed = after
	}
	turn.Status = g.status
	g.turns = append(g.turns, turn)
	return turn, nil
}

// Status returns the game state.
func (g *Game) Status() Status { return g.status }

// StartingScore returns the score the game began from.
func (g *Game) StartingScore() int { return g.startingScore }

// Remaining returns the pending score after every thrown dart.
func (g *Game) Remaining() int { return g.pending }

// DisplayedScore returns the score shown to the player. It only moves at the
// end of each visit unless learning mode is on or the game has ended.
func (g *Game) DisplayedScore() int { return g.displayed }

// DartsThrown returns the number of darts thrown so far.
func (g *Game) DartsThrown() int { return len(g.turns) }

// DartsRemainingInVisit returns how many darts are left in the current visit.
func (g *Game) DartsRemainingInVisit() int {
	return board.DartsPerVisit - len(g.turns)%board.DartsPerVisit
}

// Settings returns the settings the game was started with.
func (g *Game) Settings() Settings { return g.settings }

// Turns returns a copy of the dart history.
func (g *Game) Turns() []Turn {
	return append([]Turn(nil), g.turns...)
}

// Suggestions returns the curated routes for the pending score.
func (g *Game) Suggestions() []checkout.Route {
	return checkout.OptimalCheckouts(g.pending)
}

// Accuracy is the percentage of darts that landed where aimed.
func (g *Game) Accuracy() float64 {
	return percent(g.accurate, len(g.turns))
}

// DecisionRate is the percentage of darts aimed at a curated route target.
func (g *Game) DecisionRate() float64 {
	return percent(g.optimal, len(g.turns))
}

// Retry restarts the game from the same starting score.
func (g *Game) Retry() {
	g.pending = g.startingScore
	g.displayed = g.startingScore
	g.status = StatusPlaying
	g.turns = nil
	g.accurate = 0
	g.optimal = 0
}

// Session summarizes a finished game.
func (g *Game) Session(id string, now time.Time) (GameSession, error) {
	if g.status == StatusPlaying {
		return GameSession{}, ErrGameInProgress
	}
	return GameSession{
		ID:                  id,
		Timestamp:           now.UTC().UnixMilli(),
		StartingScore:       g.startingScore,
		DartsThrown:         len(g.turns),
		Completed:           g.status == StatusWon,
		Accuracy:            g.Accuracy(),
		OptimalDecisionRate: g.DecisionRate(),
		AccurateHits:        g.accurate,
		OptimalDecisions:    g.optimal,
	}, nil
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
