package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/throw"
)

// fixedDraws replays Float64 draws and fails the test on any Intn draw.
type fixedDraws struct {
	t      *testing.T
	floats []float64
}

func (s *fixedDraws) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("unexpected Float64 draw")
	}
	value := s.floats[0]
	s.floats = s.floats[1:]
	return value
}

func (s *fixedDraws) Intn(int) int {
	s.t.Helper()
	s.t.Fatal("unexpected Intn draw")
	return 0
}

// perfectDarts returns a simulator where every dart lands as aimed.
func perfectDarts(t *testing.T, darts int) *throw.Simulator {
	t.Helper()
	floats := make([]float64, darts)
	return throw.NewSimulator(throw.DefaultRules(), &fixedDraws{t: t, floats: floats})
}

func newTestGame(t *testing.T, start int, settings Settings, sim *throw.Simulator) *Game {
	t.Helper()
	game, err := NewGame(start, settings, sim)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return game
}

// TestGameExactDoubleFinishWins covers the 40-on-D20 checkout.
func TestGameExactDoubleFinishWins(t *testing.T) {
	game := newTestGame(t, 40, DefaultSettings(), perfectDarts(t, 0))

	turn, err := game.Throw(board.Double(20))
	if err != nil {
		t.Fatalf("throw: %v", err)
	}
	if turn.Result.Score != 40 || !turn.Result.WasAccurate {
		t.Fatalf("result = %+v", turn.Result)
	}
	if turn.Status != StatusWon || game.Status() != StatusWon {
		t.Fatalf("status = %v, want %v", game.Status(), StatusWon)
	}
	if !turn.Optimal {
		t.Fatal("D20 on 40 should be an optimal decision")
	}
	if game.DisplayedScore() != 0 {
		t.Fatalf("displayed = %d, want 0", game.DisplayedScore())
	}
}

func TestGameBusts(t *testing.T) {
	tests := []struct {
		name  string
		start int
		aimed board.Target
		after int
	}{
		{name: "below zero", start: 50, aimed: board.Triple(20), after: -10},
		{name: "left on one", start: 21, aimed: board.Single(20), after: 1},
		{name: "zero on a single", start: 20, aimed: board.Single(20), after: 0},
		{name: "zero on a treble", start: 60, aimed: board.Triple(20), after: 0},
		{name: "zero on outer bull", start: 25, aimed: board.OuterBull, after: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := newTestGame(t, tc.start, DefaultSettings(), perfectDarts(t, 1))
			turn, err := game.Throw(tc.aimed)
			if err != nil {
				t.Fatalf("throw: %v", err)
			}
			if turn.After != tc.after || game.Remaining() != tc.after {
				t.Fatalf("after = %d, want %d", turn.After, tc.after)
			}
			if game.Status() != StatusBust {
				t.Fatalf("status = %v, want %v", game.Status(), StatusBust)
			}
			if game.DisplayedScore() != tc.after {
				t.Fatalf("displayed = %d, want %d", game.DisplayedScore(), tc.after)
			}
		})
	}
}

// TestGameContinuesPastThreeDarts ensures the game only ends on a win or bust.
func TestGameContinuesPastThreeDarts(t *testing.T) {
	game := newTestGame(t, 100, DefaultSettings(), perfectDarts(t, 4))
	wantDisplayed := []int{100, 100, 97, 97}
	wantRemainingInVisit := []int{2, 1, 3, 2}
	for i := 0; i < 4; i++ {
		turn, err := game.Throw(board.Single(1))
		if err != nil {
			t.Fatalf("throw %d: %v", i+1, err)
		}
		if turn.Dart != i+1 {
			t.Fatalf("dart = %d, want %d", turn.Dart, i+1)
		}
		if game.DisplayedScore() != wantDisplayed[i] {
			t.Fatalf("dart %d displayed = %d, want %d", i+1, game.DisplayedScore(), wantDisplayed[i])
		}
		if game.DartsRemainingInVisit() != wantRemainingInVisit[i] {
			t.Fatalf("dart %d remaining in visit = %d, want %d", i+1, game.DartsRemainingInVisit(), wantRemainingInVisit[i])
		}
	}
	if game.Status() != StatusPlaying || game.Remaining() != 96 || game.DartsThrown() != 4 {
		t.Fatalf("status=%v remaining=%d darts=%d", game.Status(), game.Remaining(), game.DartsThrown())
	}
}

// TestGameLearningModeShowsEveryDart ensures the displayed score follows each dart.
func TestGameLearningModeShowsEveryDart(t *testing.T) {
	settings := DefaultSettings()
	settings.LearningMode = true
	game := newTestGame(t, 100, settings, perfectDarts(t, 2))
	for _, want := range []int{99, 98} {
		if _, err := game.Throw(board.Single(1)); err != nil {
			t.Fatalf("throw: %v", err)
		}
		if game.DisplayedScore() != want {
			t.Fatalf("displayed = %d, want %d", game.DisplayedScore(), want)
		}
	}
}

// TestGameTwoDartCheckout plays T20 then D20 from 100.
func TestGameTwoDartCheckout(t *testing.T) {
	game := newTestGame(t, 100, DefaultSettings(), perfectDarts(t, 1))
	if _, err := game.Throw(board.Triple(20)); err != nil {
		t.Fatalf("throw T20: %v", err)
	}
	if got := game.Suggestions(); len(got) == 0 || got[0].String() != "D20" {
		t.Fatalf("suggestions for 40 = %v", got)
	}
	if _, err := game.Throw(board.Double(20)); err != nil {
		t.Fatalf("throw D20: %v", err)
	}
	if game.Status() != StatusWon {
		t.Fatalf("status = %v, want won", game.Status())
	}
	session, err := game.Session("s-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if !session.Completed || session.DartsThrown != 2 || session.StartingScore != 100 {
		t.Fatalf("session = %+v", session)
	}
	if session.Accuracy != 100 || session.OptimalDecisionRate != 100 {
		t.Fatalf("accuracy=%v decisions=%v, want 100/100", session.Accuracy, session.OptimalDecisionRate)
	}
	if !session.Time().Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("session time = %v", session.Time())
	}
}

// TestGameDecisionRateCountsNonRouteTargets ensures off-route aims lower the decision rate.
func TestGameDecisionRateCountsNonRouteTargets(t *testing.T) {
	game := newTestGame(t, 100, DefaultSettings(), perfectDarts(t, 2))
	if turn, _ := game.Throw(board.Triple(18)); turn.Optimal {
		t.Fatal("T18 on 100 should not be optimal")
	}
	if turn, _ := game.Throw(board.Double(3)); turn.Optimal {
		t.Fatal("D3 on 46 should not be optimal")
	}
	if _, err := game.Throw(board.Double(20)); err != nil {
		t.Fatalf("throw: %v", err)
	}
	if game.Status() != StatusWon {
		t.Fatalf("status = %v, want won", game.Status())
	}
	if got := game.DecisionRate(); got < 33.3 || got > 33.4 {
		t.Fatalf("decision rate = %v, want 33.3", got)
	}
}

func TestGameThrowAfterEndReturnsErrGameOver(t *testing.T) {
	game := newTestGame(t, 2, DefaultSettings(), perfectDarts(t, 0))
	if _, err := game.Throw(board.Double(1)); err != nil {
		t.Fatalf("throw: %v", err)
	}
	if _, err := game.Throw(board.Double(1)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want %v", err, ErrGameOver)
	}
}

func TestGameRejectsUnaimableTargets(t *testing.T) {
	game := newTestGame(t, 100, DefaultSettings(), perfectDarts(t, 0))
	if _, err := game.Throw(board.Miss); !errors.Is(err, ErrUnaimableTarget) {
		t.Fatalf("err = %v, want %v", err, ErrUnaimableTarget)
	}
	if game.DartsThrown() != 0 {
		t.Fatalf("darts thrown = %d, want 0", game.DartsThrown())
	}
}

func TestNewGameValidation(t *testing.T) {
	if _, err := NewGame(1, DefaultSettings(), nil); !errors.Is(err, ErrInvalidStartingScore) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidStartingScore)
	}
	settings := DefaultSettings()
	settings.Double = 5
	if _, err := NewGame(100, settings, nil); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidPercentage)
	}
}

func TestGameSessionRequiresFinishedGame(t *testing.T) {
	game := newTestGame(t, 100, DefaultSettings(), nil)
	if _, err := game.Session("id", time.Now()); !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("err = %v, want %v", err, ErrGameInProgress)
	}
}

// TestGameRetryRestartsFromStartingScore covers the try-again flow.
func TestGameRetryRestartsFromStartingScore(t *testing.T) {
	game := newTestGame(t, 20, DefaultSettings(), perfectDarts(t, 1))
	if _, err := game.Throw(board.Single(20)); err != nil {
		t.Fatalf("throw: %v", err)
	}
	if game.Status() != StatusBust {
		t.Fatalf("status = %v, want bust", game.Status())
	}
	game.Retry()
	if game.Status() != StatusPlaying || game.Remaining() != 20 || game.DisplayedScore() != 20 {
		t.Fatalf("after retry: status=%v remaining=%d displayed=%d", game.Status(), game.Remaining(), game.DisplayedScore())
	}
	if game.DartsThrown() != 0 || game.Accuracy() != 0 || len(game.Turns()) != 0 {
		t.Fatalf("history not cleared: darts=%d accuracy=%v", game.DartsThrown(), game.Accuracy())
	}
	if _, err := game.Throw(board.Double(10)); err != nil {
		t.Fatalf("throw after retry: %v", err)
	}
	if game.Status() != StatusWon {
		t.Fatalf("status = %v, want won", game.Status())
	}
}

// TestGameTrebleFromHundredNeverScoresZero covers the treble fallback end to end.
func TestGameTrebleFromHundredNeverScoresZero(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		game := newTestGame(t, 100, DefaultSettings(), throw.NewSeededSimulator(throw.DefaultRules(), seed))
		turn, err := game.Throw(board.Triple(20))
		if err != nil {
			t.Fatalf("throw: %v", err)
		}
		if turn.Result.Score == 0 || turn.After != 100-turn.Result.Hit.Value {
			t.Fatalf("seed %d: turn = %+v", seed, turn)
		}
	}
}

// TestGameUsesZoneHitProbability ensures the aimed zone selects the hit ratio.
func TestGameUsesZoneHitProbability(t *testing.T) {
	settings := DefaultSettings()
	settings.Triple = 90
	src := &fixedDraws{t: t, floats: []float64{0.8}}
	game := newTestGame(t, 170, settings, throw.NewSimulator(throw.DefaultRules(), src))
	turn, err := game.Throw(board.Triple(20))
	if err != nil {
		t.Fatalf("throw: %v", err)
	}
	if !turn.Result.WasAccurate {
		t.Fatalf("0.8 draw against 90%% treble should hit: %+v", turn.Result)
	}
}

func TestStatusString(t *testing.T) {
	if StatusWon.String() != "won" || StatusBust.String() != "bust" || Status(9).String() != "unknown" {
		t.Fatal("unexpected status strings")
	}
}
