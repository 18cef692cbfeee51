package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/throw"
	"github.com/Vojb/busted-dart/internal/services/practice/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const tracerName = "github.com/Vojb/busted-dart/internal/services/practice/app"

// recentGames is how many sessions the report lists.
const recentGames = 10

// defaultMaxDarts caps a single game so a stuck player cannot loop forever.
const defaultMaxDarts = 99

// Session plays a run of games and records each finished one.
type Session struct {
	Settings   domain.Settings
	Simulator  *throw.Simulator
	BoardRules board.Rules
	// RNG draws starting scores.
	RNG      board.Source
	Player   Player
	Recorder *domain.Recorder
	Out      io.Writer
	Printer  *message.Printer
	MaxDarts int
}

// Summary totals one session run.
type Summary struct {
	Games    int
	Wins     int
	Darts    int
	Progress domain.Progress
	// Quit is set when the player ended the run early.
	Quit bool
}

// NewPrinter returns a printer for locale, falling back to English.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Play runs up to games games. A player quitting ends the run without error.
func (s *Session) Play(ctx context.Context, games int) (Summary, error) {
	if s.Player == nil {
		return Summary{}, fmt.Errorf("player is required")
	}
	if s.Recorder == nil {
		return Summary{}, fmt.Errorf("recorder is required")
	}
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Printer == nil {
		s.Printer = NewPrinter("")
	}
	if s.MaxDarts <= 0 {
		s.MaxDarts = defaultMaxDarts
	}

	var summary Summary
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		session, progress, err := s.playOne(ctx, i+1)
		if errors.Is(err, ErrQuit) {
			summary.Quit = true
			return summary, nil
		}
		if err != nil {
			return summary, err
		}
		summary.Games++
		summary.Darts += session.DartsThrown
		if session.Completed {
			summary.Wins++
		}
		summary.Progress = progress
	}
	return summary, nil
}

func (s *Session) playOne(ctx context.Context, number int) (domain.GameSession, domain.Progress, error) {
	start := s.BoardRules.RandomFinishableScore(s.Settings.Difficulty, s.RNG)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "practice.game", trace.WithAttributes(
		attribute.Int("practice.game_number", number),
		attribute.Int("practice.starting_score", start),
		attribute.String("practice.difficulty", s.Settings.Difficulty.String()),
	))
	defer span.End()

	game, err := domain.NewGame(start, s.Settings, s.Simulator)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.GameSession{}, domain.Progress{}, err
	}
	s.Printer.Fprintf(s.Out, "Game %d: checkout %d\n", number, start)

	for game.Status() == domain.StatusPlaying {
		if game.DartsThrown() >= s.MaxDarts {
			err := fmt.Errorf("game %d exceeded %d darts", number, s.MaxDarts)
			span.SetStatus(codes.Error, err.Error())
			return domain.GameSession{}, domain.Progress{}, err
		}
		aimed, err := s.Player.NextTarget(ctx, game)
		if errors.Is(err, ErrRetry) {
			game.Retry()
			span.AddEvent("practice.retry")
			s.Printer.Fprintf(s.Out, "Retrying checkout %d\n", start)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrQuit) {
				span.SetStatus(codes.Error, err.Error())
			}
			return domain.GameSession{}, domain.Progress{}, err
		}
		turn, err := game.Throw(aimed)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return domain.GameSession{}, domain.Progress{}, err
		}
		s.printTurn(game, turn)
	}

	session, progress, err := s.Recorder.Record(ctx, game)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.GameSession{}, domain.Progress{}, err
	}
	span.SetAttributes(
		attribute.String("practice.status", game.Status().String()),
		attribute.Int("practice.darts_thrown", session.DartsThrown),
		attribute.Float64("practice.accuracy", session.Accuracy),
	)
	s.printResult(game, session)
	return session, progress, nil
}

func (s *Session) printTurn(game *domain.Game, turn domain.Turn) {
	marker := ""
	if !turn.Optimal {
		marker = " (off route)"
	}
	s.Printer.Fprintf(s.Out, "  dart %d: aimed %v, hit %v%s, score %d\n",
		turn.Dart, turn.Result.Aimed, turn.Result.Hit, marker, game.DisplayedScore())
}

func (s *Session) printResult(game *domain.Game, session domain.GameSession) {
	switch game.Status() {
	case domain.StatusWon:
		s.Printer.Fprintf(s.Out, "  checked out %d in %d darts\n", session.StartingScore, session.DartsThrown)
	default:
		s.Printer.Fprintf(s.Out, "  bust on %d after %d darts\n", session.StartingScore, session.DartsThrown)
	}
	s.Printer.Fprintf(s.Out, "  accuracy %.1f%%, decisions %.1f%%\n", session.Accuracy, session.OptimalDecisionRate)
}

// WriteReport prints the lifetime progress report.
func WriteReport(w io.Writer, printer *message.Printer, progress domain.Progress) {
	if printer == nil {
		printer = NewPrinter("")
	}
	printer.Fprintf(w, "Games played: %d\n", progress.TotalGames)
	printer.Fprintf(w, "Checkouts: %d (%.1f%%)\n", progress.TotalWins, progress.WinRate())
	printer.Fprintf(w, "Darts thrown: %d\n", progress.TotalDarts)
	printer.Fprintf(w, "Accuracy: %.1f%%\n", progress.OverallAccuracy())
	printer.Fprintf(w, "Current streak: %d\n", progress.CurrentStreak)
	printer.Fprintf(w, "Three-dart checkouts: %d\n", progress.GamesWith3Darts)
	if average, ok := progress.AverageDartsToFinish(); ok {
		printer.Fprintf(w, "Average darts to finish: %.1f\n", average)
	}
	bests := progress.PersonalBests
	if bests.FewestDarts != nil {
		printer.Fprintf(w, "Fewest darts: %d\n", *bests.FewestDarts)
	}
	if bests.BestAccuracy != nil {
		printer.Fprintf(w, "Best accuracy: %.1f%%\n", *bests.BestAccuracy)
	}
	if bests.BestDecisionRate != nil {
		printer.Fprintf(w, "Best decision rate: %.1f%%\n", *bests.BestDecisionRate)
	}
	if len(progress.Sessions) >= 2 {
		trends := progress.Trends()
		direction := "steady or declining"
		if trends.IsImproving {
			direction = "improving"
		}
		printer.Fprintf(w, "Trend: accuracy %+.1f, decisions %+.1f (%s)\n", trends.AccuracyTrend, trends.DecisionTrend, direction)
	}
	recent := progress.RecentSessions(recentGames)
	if len(recent) == 0 {
		return
	}
	printer.Fprintf(w, "Recent games:\n")
	for _, session := range recent {
		result := "bust"
		if session.Completed {
			result = "checkout"
		}
		printer.Fprintf(w, "  %s  %d  %s in %d darts, accuracy %.1f%%\n",
			session.Time().Format("2006-01-02 15:04"), session.StartingScore, result, session.DartsThrown, session.Accuracy)
	}
}
