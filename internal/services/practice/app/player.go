package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/checkout"
	"github.com/Vojb/busted-dart/internal/darts/throw"
	"github.com/Vojb/busted-dart/internal/services/practice/domain"
)

var (
	// ErrQuit stops the session without recording the game in progress.
	ErrQuit = errors.New("player quit")
	// ErrRetry restarts the game in progress from its starting score.
	ErrRetry = errors.New("player asked to retry")
)

// Player chooses the target for the next dart.
type Player interface {
	NextTarget(ctx context.Context, game *domain.Game) (board.Target, error)
}

// Autopilot always aims at the recommended checkout dart.
type Autopilot struct{}

// NextTarget implements Player.
func (Autopilot) NextTarget(ctx context.Context, game *domain.Game) (board.Target, error) {
	if err := ctx.Err(); err != nil {
		return board.Target{}, err
	}
	return checkout.NextTarget(game.Remaining()), nil
}

// LinePlayer reads one target label per line, such as T20, D16, 25 or Bull.
// "hint" prints the routes for the score, "retry" restarts the game and
// "quit" ends the session.
type LinePlayer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePlayer reads commands from in and writes prompts to out.
func NewLinePlayer(in io.Reader, out io.Writer) *LinePlayer {
	if out == nil {
		out = io.Discard
	}
	return &LinePlayer{scanner: bufio.NewScanner(in), out: out}
}

// NextTarget implements Player.
func (p *LinePlayer) NextTarget(ctx context.Context, game *domain.Game) (board.Target, error) {
	for {
		if err := ctx.Err(); err != nil {
			return board.Target{}, err
		}
		fmt.Fprintf(p.out, "%d (%d darts left in visit) > ", game.DisplayedScore(), game.DartsRemainingInVisit())
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return board.Target{}, fmt.Errorf("read target: %w", err)
			}
			return board.Target{}, ErrQuit
		}

		line := strings.TrimSpace(p.scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return board.Target{}, ErrQuit
		case "retry":
			return board.Target{}, ErrRetry
		case "?", "hint":
			p.printHint(game)
			continue
		}

		target, err := board.ParseTarget(line)
		if err != nil || !throw.Aimable(target) {
			fmt.Fprintf(p.out, "unknown target %q\n", line)
			continue
		}
		return target, nil
	}
}

// printHint works from the displayed score so hints never reveal darts the
// scoreboard has not caught up with yet.
func (p *LinePlayer) printHint(game *domain.Game) {
	score := game.DisplayedScore()
	routes := checkout.OptimalCheckouts(score)
	if len(routes) == 0 {
		fmt.Fprintf(p.out, "no checkout for %d, aim %v\n", score, checkout.NextTarget(score))
		return
	}
	for _, route := range routes {
		fmt.Fprintf(p.out, "  %v\n", route)
	}
}
