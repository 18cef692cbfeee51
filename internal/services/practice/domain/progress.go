package domain

import (
	"time"

	"github.com/Vojb/busted-dart/internal/darts/board"
)

// trendWindow is how many recent sessions feed Trends.
const trendWindow = 20

// GameSession is the record of one finished game.
type GameSession struct {
	ID string `json:"id"`
	// Timestamp is in Unix milliseconds.
	Timestamp     int64 `json:"timestamp"`
	StartingScore int   `json:"startingScore"`
	DartsThrown   int   `json:"dartsThrown"`
	Completed     bool  `json:"completed"`
	// Accuracy and OptimalDecisionRate are percentages in [0,100].
	Accuracy            float64 `json:"accuracy"`
	OptimalDecisionRate float64 `json:"optimalDecisionRate"`
	AccurateHits        int     `json:"accurateHits,omitempty"`
	OptimalDecisions    int     `json:"optimalDecisions,omitempty"`
}

// Time returns Timestamp as a UTC time.
func (s GameSession) Time() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// PersonalBests holds the best values seen so far; nil means none yet.
type PersonalBests struct {
	FewestDarts      *int     `json:"fewestDarts"`
	BestAccuracy     *float64 `json:"bestAccuracy"`
	BestDecisionRate *float64 `json:"bestDecisionRate"`
}

// Progress aggregates every recorded session.
type Progress struct {
	TotalGames            int           `json:"totalGames"`
	TotalWins             int           `json:"totalWins"`
	TotalDarts            int           `json:"totalDarts"`
	TotalAccurateHits     int           `json:"totalAccurateHits"`
	TotalOptimalDecisions int           `json:"totalOptimalDecisions"`
	TotalDecisions        int           `json:"totalDecisions"`
	Sessions              []GameSession `json:"sessions"`
	GamesWith3Darts       int           `json:"gamesWith3Darts"`
	CurrentStreak         int           `json:"currentStreak"`
	PersonalBests         PersonalBests `json:"personalBests"`
}

// NewProgress returns empty progress.
func NewProgress() Progress {
	return Progress{Sessions: []GameSession{}}
}

// AddSession appends a session and updates totals and personal bests.
// Fewest darts only counts completed games.
func (p *Progress) AddSession(session GameSession) {
	p.Sessions = append(p.Sessions, session)
	p.TotalGames++
	p.TotalDarts += session.DartsThrown
	p.TotalAccurateHits += session.AccurateHits
	p.TotalOptimalDecisions += session.OptimalDecisions
	p.TotalDecisions += session.DartsThrown

	if session.Completed {
		p.TotalWins++
		if p.PersonalBests.FewestDarts == nil || session.DartsThrown < *p.PersonalBests.FewestDarts {
			darts := session.DartsThrown
			p.PersonalBests.FewestDarts = &darts
		}
	}
	if p.PersonalBests.BestAccuracy == nil || session.Accuracy > *p.PersonalBests.BestAccuracy {
		accuracy := session.Accuracy
		p.PersonalBests.BestAccuracy = &accuracy
	}
	if p.PersonalBests.BestDecisionRate == nil || session.OptimalDecisionRate > *p.PersonalBests.BestDecisionRate {
		rate := session.OptimalDecisionRate
		p.PersonalBests.BestDecisionRate = &rate
	}
}

// RecordStreak updates the three-dart streak. A game completed within one
// visit extends it; anything else resets it. Learning-mode games are ignored.
func (p *Progress) RecordStreak(completed bool, dartsThrown int, learningMode bool) {
	if learningMode {
		return
	}
	if completed && dartsThrown <= board.DartsPerVisit {
		p.GamesWith3Darts++
		p.CurrentStreak++
		return
	}
	p.CurrentStreak = 0
}

// ResetStreak clears the current streak.
func (p *Progress) ResetStreak() {
	p.CurrentStreak = 0
}

// RecentSessions returns up to n sessions, newest first.
func (p Progress) RecentSessions(n int) []GameSession {
	if n <= 0 {
		return []GameSession{}
	}
	start := len(p.Sessions) - n
	if start < 0 {
		start = 0
	}
	recent := make([]GameSession, 0, len(p.Sessions)-start)
	for i := len(p.Sessions) - 1; i >= start; i-- {
		recent = append(recent, p.Sessions[i])
	}
	return recent
}

// Trends compares the older and newer halves of the recent sessions.
type Trends struct {
	AccuracyTrend float64 `json:"accuracyTrend"`
	DecisionTrend float64 `json:"decisionTrend"`
	IsImproving   bool    `json:"isImproving"`
}

// Trends splits the last twenty sessions in half and reports how the
// average accuracy and decision rate moved. Fewer than two sessions report
// no trend.
func (p Progress) Trends() Trends {
	window := p.Sessions
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	if len(window) < 2 {
		return Trends{}
	}
	mid := len(window) / 2
	firstAccuracy, firstDecision := averages(window[:mid])
	secondAccuracy, secondDecision := averages(window[mid:])
	return Trends{
		AccuracyTrend: secondAccuracy - firstAccuracy,
		DecisionTrend: secondDecision - firstDecision,
		IsImproving:   secondAccuracy > firstAccuracy || secondDecision > firstDecision,
	}
}

func averages(sessions []GameSession) (accuracy, decision float64) {
	for _, session := range sessions {
		accuracy += session.Accuracy
		decision += session.OptimalDecisionRate
	}
	count := float64(len(sessions))
	return accuracy / count, decision / count
}

// AverageDartsToFinish is the mean dart count of completed sessions.
func (p Progress) AverageDartsToFinish() (float64, bool) {
	darts, wins := 0, 0
	for _, session := range p.Sessions {
		if session.Completed {
			darts += session.DartsThrown
			wins++
		}
	}
	if wins == 0 {
		return 0, false
	}
	return float64(darts) / float64(wins), true
}

// WinRate is the percentage of games completed.
func (p Progress) WinRate() float64 {
	return percent(p.TotalWins, p.TotalGames)
}

// OverallAccuracy is the percentage of all recorded darts that hit their target.
func (p Progress) OverallAccuracy() float64 {
	return percent(p.TotalAccurateHits, p.TotalDarts)
}
