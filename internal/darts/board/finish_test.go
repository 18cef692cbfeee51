package board

import (
	"math/rand"
	"testing"
)

func TestIsFinishable(t *testing.T) {
	tests := []struct {
		score int
		darts int
		want  bool
	}{
		{score: 1, darts: 1, want: false},
		{score: 1, darts: 2, want: false},
		{score: 1, darts: 3, want: false},
		{score: 0, darts: 3, want: false},
		{score: -4, darts: 3, want: false},
		{score: 171, darts: 3, want: false},
		{score: 170, darts: 3, want: true},
		{score: 2, darts: 3, want: true},
		{score: 110, darts: 2, want: true},
		{score: 111, darts: 2, want: false},
		{score: 40, darts: 1, want: true},
		{score: 50, darts: 1, want: true},
		{score: 52, darts: 1, want: false},
		{score: 39, darts: 1, want: false},
		{score: 40, darts: 0, want: false},
		{score: 40, darts: 4, want: false},
		{score: 169, darts: 3, want: false},
		{score: 159, darts: 3, want: false},
		{score: 167, darts: 3, want: true},
	}
	for _, tc := range tests {
		if got := IsFinishable(tc.score, tc.darts); got != tc.want {
			t.Fatalf("IsFinishable(%d, %d) = %v, want %v", tc.score, tc.darts, got, tc.want)
		}
	}
}

// TestIsFinishableWithBogeysAllowed ensures the refinement can be switched off.
func TestIsFinishableWithBogeysAllowed(t *testing.T) {
	rules := Rules{ExcludeBogeys: false}
	for score := range bogeys {
		if !rules.IsFinishable(score, 3) {
			t.Fatalf("IsFinishable(%d, 3) = false with bogeys allowed", score)
		}
	}
	if rules.IsFinishable(1, 3) {
		t.Fatal("1 must stay unfinishable")
	}
}

func TestParseBand(t *testing.T) {
	tests := map[string]Band{
		"easy":   BandEasy,
		"Medium": BandMedium,
		" hard ": BandHard,
		"random": BandRandom,
		"":       BandRandom,
	}
	for input, want := range tests {
		got, err := ParseBand(input)
		if err != nil {
			t.Fatalf("ParseBand(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseBand(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseBand("expert"); err == nil {
		t.Fatal("expected error for unknown band")
	}
}

// TestRandomFinishableScoreStaysInBand ensures sampled scores respect the band and rules.
func TestRandomFinishableScoreStaysInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rules := DefaultRules()
	for _, band := range []Band{BandEasy, BandMedium, BandHard, BandRandom} {
		lo, hi := band.Range()
		for i := 0; i < 500; i++ {
			score := rules.RandomFinishableScore(band, rng)
			if score < lo || score > hi {
				t.Fatalf("band %v produced %d outside [%d,%d]", band, score, lo, hi)
			}
			if !rules.IsFinishable(score, 3) {
				t.Fatalf("band %v produced unfinishable %d", band, score)
			}
		}
	}
}

// TestRandomFinishableScoreCoversBand ensures every candidate can be drawn.
func TestRandomFinishableScoreCoversBand(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rules := DefaultRules()
	want := rules.FinishableScores(BandEasy)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		seen[rules.RandomFinishableScore(BandEasy, rng)] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("saw %d distinct scores, want %d", len(seen), len(want))
	}
}

type fixedSource struct {
	intn int
}

func (s fixedSource) Float64() float64 { return 0 }
func (s fixedSource) Intn(n int) int { return s.intn % n }

// TestRandomFinishableScoreUnknownBandUsesFullRange ensures unknown bands draw from 2-170.
func TestRandomFinishableScoreUnknownBandUsesFullRange(t *testing.T) {
	rules := DefaultRules()
	got := rules.RandomFinishableScore(Band(99), fixedSource{intn: 0})
	if got != MinFinish {
		t.Fatalf("RandomFinishableScore = %d, want %d", got, MinFinish)
	}
}

func TestFinishableScoresExcludesBogeys(t *testing.T) {
	for _, score := range DefaultRules().FinishableScores(BandHard) {
		if IsBogey(score) {
			t.Fatalf("FinishableScores included bogey %d", score)
		}
	}
	if got := len(DefaultRules().FinishableScores(BandHard)); got != 50-7 {
		t.Fatalf("hard band size = %d, want %d", got, 50-7)
	}
	if got := len(DefaultRules().FinishableScores(BandEasy)); got != 39 {
		t.Fatalf("easy band size = %d, want 39", got)
	}
}
