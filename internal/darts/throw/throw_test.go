package throw

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Vojb/busted-dart/internal/darts/board"
)

// scriptedSource replays fixed draws and fails the test when it runs dry.
type scriptedSource struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("unexpected Float64 draw")
	}
	value := s.floats[0]
	s.floats = s.floats[1:]
	return value
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatal("unexpected Intn draw")
	}
	value := s.ints[0]
	s.ints = s.ints[1:]
	if value < 0 || value >= n {
		s.t.Fatalf("scripted Intn value %d outside [0,%d)", value, n)
	}
	return value
}

func (s *scriptedSource) drained() bool {
	return len(s.floats) == 0 && len(s.ints) == 0
}

// TestSimulateCascade walks every band of the cascade with scripted draws.
func TestSimulateCascade(t *testing.T) {
	tests := []struct {
		name   string
		aimed  board.Target
		floats []float64
		ints   []int
		want   board.Target
		band   Band
	}{
		{name: "perfect treble", aimed: board.Triple(20), floats: []float64{0.1}, want: board.Triple(20), band: BandPerfect},
		{name: "adjacent treble left", aimed: board.Triple(20), floats: []float64{0.7}, ints: []int{0}, want: board.Triple(5), band: BandAdjacent},
		{name: "adjacent double right", aimed: board.Double(16), floats: []float64{0.7}, ints: []int{1}, want: board.Double(8), band: BandAdjacent},
		{name: "adjacent bull drops to 25", aimed: board.Bull, floats: []float64{0.7}, want: board.OuterBull, band: BandAdjacent},
		{name: "adjacent outer bull drops to single", aimed: board.OuterBull, floats: []float64{0.7}, ints: []int{6}, want: board.Single(7), band: BandAdjacent},
		{name: "wrong zone bull", aimed: board.Bull, floats: []float64{0.9}, ints: []int{19}, want: board.Single(20), band: BandWrongZone},
		{name: "wrong zone treble same single", aimed: board.Triple(19), floats: []float64{0.9, 0.2}, want: board.Single(19), band: BandWrongZone},
		{name: "wrong zone treble adjacent single", aimed: board.Triple(19), floats: []float64{0.9, 0.6}, ints: []int{0}, want: board.Single(3), band: BandWrongZone},
		{name: "wrong zone treble adjacent treble", aimed: board.Triple(19), floats: []float64{0.9, 0.85}, ints: []int{1}, want: board.Triple(7), band: BandWrongZone},
		{name: "wrong zone single to treble", aimed: board.Single(20), floats: []float64{0.9}, ints: []int{0}, want: board.Triple(20), band: BandWrongZone},
		{name: "wrong zone single to double", aimed: board.Single(20), floats: []float64{0.9}, ints: []int{1}, want: board.Double(20), band: BandWrongZone},
		{name: "wrong zone double to single", aimed: board.Double(20), floats: []float64{0.9}, ints: []int{0}, want: board.Single(20), band: BandWrongZone},
		{name: "wrong zone double to treble", aimed: board.Double(20), floats: []float64{0.9}, ints: []int{1}, want: board.Triple(20), band: BandWrongZone},
		{name: "miss double", aimed: board.Double(20), floats: []float64{0.99}, want: board.Miss, band: BandFallback},
		{name: "miss bull", aimed: board.Bull, floats: []float64{0.99}, want: board.Miss, band: BandFallback},
		{name: "treble never misses", aimed: board.Triple(20), floats: []float64{0.99, 0.1}, want: board.Single(20), band: BandFallback},
		{name: "treble fallback adjacent treble", aimed: board.Triple(20), floats: []float64{0.99, 0.95}, ints: []int{1}, want: board.Triple(1), band: BandFallback},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{t: t, floats: tc.floats, ints: tc.ints}
			sim := NewSimulator(DefaultRules(), src)
			result := sim.Simulate(Request{Aimed: tc.aimed, RemainingScore: 501, HitProbability: 0.65})
			if !result.Hit.Equal(tc.want) {
				t.Fatalf("hit = %v, want %v", result.Hit, tc.want)
			}
			if result.Band != tc.band {
				t.Fatalf("band = %v, want %v", result.Band, tc.band)
			}
			if result.Score != tc.want.Value {
				t.Fatalf("score = %d, want %d", result.Score, tc.want.Value)
			}
			if result.WasAccurate != tc.want.Equal(tc.aimed) {
				t.Fatalf("wasAccurate = %v", result.WasAccurate)
			}
			if !src.drained() {
				t.Fatalf("unused draws: floats=%v ints=%v", src.floats, src.ints)
			}
		})
	}
}

// TestSimulateExactFinishOverride ensures true checkout darts land regardless of the draw.
func TestSimulateExactFinishOverride(t *testing.T) {
	tests := []struct {
		aimed     board.Target
		remaining int
	}{
		{aimed: board.Double(20), remaining: 40},
		{aimed: board.Double(1), remaining: 2},
		{aimed: board.Bull, remaining: 50},
	}
	for _, tc := range tests {
		// No scripted draws: any randomness consumed fails the test.
		src := &scriptedSource{t: t}
		result := NewSimulator(DefaultRules(), src).Simulate(Request{
			Aimed:          tc.aimed,
			RemainingScore: tc.remaining,
			HitProbability: 0.10,
		})
		if !result.WasAccurate || result.Score != tc.remaining || result.Band != BandExactFinish {
			t.Fatalf("Simulate(%v, %d) = %+v", tc.aimed, tc.remaining, result)
		}
	}
}

// TestSimulateExactFinishOverrideOnlyForFinishingZones ensures trebles and singles never get the override.
func TestSimulateExactFinishOverrideOnlyForFinishingZones(t *testing.T) {
	src := &scriptedSource{t: t, floats: []float64{0.99}}
	result := NewSimulator(DefaultRules(), src).Simulate(Request{
		Aimed:          board.OuterBull,
		RemainingScore: 25,
		HitProbability: 0.5,
	})
	if result.Band != BandFallback || result.Score != 0 {
		t.Fatalf("result = %+v, want fallback miss", result)
	}
}

// TestSimulateExactFinishOverrideDisabled ensures the override can be switched off.
func TestSimulateExactFinishOverrideDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.ExactFinishOverride = false
	src := &scriptedSource{t: t, floats: []float64{0.99}}
	result := NewSimulator(rules, src).Simulate(Request{
		Aimed:          board.Double(20),
		RemainingScore: 40,
		HitProbability: 0.65,
	})
	if result.WasAccurate || !result.Hit.Equal(board.Miss) {
		t.Fatalf("result = %+v, want miss", result)
	}
}

// TestSimulateExactFinishIndependentOfRandomness checks the override across many seeds.
func TestSimulateExactFinishIndependentOfRandomness(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		result := NewSeededSimulator(DefaultRules(), seed).Simulate(Request{
			Aimed:          board.Double(20),
			RemainingScore: 40,
			HitProbability: 0.1,
		})
		if !result.WasAccurate || result.Score != 40 {
			t.Fatalf("seed %d: result = %+v", seed, result)
		}
	}
}

// TestSimulateTrebleConvergesAndNeverMisses checks the perfect-hit rate over a large sample.
func TestSimulateTrebleConvergesAndNeverMisses(t *testing.T) {
	const samples = 100000
	sim := NewSimulator(DefaultRules(), rand.New(rand.NewSource(42)))
	perfect := 0
	for i := 0; i < samples; i++ {
		result := sim.Simulate(Request{Aimed: board.Triple(20), RemainingScore: 301, HitProbability: 0.65})
		if result.Score == 0 {
			t.Fatalf("treble throw scored zero: %+v", result)
		}
		if result.WasAccurate {
			perfect++
		}
	}
	rate := float64(perfect) / samples
	if math.Abs(rate-0.65) > 0.01 {
		t.Fatalf("perfect rate = %.4f, want 0.65 ± 0.01", rate)
	}
}

// TestSimulateDoubleMissRate checks the complete-miss band width for doubles.
func TestSimulateDoubleMissRate(t *testing.T) {
	const samples = 100000
	sim := NewSimulator(DefaultRules(), rand.New(rand.NewSource(3)))
	misses := 0
	for i := 0; i < samples; i++ {
		result := sim.Simulate(Request{Aimed: board.Double(16), RemainingScore: 100, HitProbability: 0.65})
		if result.Hit.Equal(board.Miss) {
			misses++
		}
	}
	rate := float64(misses) / samples
	if math.Abs(rate-0.05) > 0.005 {
		t.Fatalf("miss rate = %.4f, want 0.05 ± 0.005", rate)
	}
}

// TestSimulateAccuracyOnlyForPerfectHits ensures non-perfect bands never report accuracy.
func TestSimulateAccuracyOnlyForPerfectHits(t *testing.T) {
	sim := NewSeededSimulator(DefaultRules(), 9)
	for _, aimed := range board.AllTargets() {
		for i := 0; i < 200; i++ {
			result := sim.Simulate(Request{Aimed: aimed, RemainingScore: 501, HitProbability: 0.3})
			if result.WasAccurate != (result.Band == BandPerfect) {
				t.Fatalf("aimed %v: result = %+v", aimed, result)
			}
			if result.Score != result.Hit.Value {
				t.Fatalf("aimed %v: score %d != hit value %d", aimed, result.Score, result.Hit.Value)
			}
		}
	}
}

func TestSimulateDefaultsHitProbability(t *testing.T) {
	src := &scriptedSource{t: t, floats: []float64{0.6}}
	result := NewSimulator(DefaultRules(), src).Simulate(Request{Aimed: board.Single(20), RemainingScore: 100})
	if result.Band != BandPerfect {
		t.Fatalf("band = %v, want %v", result.Band, BandPerfect)
	}
}

func TestSimulatePanicsOnUnaimableTarget(t *testing.T) {
	for _, target := range []board.Target{board.Miss, {}, {Zone: board.ZoneTriple, Number: 21}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Simulate(%+v) did not panic", target)
				}
			}()
			Simulate(Request{Aimed: target, RemainingScore: 100, HitProbability: 0.5})
		}()
	}
}

// TestSeededSimulatorIsDeterministic ensures replaying a seed reproduces throws.
func TestSeededSimulatorIsDeterministic(t *testing.T) {
	first := NewSeededSimulator(DefaultRules(), 1234)
	second := NewSeededSimulator(DefaultRules(), 1234)
	for i := 0; i < 50; i++ {
		request := Request{Aimed: board.Triple(19), RemainingScore: 120, HitProbability: 0.4}
		a, b := first.Simulate(request), second.Simulate(request)
		if a != b {
			t.Fatalf("throw %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestBandString(t *testing.T) {
	if BandPerfect.String() != "Perfect hit" || Band(99).String() != "Unknown" {
		t.Fatalf("unexpected band strings: %q %q", BandPerfect.String(), Band(99).String())
	}
}

func TestAimable(t *testing.T) {
	for _, target := range board.AllTargets() {
		if !Aimable(target) {
			t.Fatalf("Aimable(%v) = false", target)
		}
	}
	if Aimable(board.Miss) || Aimable(board.Target{}) {
		t.Fatal("miss and unspecified targets must not be aimable")
	}
}
