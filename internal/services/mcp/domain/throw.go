package domain

import (
	"context"
	"fmt"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/throw"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SimulateThrowInput represents the MCP tool input for one simulated dart.
type SimulateThrowInput struct {
	Aimed          string   `json:"aimed" jsonschema:"target label to aim at, such as T20, D16, S5, 25 or Bull"`
	RemainingScore int      `json:"remaining_score" jsonschema:"pending score before the dart"`
	HitProbability *float64 `json:"hit_probability,omitempty" jsonschema:"chance in [0.1,1] of landing on the aimed target; defaults to 0.65 when omitted"`
	// ExactFinishOverride defaults to true.
	ExactFinishOverride *bool       `json:"exact_finish_override,omitempty" jsonschema:"whether a dart aimed at the exact finishing double always lands; defaults to true"`
	Rng                 *RngRequest `json:"rng,omitempty" jsonschema:"optional rng configuration"`
}

// SimulateThrowResult represents the MCP tool output for a simulated dart.
type SimulateThrowResult struct {
	Aimed       TargetView `json:"aimed" jsonschema:"target that was aimed at"`
	Hit         TargetView `json:"hit" jsonschema:"target that was hit"`
	Score       int        `json:"score" jsonschema:"points scored"`
	WasAccurate bool       `json:"was_accurate" jsonschema:"whether the dart landed on the aimed target"`
	Band        string     `json:"band" jsonschema:"cascade step that resolved the throw"`
	NewScore    int        `json:"new_score" jsonschema:"remaining score minus the points scored"`
	Outcome     string     `json:"outcome" jsonschema:"CONTINUE, CHECKOUT or BUST"`
	Rng         RngResult  `json:"rng" jsonschema:"rng details"`
}

// minHitProbability mirrors the lowest hit percentage practice settings accept.
// The simulator reads zero as the default, so explicit values must not go below it.
const minHitProbability = 0.10

// Throw outcomes.
const (
	OutcomeContinue = "CONTINUE"
	OutcomeCheckout = "CHECKOUT"
	OutcomeBust     = "BUST"
)

// SimulateThrowTool defines the MCP tool schema for simulated throws.
func SimulateThrowTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulate_throw",
		Description: "Simulates one dart aimed at a target and reports where it landed",
	}
}

// SimulateThrowHandler resolves one dart with the miss cascade.
func SimulateThrowHandler() mcp.ToolHandlerFor[SimulateThrowInput, SimulateThrowResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SimulateThrowInput) (*mcp.CallToolResult, SimulateThrowResult, error) {
		aimed, err := board.ParseTarget(input.Aimed)
		if err != nil {
			return nil, SimulateThrowResult{}, err
		}
		if !throw.Aimable(aimed) {
			return nil, SimulateThrowResult{}, fmt.Errorf("%v cannot be aimed at", aimed)
		}
		if input.RemainingScore < 0 {
			return nil, SimulateThrowResult{}, fmt.Errorf("remaining score must not be negative")
		}
		probability := throw.DefaultHitProbability
		if input.HitProbability != nil {
			probability = *input.HitProbability
			if probability < minHitProbability || probability > 1 {
				return nil, SimulateThrowResult{}, fmt.Errorf("hit probability %v must be within [%v,1]", probability, minHitProbability)
			}
		}

		rng, err := resolveRng(input.Rng)
		if err != nil {
			return nil, SimulateThrowResult{}, err
		}
		rules := throw.DefaultRules()
		if input.ExactFinishOverride != nil {
			rules.ExactFinishOverride = *input.ExactFinishOverride
		}

		result := throw.NewSeededSimulator(rules, rng.SeedUsed).Simulate(throw.Request{
			Aimed:          aimed,
			RemainingScore: input.RemainingScore,
			HitProbability: probability,
		})
		newScore := input.RemainingScore - result.Score
		return nil, SimulateThrowResult{
			Aimed:       targetView(result.Aimed),
			Hit:         targetView(result.Hit),
			Score:       result.Score,
			WasAccurate: result.WasAccurate,
			Band:        result.Band.String(),
			NewScore:    newScore,
			Outcome:     throwOutcome(newScore, result.Hit),
			Rng:         rng,
		}, nil
	}
}

func throwOutcome(newScore int, hit board.Target) string {
	switch {
	case newScore == 0 && hit.IsFinishing():
		return OutcomeCheckout
	case newScore < 2:
		return OutcomeBust
	default:
		return OutcomeContinue
	}
}
