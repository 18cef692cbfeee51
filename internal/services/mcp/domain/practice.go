package domain

import (
	"context"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/checkout"
	"github.com/Vojb/busted-dart/internal/random"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RandomCheckoutInput represents the MCP tool input for drawing a practice score.
type RandomCheckoutInput struct {
	Difficulty    string      `json:"difficulty,omitempty" jsonschema:"easy (2-40), medium (41-120), hard (121-170) or random"`
	ExcludeBogeys *bool       `json:"exclude_bogeys,omitempty" jsonschema:"skip bogey numbers; defaults to true"`
	Rng           *RngRequest `json:"rng,omitempty" jsonschema:"optional rng configuration"`
}

// RandomCheckoutResult represents the MCP tool output for a drawn practice score.
type RandomCheckoutResult struct {
	Score       int        `json:"score" jsonschema:"starting score to practise"`
	Difficulty  string     `json:"difficulty" jsonschema:"difficulty band the score was drawn from"`
	Recommended *RouteView `json:"recommended,omitempty" jsonschema:"recommended route for the score"`
	Rng         RngResult  `json:"rng" jsonschema:"rng details"`
}

// BoardTargetsInput represents the MCP tool input for listing targets.
type BoardTargetsInput struct {
	Zone string `json:"zone,omitempty" jsonschema:"optional zone code filter: S, D, T, BULL or OUTER_BULL"`
}

// BoardTargetsResult represents the MCP tool output for listing targets.
type BoardTargetsResult struct {
	Targets []TargetView `json:"targets" jsonschema:"aimable targets"`
	// Numbers is the clockwise segment order starting from the top.
	Numbers []int `json:"numbers" jsonschema:"board numbers clockwise from the top"`
}

// RandomCheckoutTool defines the MCP tool schema for drawing a practice score.
func RandomCheckoutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_checkout",
		Description: "Draws a finishable starting score from a difficulty band",
	}
}

// BoardTargetsTool defines the MCP tool schema for listing targets.
func BoardTargetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "board_targets",
		Description: "Lists every target a dart can be aimed at",
	}
}

// RandomCheckoutHandler draws a starting score.
func RandomCheckoutHandler() mcp.ToolHandlerFor[RandomCheckoutInput, RandomCheckoutResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RandomCheckoutInput) (*mcp.CallToolResult, RandomCheckoutResult, error) {
		band, err := board.ParseBand(input.Difficulty)
		if err != nil {
			return nil, RandomCheckoutResult{}, err
		}
		rng, err := resolveRng(input.Rng)
		if err != nil {
			return nil, RandomCheckoutResult{}, err
		}

		score := boardRules(input.ExcludeBogeys).RandomFinishableScore(band, random.NewRand(rng.SeedUsed))
		result := RandomCheckoutResult{
			Score:      score,
			Difficulty: band.String(),
			Rng:        rng,
		}
		if route, ok := checkout.Recommended(score); ok {
			view := routeView(route)
			result.Recommended = &view
		}
		return nil, result, nil
	}
}

// BoardTargetsHandler lists the aimable targets.
func BoardTargetsHandler() mcp.ToolHandlerFor[BoardTargetsInput, BoardTargetsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BoardTargetsInput) (*mcp.CallToolResult, BoardTargetsResult, error) {
		var filter *board.Zone
		if input.Zone != "" {
			zone, err := board.ParseZone(input.Zone)
			if err != nil {
				return nil, BoardTargetsResult{}, err
			}
			filter = &zone
		}

		targets := make([]TargetView, 0, 62)
		for _, target := range board.AllTargets() {
			if filter != nil && target.Zone != *filter {
				continue
			}
			targets = append(targets, targetView(target))
		}
		return nil, BoardTargetsResult{Targets: targets, Numbers: board.Numbers()}, nil
	}
}
