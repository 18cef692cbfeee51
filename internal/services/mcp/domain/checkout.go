package domain

import (
	"context"
	"fmt"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/checkout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CheckoutRoutesInput represents the MCP tool input for route lookup.
type CheckoutRoutesInput struct {
	Score int `json:"score" jsonschema:"remaining score to check out"`
}

// CheckoutRoutesResult represents the MCP tool output for route lookup.
type CheckoutRoutesResult struct {
	Score       int         `json:"score" jsonschema:"requested score"`
	Routes      []RouteView `json:"routes" jsonschema:"curated routes, recommended first"`
	Recommended *RouteView  `json:"recommended,omitempty" jsonschema:"recommended route, absent when none exists"`
	NextTarget  TargetView  `json:"next_target" jsonschema:"dart to aim at now, a setup shot when no route exists"`
}

// ValidateRouteInput represents the MCP tool input for route validation.
type ValidateRouteInput struct {
	Score int      `json:"score" jsonschema:"score the route should finish"`
	Darts []string `json:"darts" jsonschema:"target labels in throwing order"`
}

// ValidateRouteResult represents the MCP tool output for route validation.
type ValidateRouteResult struct {
	IsValid          bool `json:"is_valid" jsonschema:"whether the route finishes the score on a double or bull"`
	FinishesOnDouble bool `json:"finishes_on_double" jsonschema:"whether the last dart is a double or the bull"`
	TotalScore       int  `json:"total_score" jsonschema:"sum of the darts"`
	IsCurated        bool `json:"is_curated" jsonschema:"whether the route appears in the checkout table"`
}

// IsFinishableInput represents the MCP tool input for finishability checks.
type IsFinishableInput struct {
	Score          int   `json:"score" jsonschema:"remaining score"`
	DartsRemaining *int  `json:"darts_remaining,omitempty" jsonschema:"darts left in the visit; defaults to 3"`
	ExcludeBogeys  *bool `json:"exclude_bogeys,omitempty" jsonschema:"treat bogey numbers as unfinishable; defaults to true"`
}

// IsFinishableResult represents the MCP tool output for finishability checks.
type IsFinishableResult struct {
	Score          int  `json:"score" jsonschema:"requested score"`
	DartsRemaining int  `json:"darts_remaining" jsonschema:"darts considered"`
	IsFinishable   bool `json:"is_finishable" jsonschema:"whether the score can be finished with the darts left"`
	IsBogey        bool `json:"is_bogey" jsonschema:"whether the score is a bogey number"`
}

// CheckoutRoutesTool defines the MCP tool schema for route lookup.
func CheckoutRoutesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "checkout_routes",
		Description: "Lists the curated checkout routes for a score",
	}
}

// ValidateRouteTool defines the MCP tool schema for route validation.
func ValidateRouteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "validate_route",
		Description: "Checks whether a sequence of darts finishes a score on a double",
	}
}

// IsFinishableTool defines the MCP tool schema for finishability checks.
func IsFinishableTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "is_finishable",
		Description: "Reports whether a score can be checked out with the darts left",
	}
}

// CheckoutRoutesHandler looks up the curated routes for a score.
func CheckoutRoutesHandler() mcp.ToolHandlerFor[CheckoutRoutesInput, CheckoutRoutesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckoutRoutesInput) (*mcp.CallToolResult, CheckoutRoutesResult, error) {
		if input.Score < board.MinFinish {
			return nil, CheckoutRoutesResult{}, fmt.Errorf("score %d is below %d", input.Score, board.MinFinish)
		}
		result := CheckoutRoutesResult{
			Score:      input.Score,
			Routes:     routeViews(checkout.OptimalCheckouts(input.Score)),
			NextTarget: targetView(checkout.NextTarget(input.Score)),
		}
		if route, ok := checkout.Recommended(input.Score); ok {
			view := routeView(route)
			result.Recommended = &view
		}
		return nil, result, nil
	}
}

// ValidateRouteHandler validates a route independently of the table.
func ValidateRouteHandler() mcp.ToolHandlerFor[ValidateRouteInput, ValidateRouteResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateRouteInput) (*mcp.CallToolResult, ValidateRouteResult, error) {
		if len(input.Darts) > board.DartsPerVisit {
			return nil, ValidateRouteResult{}, fmt.Errorf("a route has at most %d darts", board.DartsPerVisit)
		}
		route, err := parseRoute(input.Darts)
		if err != nil {
			return nil, ValidateRouteResult{}, err
		}
		validation := checkout.ValidateRoute(input.Score, route)
		return nil, ValidateRouteResult{
			IsValid:          validation.IsValid,
			FinishesOnDouble: validation.FinishesOnDouble,
			TotalScore:       validation.TotalScore,
			IsCurated:        isCurated(input.Score, route),
		}, nil
	}
}

// IsFinishableHandler checks whether a score can be finished.
func IsFinishableHandler() mcp.ToolHandlerFor[IsFinishableInput, IsFinishableResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input IsFinishableInput) (*mcp.CallToolResult, IsFinishableResult, error) {
		darts := board.DartsPerVisit
		if input.DartsRemaining != nil {
			darts = *input.DartsRemaining
		}
		if darts < 0 || darts > board.DartsPerVisit {
			return nil, IsFinishableResult{}, fmt.Errorf("darts remaining must be within [0,%d]", board.DartsPerVisit)
		}
		rules := boardRules(input.ExcludeBogeys)
		return nil, IsFinishableResult{
			Score:          input.Score,
			DartsRemaining: darts,
			IsFinishable:   rules.IsFinishable(input.Score, darts),
			IsBogey:        board.IsBogey(input.Score),
		}, nil
	}
}

func isCurated(score int, route checkout.Route) bool {
	for _, curated := range checkout.OptimalCheckouts(score) {
		if len(curated) != len(route) {
			continue
		}
		match := true
		for i := range curated {
			if !curated[i].Equal(route[i]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// boardRules applies an optional bogey toggle over the default rules.
func boardRules(excludeBogeys *bool) board.Rules {
	rules := board.DefaultRules()
	if excludeBogeys != nil {
		rules.ExcludeBogeys = *excludeBogeys
	}
	return rules
}
