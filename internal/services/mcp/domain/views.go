package domain

import (
	"fmt"

	"github.com/Vojb/busted-dart/internal/darts/board"
	"github.com/Vojb/busted-dart/internal/darts/checkout"
)

// TargetView is the MCP representation of a board target.
type TargetView struct {
	Label  string `json:"label" jsonschema:"target label such as T20, D16, Bull or 25"`
	Zone   string `json:"zone" jsonschema:"zone name"`
	Number int    `json:"number" jsonschema:"board segment, or 50/25 for the bullseye rings"`
	Value  int    `json:"value" jsonschema:"points scored"`
}

// RouteView is the MCP representation of a checkout route.
type RouteView struct {
	Darts []string `json:"darts" jsonschema:"target labels in throwing order"`
	Total int      `json:"total" jsonschema:"sum of the darts"`
}

func targetView(target board.Target) TargetView {
	return TargetView{
		Label:  target.Label,
		Zone:   target.Zone.String(),
		Number: target.Number,
		Value:  target.Value,
	}
}

func routeView(route checkout.Route) RouteView {
	return RouteView{Darts: route.Labels(), Total: route.Total()}
}

func routeViews(routes []checkout.Route) []RouteView {
	views := make([]RouteView, 0, len(routes))
	for _, route := range routes {
		views = append(views, routeView(route))
	}
	return views
}

// parseRoute parses labels into a route, rejecting unknown labels.
func parseRoute(labels []string) (checkout.Route, error) {
	route := make(checkout.Route, 0, len(labels))
	for i, label := range labels {
		target, err := board.ParseTarget(label)
		if err != nil {
			return nil, fmt.Errorf("dart %d: %w", i+1, err)
		}
		route = append(route, target)
	}
	return route, nil
}
