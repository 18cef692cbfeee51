// Package checkout recommends and validates finishing routes.
package checkout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Vojb/busted-dart/internal/darts/board"
)

// Route is an ordered sequence of one to three targets.
type Route []board.Target

// Total sums the route's target values.
func (r Route) Total() int {
	total := 0
	for _, target := range r {
		total += target.Value
	}
	return total
}

// Labels returns the target labels in throw order.
func (r Route) Labels() []string {
	labels := make([]string, len(r))
	for i, target := range r {
		labels[i] = target.Label
	}
	return labels
}

// Contains reports whether target appears anywhere in the route.
func (r Route) Contains(target board.Target) bool {
	for _, candidate := range r {
		if candidate.Equal(target) {
			return true
		}
	}
	return false
}

func (r Route) String() string {
	return strings.Join(r.Labels(), " ")
}

// Validation describes whether a route checks out a score.
type Validation struct {
	// IsValid is true only when the route sums to the score and ends on a
	// double or the bull.
	IsValid          bool `json:"is_valid"`
	FinishesOnDouble bool `json:"finishes_on_double"`
	TotalScore       int  `json:"total_score"`
}

var routes = mustParseTable(routeLabels)

func mustParseTable(labels map[int][][]string) map[int][]Route {
	parsed := make(map[int][]Route, len(labels))
	for score, entries := range labels {
		for _, entry := range entries {
			route := make(Route, 0, len(entry))
			for _, label := range entry {
				route = append(route, board.MustParseTarget(label))
			}
			if route.Total() != score || !route[len(route)-1].IsFinishing() {
				panic(fmt.Sprintf("checkout: route %v does not finish %d", entry, score))
			}
			parsed[score] = append(parsed[score], route)
		}
	}
	return parsed
}

// OptimalCheckouts returns the curated routes for score in table order. The
// first route is the recommendation. Scores without an entry return an
// empty slice. The result is a copy the caller may modify.
func OptimalCheckouts(score int) []Route {
	entries := routes[score]
	out := make([]Route, len(entries))
	for i, route := range entries {
		out[i] = append(Route(nil), route...)
	}
	return out
}

// Recommended returns the first curated route for score.
func Recommended(score int) (Route, bool) {
	entries := routes[score]
	if len(entries) == 0 {
		return nil, false
	}
	return append(Route(nil), entries[0]...), true
}

// ValidateRoute checks an arbitrary route against score. It does not consult
// the curated table.
func ValidateRoute(score int, route Route) Validation {
	total := route.Total()
	finishesOnDouble := len(route) > 0 && route[len(route)-1].IsFinishing()
	return Validation{
		IsValid:          total == score && finishesOnDouble,
		FinishesOnDouble: finishesOnDouble,
		TotalScore:       total,
	}
}

// IsOptimalChoice reports whether aimed appears in any curated route for
// score. A dart aimed at any position of a standard route counts.
func IsOptimalChoice(score int, aimed board.Target) bool {
	for _, route := range routes[score] {
		if route.Contains(aimed) {
			return true
		}
	}
	return false
}

// Scores lists every score with a curated route, ascending.
func Scores() []int {
	scores := make([]int, 0, len(routes))
	for score := range routes {
		scores = append(scores, score)
	}
	sort.Ints(scores)
	return scores
}
