package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vojb/busted-dart/internal/darts/checkout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// CheckoutTableURI addresses the whole curated table.
	CheckoutTableURI = "checkout://table"
	// CheckoutScoreURITemplate addresses the routes for one score.
	CheckoutScoreURITemplate = "checkout://routes/{score}"

	checkoutScoreURIPrefix = "checkout://routes/"
)

// CheckoutTableEntry is one score of the checkout table resource.
type CheckoutTableEntry struct {
	Score  int         `json:"score"`
	Routes []RouteView `json:"routes"`
}

// CheckoutTablePayload is the checkout table resource body.
type CheckoutTablePayload struct {
	Entries []CheckoutTableEntry `json:"entries"`
}

// CheckoutTableResource defines the MCP resource for the checkout table.
func CheckoutTableResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "checkout_table",
		Title:       "Checkout table",
		Description: "Every curated checkout route, ordered by score",
		MIMEType:    "application/json",
		URI:         CheckoutTableURI,
	}
}

// CheckoutScoreResourceTemplate defines the MCP resource template for one score.
func CheckoutScoreResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "checkout_routes",
		Title:       "Checkout routes",
		Description: "Curated checkout routes for a single score",
		MIMEType:    "application/json",
		URITemplate: CheckoutScoreURITemplate,
	}
}

// CheckoutTableResourceHandler serves the whole table.
func CheckoutTableResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CheckoutTableURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		scores := checkout.Scores()
		payload := CheckoutTablePayload{Entries: make([]CheckoutTableEntry, 0, len(scores))}
		for _, score := range scores {
			payload.Entries = append(payload.Entries, CheckoutTableEntry{
				Score:  score,
				Routes: routeViews(checkout.OptimalCheckouts(score)),
			})
		}
		return jsonResource(uri, payload)
	}
}

// CheckoutScoreResourceHandler serves the routes for the score in the URI.
func CheckoutScoreResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("score is required; use URI format %s", CheckoutScoreURITemplate)
		}
		uri := req.Params.URI
		score, err := parseScoreFromURI(uri)
		if err != nil {
			return nil, err
		}
		routes := checkout.OptimalCheckouts(score)
		if len(routes) == 0 {
			return nil, fmt.Errorf("no checkout routes for %d", score)
		}
		return jsonResource(uri, CheckoutTableEntry{Score: score, Routes: routeViews(routes)})
	}
}

func parseScoreFromURI(uri string) (int, error) {
	if !strings.HasPrefix(uri, checkoutScoreURIPrefix) {
		return 0, fmt.Errorf("URI must use format %s", CheckoutScoreURITemplate)
	}
	score, err := strconv.Atoi(strings.TrimPrefix(uri, checkoutScoreURIPrefix))
	if err != nil {
		return 0, fmt.Errorf("parse score from URI %q: %w", uri, err)
	}
	return score, nil
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// maxCompletions mirrors the MCP cap on completion values per response.
const maxCompletions = 100

// CompleteScores lists table scores whose decimal form starts with prefix.
func CompleteScores(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	values := []string{}
	for _, score := range checkout.Scores() {
		value := strconv.Itoa(score)
		if strings.HasPrefix(value, prefix) {
			values = append(values, value)
		}
		if len(values) == maxCompletions {
			break
		}
	}
	return values
}
