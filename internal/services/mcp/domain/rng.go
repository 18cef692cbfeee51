package domain

import (
	"fmt"

	"github.com/Vojb/busted-dart/internal/random"
)

// Seed sources reported back to clients.
const (
	SeedSourceClient = "CLIENT"
	SeedSourceServer = "SERVER"
)

// RngRequest represents optional RNG configuration for deterministic throws.
type RngRequest struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic results"`
}

// RngResult represents the RNG details used for a call.
type RngResult struct {
	SeedUsed   int64  `json:"seed_used" jsonschema:"seed value used by the server"`
	SeedSource string `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
}

// resolveRng picks the client seed when present and a fresh one otherwise.
func resolveRng(request *RngRequest) (RngResult, error) {
	if request != nil && request.Seed != nil {
		return RngResult{SeedUsed: *request.Seed, SeedSource: SeedSourceClient}, nil
	}
	seed, err := random.NewSeed()
	if err != nil {
		return RngResult{}, fmt.Errorf("generate seed: %w", err)
	}
	return RngResult{SeedUsed: seed, SeedSource: SeedSourceServer}, nil
}
