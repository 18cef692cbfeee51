// Package random provides seed generation for the dart simulators.
//
// Seeds come from crypto/rand so independent runs do not repeat, while a
// caller-supplied seed replays the exact same throws.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns seed unchanged when it is non-zero and a fresh
// crypto seed otherwise.
func ResolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}

// NewRand returns a deterministic generator for seed. The generator is not
// safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
