package tower

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	mrand "math/rand"
	"time"
)

// RNG is the random source used by the game rules. *math/rand.Rand
// satisfies it; tests substitute scripted sources for determinism.
type RNG interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRNG creates a math/rand source seeded from crypto/rand. Each player
// context owns its own RNG to keep per-player determinism under a seed.
func NewRNG() *mrand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// ErrNoChoice is returned by WeightedChoice when no element has a positive
// weight.
var ErrNoChoice = errors.New("weighted choice: no element with positive weight")

// WeightedChoice picks one index from weights proportionally. Zero-weight
// elements are never picked.
func WeightedChoice(rng RNG, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, ErrNoChoice
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i, nil
		}
	}
	return 0, ErrNoChoice
}
