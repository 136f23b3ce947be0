package lsystem

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// newRNG builds the RNG used for weighted rule sampling. A seed of 0
// requests a non-reproducible entropy-seeded source; any other seed gives a
// reproducible stream. The 0-means-random convention is part of the public
// Generate contract.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	// Non-cryptographic PRNG is intentional for deterministic generation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
