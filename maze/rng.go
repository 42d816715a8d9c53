package maze

import "math/rand"

// defaultSeed is used when callers pass seed == 0 or a nil RNG.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. A zero seed selects the
// default seed.
//
// math/rand.Rand is not goroutine-safe; do not share one across goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleAdjacencies performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n).
func shuffleAdjacencies(a []Adjacency, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
