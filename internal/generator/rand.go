package generator

import "math/rand"

// NewRand returns a seedable source so tests can replay a tick sequence.
// Pass 0 to let math/rand pick its own seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(seed))
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}
