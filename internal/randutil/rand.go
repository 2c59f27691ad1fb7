// Package randutil derives reproducible math/rand/v2 generators for deck shuffling.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The same seed always yields the same shuffle order.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Split derives n independent seeds from seed, one per worker. Workers seeded
// this way produce the same combined output regardless of scheduling.
func Split(seed int64, n int) []int64 {
	seeds := make([]int64, n)
	u := uint64(seed)
	for i := range seeds {
		u += goldenRatio64
		seeds[i] = int64(mix(u))
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
