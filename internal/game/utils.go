package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sort"
	"time"
)

// NewRand returns a math/rand source seeded from crypto/rand
func NewRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// fallback to the clock if crypto fails
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// sampleIndices draws k distinct indices from [0, n) uniformly, sorted
func sampleIndices(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	out := append([]int(nil), rng.Perm(n)[:k]...)
	sort.Ints(out)
	return out
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
