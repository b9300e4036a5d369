package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

type EqualFunc[K comparable] func(a, b K) bool

// Hashes with the runtime's hash for comparable types. The seed is
// random per process, so iteration order isn't reproducible.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Hashes string keys with xxhash. Unlike the default hash it is stable
// across processes.
func XXHashFunc[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}
