package probemap

import "iter"

// HashSet is a set of keys built on the same table as HashMap:
// same probing, growth and tombstone rules, no values stored.
type HashSet[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](opts ...Option[K, struct{}]) *HashSet[K] {
	var hs HashSet[K]
	hs.init(opts...)

	return &hs
}

// Puts a key in the set. Returns whether the key is new.
func (hs *HashSet[K]) Put(key K) (bool, error) {
	return hs.set(key, struct{}{})
}

func (hs *HashSet[K]) Has(key K) bool {
	return hs.lookup(key) >= 0
}

func (hs *HashSet[K]) Delete(key K) bool {
	return hs.delete(key)
}

func (hs *HashSet[K]) Size() int {
	return hs.size
}

func (hs *HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range hs.slots {
			s := &hs.slots[i]
			if s.state == slotFilled && !yield(s.key) {
				return
			}
		}
	}
}

func (hs *HashSet[K]) Stats() Stats {
	return hs.stats()
}
