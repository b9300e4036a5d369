package probemap

import "iter"

// HashMap is an open addressing hash map with linear probing.
// The slot table is allocated on the first insert and grows whenever an
// insert would push the load factor (filled and tombstone slots over
// capacity) above the configured maximum. Deleted keys leave tombstones
// behind, they're dropped the next time the table is rebuilt.
//
// HashMap is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new empty map with a max load factor of 0.7 and a growth
// factor of 1.0. No memory is allocated until the first insert.
func New[K comparable, V any](opts ...Option[K, V]) *HashMap[K, V] {
	var m HashMap[K, V]
	m.init(opts...)

	return &m
}

// Inserts a key or overwrites its value.
// The only possible error is ErrCapacityExceeded, in which case the map
// is left unchanged.
func (m *HashMap[K, V]) Insert(key K, value V) error {
	_, err := m.set(key, value)
	return err
}

// Returns a copy of the value stored for the key.
func (m *HashMap[K, V]) Find(key K) (V, bool) {
	return m.get(key)
}

// Checks whether a key is in the map.
func (m *HashMap[K, V]) Contains(key K) bool {
	return m.lookup(key) >= 0
}

// Erases a key from the map. Returns whether the key was present.
func (m *HashMap[K, V]) Erase(key K) bool {
	return m.delete(key)
}

// Number of keys in the map.
func (m *HashMap[K, V]) Size() int {
	return m.size
}

// Number of slots in the table.
func (m *HashMap[K, V]) Capacity() int {
	return len(m.slots)
}

// Removes every key. The table keeps its capacity.
func (m *HashMap[K, V]) Clear() {
	m.Reset()
}

// Ratio of filled and tombstone slots to the capacity, 0 for an
// unallocated table.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return m.loadFactor()
}

func (m *HashMap[K, V]) MaxLoadFactor() float64 {
	return m.maxLoadFactor
}

// Sets the load factor above which inserts grow the table.
// Returns ErrInvalidConfiguration if f is not in (0, 1], keeping the
// previous value. Zero is rejected as well: no table of any size could
// hold a single key under it, so inserts would grow forever.
//
// Lowering the value below the current LoadFactor doesn't rebuild the
// table right away, the next Insert does.
func (m *HashMap[K, V]) SetMaxLoadFactor(f float64) error {
	return m.setMaxLoadFactor(f)
}

func (m *HashMap[K, V]) GrowthFactor() float64 {
	return m.growthFactor
}

// Sets the fraction of the capacity added by each growth.
// Returns ErrInvalidConfiguration if f is not in (0, 1], keeping the
// previous value.
func (m *HashMap[K, V]) SetGrowthFactor(f float64) error {
	return m.setGrowthFactor(f)
}

// Iterates over all key/value pairs in table order.
// The map must not be modified during iteration.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.state != slotFilled {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (m *HashMap[K, V]) Stats() Stats {
	return m.stats()
}
