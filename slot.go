package probemap

type slotState uint8

const (
	// Zero value, so a freshly made table is all empty.
	slotEmpty slotState = iota
	slotFilled
	slotTombstone
)

type slot[K comparable, V any] struct {
	// Full hash of the key, kept so that rehashing never calls the hash
	// function again and probing can skip most equality checks.
	hash  uint64
	key   K
	value V
	state slotState
}

func (s *slot[K, V]) fill(h uint64, key K, value V) {
	s.hash = h
	s.key = key
	s.value = value
	s.state = slotFilled
}

// bury turns a filled slot into a tombstone, releasing its key and value.
func (s *slot[K, V]) bury() {
	var zero slot[K, V]

	*s = zero
	s.state = slotTombstone
}
