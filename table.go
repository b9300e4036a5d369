package probemap

import (
	"hash/maphash"
	"math"

	"github.com/pkg/errors"
)

const (
	defaultCapacity      = 8
	defaultMaxCapacity   = math.MaxInt32
	defaultMaxLoadFactor = 0.7
	defaultGrowthFactor  = 1.0
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
)

type table[K comparable, V any] struct {
	slots []slot[K, V]

	// Filled slots.
	size int
	// Filled and tombstone slots, i.e. everything that is not empty.
	used int

	initialCapacity int
	maxCapacity     int
	maxLoadFactor   float64
	growthFactor    float64

	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default key equality, which is ==.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

// Sets the number of slots allocated by the first insert.
// Non-positive values keep the default of 8.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		if capacity > 0 {
			t.initialCapacity = capacity
		}
	}
}

// Limits how far the table may grow. Inserts that would need
// a larger table fail with ErrCapacityExceeded.
func WithMaxCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		if capacity > 0 {
			t.maxCapacity = capacity
		}
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.initialCapacity = defaultCapacity
	t.maxCapacity = defaultMaxCapacity
	t.maxLoadFactor = defaultMaxLoadFactor
	t.growthFactor = defaultGrowthFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.initialCapacity > t.maxCapacity {
		t.initialCapacity = t.maxCapacity
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

func (t *table[K, V]) equal(a, b K) bool {
	if t.equalFunc != nil {
		return t.equalFunc(a, b)
	}

	return a == b
}

// lookup returns the index of the filled slot holding key, or -1.
func (t *table[K, V]) lookup(key K) int {
	capacity := len(t.slots)
	if capacity == 0 || t.size == 0 {
		return -1
	}

	h := t.hashFunc(key)
	idx := int(h % uint64(capacity))

	for range capacity {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotFilled:
			if s.hash == h && t.equal(s.key, key) {
				return idx
			}
		}

		// Tombstones are skipped, they never end a chain.
		idx++
		if idx == capacity {
			idx = 0
		}
	}

	return -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	if idx := t.lookup(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	return t.emptyV, false
}

// probe walks the chain of key's home index. It returns the index of the
// slot already holding the key (found == true), or otherwise the slot the
// key should be placed in: the first tombstone met, else the empty slot
// that ended the chain. target is -1 when a full circle found neither.
func (t *table[K, V]) probe(key K, h uint64) (target int, found bool) {
	capacity := len(t.slots)
	idx := int(h % uint64(capacity))
	target = -1

	for range capacity {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if target < 0 {
				target = idx
			}
			return target, false
		case slotTombstone:
			if target < 0 {
				target = idx
			}
		case slotFilled:
			if s.hash == h && t.equal(s.key, key) {
				return idx, true
			}
		}

		idx++
		if idx == capacity {
			idx = 0
		}
	}

	return target, false
}

// set inserts or overwrites key. Returns whether the key is new.
func (t *table[K, V]) set(key K, value V) (bool, error) {
	h := t.hashFunc(key)

	for {
		if len(t.slots) == 0 {
			if err := t.rehash(t.initialCapacity); err != nil {
				return false, err
			}
		}

		// Lowering the max load factor can leave the table above it.
		// Overwrites and tombstone reuse don't place into empty slots,
		// so they'd never catch up on their own.
		if t.overloaded(t.used) {
			if err := t.makeRoom(); err != nil {
				return false, err
			}

			continue
		}

		target, found := t.probe(key, h)
		if found {
			t.slots[target].value = value
			return false, nil
		}

		if target >= 0 {
			s := &t.slots[target]

			switch {
			case s.state == slotTombstone:
				// Already counted in used.
				s.fill(h, key, value)
				t.size++

				return true, nil
			case !t.overloaded(t.used + 1):
				s.fill(h, key, value)
				t.size++
				t.used++

				return true, nil
			}
		}

		// We need room for a new slot, table needs rehashing.
		if err := t.makeRoom(); err != nil {
			return false, err
		}
	}
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.lookup(key)
	if idx < 0 {
		return false
	}

	// Slot stays non-empty to preserve the probe chain
	t.slots[idx].bury()
	t.size--

	return true
}

func (t *table[K, V]) overloaded(used int) bool {
	return float64(used)/float64(len(t.slots)) > t.maxLoadFactor
}

// makeRoom rebuilds the table so that one more slot can be filled.
// Dropping tombstones at the current capacity is preferred when that
// alone is enough, otherwise the table grows.
func (t *table[K, V]) makeRoom() error {
	capacity := len(t.slots)
	if t.used > t.size && !t.overloaded(t.size+1) {
		return t.rehash(capacity)
	}

	next, err := t.nextCapacity()
	if err != nil {
		return err
	}

	return t.rehash(next)
}

func (t *table[K, V]) nextCapacity() (int, error) {
	capacity := len(t.slots)
	if capacity >= t.maxCapacity {
		return 0, errors.Wrapf(ErrCapacityExceeded, "table already has %d slots", capacity)
	}

	step := int(math.Floor(float64(capacity) * t.growthFactor))
	if step < 1 {
		step = 1
	}

	if step > t.maxCapacity-capacity {
		return t.maxCapacity, nil
	}

	return capacity + step, nil
}

// rehash moves every filled slot into a freshly allocated table of the
// given capacity. The old table is only replaced once the new one is
// complete.
func (t *table[K, V]) rehash(capacity int) error {
	if capacity <= 0 || capacity < t.size {
		return errors.Wrapf(ErrCapacityExceeded, "%d slots can't hold %d entries", capacity, t.size)
	}

	slots := make([]slot[K, V], capacity)

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotFilled {
			continue
		}

		idx := int(s.hash % uint64(capacity))
		for slots[idx].state != slotEmpty {
			idx++
			if idx == capacity {
				idx = 0
			}
		}

		slots[idx] = *s
	}

	t.slots = slots
	t.used = t.size

	return nil
}

func (t *table[K, V]) loadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}

	return float64(t.used) / float64(len(t.slots))
}

func (t *table[K, V]) setMaxLoadFactor(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "max load factor %v is outside (0, 1]", f)
	}

	t.maxLoadFactor = f
	return nil
}

func (t *table[K, V]) setGrowthFactor(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "growth factor %v is outside (0, 1]", f)
	}

	t.growthFactor = f
	return nil
}

func (t *table[K, V]) Reset() {
	clear(t.slots)

	t.size = 0
	t.used = 0
}

// Compact drops all tombstones, keeping the current capacity.
func (t *table[K, V]) Compact() {
	if t.used == t.size {
		return
	}

	// Can't fail, the capacity holds size entries already.
	_ = t.rehash(len(t.slots))
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Tombstones: t.used - t.size,
		Capacity:   len(t.slots),
		LoadFactor: t.loadFactor(),
	}

	if s.Capacity > 0 {
		s.TombstonesCapacityRatio = float32(s.Tombstones) / float32(s.Capacity)
	}

	if s.Size > 0 {
		s.TombstonesSizeRatio = float32(s.Tombstones) / float32(s.Size)
	}

	return s
}
