package probemap

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
// The result can be passed to WithCapacity to allocate the whole budget
// up front.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[K, V]{})

	return int(size / sizeOfSlot)
}
