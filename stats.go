package probemap

type Stats struct {
	Size                    int
	Tombstones              int
	Capacity                int
	LoadFactor              float64
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
