package bstset

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var sizes = []int{
	1 << 10,
	1 << 16,
}

func BenchmarkInsert_Random(b *testing.B) {
	b.Run("variant=bstset", benchSimulateLoad(func(b *testing.B, keys []int) {
		for i := 0; i < b.N; i++ {
			s := New[int]()
			for _, k := range keys {
				s.Insert(k)
			}
		}
	}))

	b.Run("variant=btree", benchSimulateLoad(func(b *testing.B, keys []int) {
		for i := 0; i < b.N; i++ {
			tr := btree.NewOrderedG[int](32)
			for _, k := range keys {
				tr.ReplaceOrInsert(k)
			}
		}
	}))

	b.Run("variant=llrb", benchSimulateLoad(func(b *testing.B, keys []int) {
		for i := 0; i < b.N; i++ {
			tr := llrb.New()
			for _, k := range keys {
				tr.ReplaceOrInsert(llrb.Int(k))
			}
		}
	}))

	b.Run("variant=gods", benchSimulateLoad(func(b *testing.B, keys []int) {
		for i := 0; i < b.N; i++ {
			s := treeset.NewWith(utils.IntComparator)
			for _, k := range keys {
				s.Add(k)
			}
		}
	}))
}

func BenchmarkAscend(b *testing.B) {
	b.Run("variant=bstset", benchSimulateLoad(func(b *testing.B, keys []int) {
		s := New[int]()
		for _, k := range keys {
			s.Insert(k)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for range s.All() {
			}
		}
	}))

	b.Run("variant=btree", benchSimulateLoad(func(b *testing.B, keys []int) {
		tr := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tr.ReplaceOrInsert(k)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.Ascend(func(int) bool { return true })
		}
	}))

	b.Run("variant=llrb", benchSimulateLoad(func(b *testing.B, keys []int) {
		tr := llrb.New()
		for _, k := range keys {
			tr.ReplaceOrInsert(llrb.Int(k))
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.AscendGreaterOrEqual(tr.Min(), func(llrb.Item) bool { return true })
		}
	}))
}

func BenchmarkContains(b *testing.B) {
	b.Run("variant=bstset", benchSimulateLoad(func(b *testing.B, keys []int) {
		s := New[int]()
		for _, k := range keys {
			s.Insert(k)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Contains(keys[i%len(keys)])
		}
	}))

	b.Run("variant=btree", benchSimulateLoad(func(b *testing.B, keys []int) {
		tr := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tr.ReplaceOrInsert(k)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = tr.Has(keys[i%len(keys)])
		}
	}))
}

func benchSimulateLoad(benchFunc func(b *testing.B, keys []int)) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				rng := rand.New(rand.NewSource(0))
				keys := make([]int, size)
				for i := range keys {
					keys[i] = rng.Int()
				}

				benchFunc(b, keys)
			})
		}
	}
}
