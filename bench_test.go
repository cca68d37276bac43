package pocketset

import (
	"math/rand"
	"testing"
)

func genBenchKeys(seed int64, n int) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	return keys
}

func BenchmarkAdd(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Uint64", benchAddRuntimeMap)
	})
	b.Run("impl=crate", func(b *testing.B) {
		b.Run("t=Uint64", benchAddCrate)
	})
}

func BenchmarkContainHit(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Uint64", benchContainHitRuntimeMap)
	})
	b.Run("impl=crate", func(b *testing.B) {
		b.Run("t=Uint64", benchContainHitCrate)
	})
}

func BenchmarkContainMiss(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Uint64", benchContainMissRuntimeMap)
	})
	b.Run("impl=crate", func(b *testing.B) {
		b.Run("t=Uint64", benchContainMissCrate)
	})
}

func BenchmarkContain64(b *testing.B) {
	b.Run("impl=crate", func(b *testing.B) {
		b.Run("t=Uint64", benchContain64Crate)
	})
}

func benchAddRuntimeMap(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	m := make(map[uint64]struct{}, b.N)
	b.ResetTimer()
	for _, k := range keys {
		m[k] = struct{}{}
	}
}

func benchAddCrate(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	c := New(len(keys)*targetLoadDivisor/40 + targetLoadDivisor)
	defer c.Close()
	b.ResetTimer()
	for _, k := range keys {
		c.Add(k)
	}
}

func benchContainHitRuntimeMap(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	m := make(map[uint64]struct{}, b.N)
	for _, k := range keys {
		m[k] = struct{}{}
	}
	b.ResetTimer()
	var ok bool
	for _, k := range keys {
		_, ok = m[k]
	}
	_ = ok
}

func benchContainHitCrate(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	c := New(len(keys)*targetLoadDivisor/40 + targetLoadDivisor)
	defer c.Close()
	for _, k := range keys {
		c.Add(k)
	}
	b.ResetTimer()
	var ok bool
	for _, k := range keys {
		ok = c.Contain(k)
	}
	_ = ok
}

func benchContainMissRuntimeMap(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	miss := genBenchKeys(2, b.N)
	m := make(map[uint64]struct{}, b.N)
	for _, k := range keys {
		m[k] = struct{}{}
	}
	b.ResetTimer()
	var ok bool
	for _, k := range miss {
		_, ok = m[k]
	}
	_ = ok
}

func benchContainMissCrate(b *testing.B) {
	keys := genBenchKeys(1, b.N)
	miss := genBenchKeys(2, b.N)
	c := New(len(keys)*targetLoadDivisor/40 + targetLoadDivisor)
	defer c.Close()
	for _, k := range keys {
		c.Add(k)
	}
	b.ResetTimer()
	var ok bool
	for _, k := range miss {
		ok = c.Contain(k)
	}
	_ = ok
}

func benchContain64Crate(b *testing.B) {
	const addCount = 1 << 16
	c := New(addCount)
	defer c.Close()
	keys := genBenchKeys(3, addCount*88/100)
	for _, k := range keys {
		c.Add(k)
	}
	var batch [64]uint64
	copy(batch[:], keys)
	b.ResetTimer()
	var mask uint64
	for i := 0; i < b.N; i++ {
		mask = c.Contain64(&batch)
	}
	_ = mask
}
