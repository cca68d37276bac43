// Copyright 2026 The Pocketset Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pocketset

import (
	"fmt"
	"unsafe"
)

// targetLoadDivisor is the denominator spec.md §3 uses to size a Crate's
// bucket count from a capacity hint: bucketCount = addCount / 45, targeting
// a load factor of 45/51 ≈ 88%.
const targetLoadDivisor = 45

// Crate is a flat array of Pocket Dictionaries addressed by a key-derived
// bucket index. It owns its bucket array exclusively: no individual PD is
// ever moved or reallocated after construction, and the whole array is
// released in one step by Close. A Crate is not safe for concurrent Add;
// concurrent Contain* calls on an otherwise-quiescent Crate are safe. See
// spec.md §4.4/§5.
type Crate struct {
	buckets     []pd
	bucketCount uint64
	allocator   Allocator
	features    CPUFeatures
}

// New constructs a Crate sized for addCount insertions, per spec.md §3's
// bucketCount = addCount / 45. It is a precondition violation to size a
// Crate too small to hold even one bucket; New panics in that case
// regardless of assertionsEnabled; since the Crate would otherwise be
// unusable, this is not a soft-failure path.
func New(addCount int, opts ...Option) *Crate {
	bucketCount := uint64(addCount) / targetLoadDivisor
	if bucketCount == 0 {
		panic(fmt.Sprintf("pocketset: addCount %d too small to form a single bucket (need >= %d)", addCount, targetLoadDivisor))
	}

	c := &Crate{
		bucketCount: bucketCount,
		allocator:   DefaultAllocator{},
		features:    defaultCPUFeatures,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	c.buckets = c.allocator.AllocBuckets(int(bucketCount))
	return c
}

// Close releases the Crate's bucket array in one step. It is invalid to use
// a Crate after Close; Close itself does not need to be called for the
// default, GC-backed allocator but must be called for allocators (like
// MmapAllocator) that hold OS resources.
func (c *Crate) Close() {
	c.allocator.FreeBuckets(c.buckets)
	c.buckets = nil
}

// decompose splits k into its (bucket index, quotient, remainder) triple,
// per spec.md §3's exact bit formulas.
func (c *Crate) decompose(k uint64) (bucket uint64, q uint8, r uint8) {
	return bucketIndex(k, c.bucketCount), quotient(k), remainder(k)
}

// Add inserts k, returning false if k's target bucket is already full
// (fill == 51). The Crate never relocates or spare-overflows a rejected
// key; the caller decides whether that's fatal for its workload.
func (c *Crate) Add(k uint64) bool {
	b, q, r := c.decompose(k)
	if assertionsEnabled {
		assertf(b < c.bucketCount, "Crate.Add: bucket %d out of range [0,%d)", b, c.bucketCount)
	}
	ok := pdAdd(q, r, &c.buckets[b])
	if traceEnabled {
		fmt.Printf("Crate.Add(k=%#016x): bucket=%d q=%d r=%#02x ok=%v\n", k, b, q, r, ok)
	}
	return ok
}

// Contain reports whether k's fingerprint is present in its target bucket.
// A false positive is possible only when another key's fingerprint in the
// same bucket collides with k's.
func (c *Crate) Contain(k uint64) bool {
	b, q, r := c.decompose(k)
	if assertionsEnabled {
		assertf(b < c.bucketCount, "Crate.Contain: bucket %d out of range [0,%d)", b, c.bucketCount)
	}
	return pdFind(q, r, &c.buckets[b], c.features)
}

// prefetch issues a best-effort cache-line-priming read of the bucket at
// index b. Go has no portable prefetch intrinsic; a read of the bucket's
// first byte is the standard idiom for warming a cache line from pure Go,
// and is advisory only — correctness never depends on it (spec.md §4.4).
func (c *Crate) prefetch(b uint64) {
	p := &c.buckets[b]
	_ = *(*byte)(unsafe.Pointer(p))
}

// Contain64 evaluates 64 keys, computing all 64 bucket indices first,
// issuing a prefetch for each, and then running 64 pdFinds, per spec.md
// §4.4's two-phase batch protocol. Bit i of the result is Contain(keys[i]).
func (c *Crate) Contain64(keys *[64]uint64) uint64 {
	var buckets [64]uint64
	var quots [64]uint8
	var rems [64]uint8
	for i, k := range keys {
		buckets[i], quots[i], rems[i] = c.decompose(k)
	}
	for i := range keys {
		if assertionsEnabled {
			assertf(buckets[i] < c.bucketCount, "Crate.Contain64: bucket %d out of range [0,%d)", buckets[i], c.bucketCount)
		}
		c.prefetch(buckets[i])
	}
	var result uint64
	for i := range keys {
		if pdFind(quots[i], rems[i], &c.buckets[buckets[i]], c.features) {
			result |= uint64(1) << uint(i)
		}
	}
	return result
}

// contain64Interleaved is the alternate Contain64 form spec.md §4.4
// describes: it interleaves prefetch issuance with index computation
// instead of running the two as separate passes. It must produce results
// identical to Contain64 for any input; kept unexported and exercised from
// tests since production code has no reason to prefer one layout over the
// other without a profiler backing that decision.
func (c *Crate) contain64Interleaved(keys *[64]uint64) uint64 {
	var buckets [64]uint64
	var quots [64]uint8
	var rems [64]uint8
	for i, k := range keys {
		buckets[i], quots[i], rems[i] = c.decompose(k)
		if assertionsEnabled {
			assertf(buckets[i] < c.bucketCount, "Crate.contain64Interleaved: bucket %d out of range [0,%d)", buckets[i], c.bucketCount)
		}
		c.prefetch(buckets[i])
	}
	var result uint64
	for i := range keys {
		if pdFind(quots[i], rems[i], &c.buckets[buckets[i]], c.features) {
			result |= uint64(1) << uint(i)
		}
	}
	return result
}

// Contain128 evaluates 128 keys using the same two-phase protocol as
// Contain64. The logical 128-bit result mask is represented as [2]uint64 —
// low half then high half, since Go has no native 128-bit integer type —
// so bit i of the logical mask is bit i%64 of result[i/64].
func (c *Crate) Contain128(keys *[128]uint64) [2]uint64 {
	var buckets [128]uint64
	var quots [128]uint8
	var rems [128]uint8
	for i, k := range keys {
		buckets[i], quots[i], rems[i] = c.decompose(k)
	}
	for i := range keys {
		if assertionsEnabled {
			assertf(buckets[i] < c.bucketCount, "Crate.Contain128: bucket %d out of range [0,%d)", buckets[i], c.bucketCount)
		}
		c.prefetch(buckets[i])
	}
	var result [2]uint64
	for i := range keys {
		if pdFind(quots[i], rems[i], &c.buckets[buckets[i]], c.features) {
			result[i/64] |= uint64(1) << uint(i%64)
		}
	}
	return result
}

// SizeInBytes returns the total size of the Crate's bucket array.
func (c *Crate) SizeInBytes() uint64 {
	return kBlockBytes * c.bucketCount
}

// BucketCount returns the number of PD buckets the Crate was constructed
// with.
func (c *Crate) BucketCount() uint64 {
	return c.bucketCount
}
