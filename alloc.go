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

	"github.com/edsrzf/mmap-go"
)

// Allocator provides the backing storage for a Crate's bucket array.
// Generalized from the teacher's Allocator[K,V] interface (options.go),
// dropping the generic parameters since a Crate's backing array is always
// []pd.
type Allocator interface {
	// AllocBuckets returns a slice of n PD blocks, each kBlockAlign-byte
	// aligned and zeroed to emptyPD.
	AllocBuckets(n int) []pd
	// FreeBuckets releases storage returned by a prior AllocBuckets call.
	// It is a no-op for allocators that rely on the garbage collector.
	FreeBuckets(buckets []pd)
}

// DefaultAllocator backs the bucket array with an ordinary Go allocation,
// over-allocated and sliced to a 64-byte-aligned offset. This is the
// zero-value default: New needs no special setup for ordinary use,
// mirroring the teacher's defaultAllocator[K,V].
type DefaultAllocator struct{}

// AllocBuckets implements Allocator.
func (DefaultAllocator) AllocBuckets(n int) []pd {
	if n == 0 {
		return nil
	}
	raw := make([]byte, n*kBlockBytes+kBlockAlign-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (kBlockAlign - addr%kBlockAlign) % kBlockAlign
	aligned := raw[offset : offset+uintptr(n*kBlockBytes)]
	buckets := unsafe.Slice((*pd)(unsafe.Pointer(&aligned[0])), n)
	for i := range buckets {
		buckets[i] = emptyPD
	}
	return buckets
}

// FreeBuckets implements Allocator; DefaultAllocator relies on the garbage
// collector and does nothing here.
func (DefaultAllocator) FreeBuckets(buckets []pd) {}

// MmapAllocator backs the bucket array with an anonymous mmap region rather
// than a Go slice. mmap regions are page-aligned, which trivially satisfies
// the PD's 64-byte alignment requirement, and the Crate's "allocate once,
// release once" lifecycle (spec.md §5) maps directly onto a single
// mmap/munmap pair instead of relying on GC to reclaim a potentially large
// array. FreeBuckets, called by Crate.Close, unmaps the region; using the
// Crate afterwards is a precondition violation.
type MmapAllocator struct {
	region mmap.MMap
}

// NewMmapAllocator returns a fresh MmapAllocator. Each Crate constructed
// with it should use its own instance, since the allocator tracks the one
// region it hands out.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{}
}

// AllocBuckets implements Allocator.
func (a *MmapAllocator) AllocBuckets(n int) []pd {
	if n == 0 {
		return nil
	}
	size := n * kBlockBytes
	region, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		panic(fmt.Sprintf("pocketset: mmap allocation of %d bytes failed: %v", size, err))
	}
	a.region = region
	buckets := unsafe.Slice((*pd)(unsafe.Pointer(&region[0])), n)
	for i := range buckets {
		buckets[i] = emptyPD
	}
	return buckets
}

// FreeBuckets implements Allocator: it unmaps the region, advising the OS
// first (on platforms where that's available) that the pages are no longer
// needed, matching the original C++ Crate destructor's one-shot release.
func (a *MmapAllocator) FreeBuckets(buckets []pd) {
	if a.region == nil {
		return
	}
	madviseDontNeed(a.region)
	if err := a.region.Unmap(); err != nil {
		panic(fmt.Sprintf("pocketset: munmap failed: %v", err))
	}
	a.region = nil
}
