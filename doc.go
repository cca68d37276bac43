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

// Package pocketset implements an approximate-membership set built from
// Pocket Dictionaries (PDs), a quotient-filter-style construction used by
// fully-dynamic space-efficient dictionaries in the Bloom/Cuckoo filter
// family.
//
// # Pocket Dictionaries
//
// A PD is a fixed 512-bit block holding up to 51 8-bit remainders, grouped
// into 50 quotient buckets by a 101-bit unary-coded header. The header is a
// bitstring of exactly 50 ones and 51 zeros: each zero marks a fingerprint
// slot, each one terminates a quotient group. This lets pdFind locate a
// group's slot range with two select operations and a masked compare
// instead of a scan, and lets pdAdd insert a new fingerprint by shifting the
// header and a short run of remainder bytes.
//
// Crate is the container: a flat, contiguous array of PDs sized at
// construction from a capacity hint (bucketCount = addCount / 45, targeting
// an 88% load factor), addressed by a fixed-point multiply on the low bits
// of each key. Add inserts a key's (quotient, remainder) fingerprint into
// its bucket's PD; Contain checks for it. Contain64 and Contain128 evaluate
// a batch of keys, computing every target bucket up front and issuing a
// best-effort prefetch before running the batch of lookups, since the
// dominant cost at scale is cache-miss latency on the bucket array rather
// than the bit manipulation inside a single PD.
//
// # What this package does not do
//
// There is no spare/overflow structure: a PD that's full (51 remainders)
// rejects further Add calls for its bucket, full stop. There is no
// deletion, no resizing, no rehashing, and no serialization format beyond
// the PD byte layout itself (which is a stable, little-endian, bit-exact
// contract — see the pd type's doc comment). There is no CLI and no
// environment-variable or file-based configuration; a Crate's only surface
// is the Go API in this package.
//
// # Concurrency
//
// A Crate is not safe for concurrent Add. Concurrent Contain, Contain64,
// and Contain128 calls on an otherwise-quiescent Crate (no concurrent Add)
// are safe, since they only read shared state.
package pocketset
