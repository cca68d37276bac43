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

import "github.com/cespare/xxhash/v2"

// bucketIndex maps the low 32 bits of k uniformly into [0, bucketCount)
// using a fixed-point multiply, per spec.md §3.
func bucketIndex(k uint64, bucketCount uint64) uint64 {
	return ((k & 0xFFFFFFFF) * bucketCount) >> 32
}

// quotient maps the top 24 bits of k into [0, 50) using a fixed-point
// multiply, per spec.md §3.
func quotient(k uint64) uint8 {
	return uint8(((k >> 40) * kGroups) >> 24)
}

// remainder extracts the one-byte remainder from k, per spec.md §3.
func remainder(k uint64) uint8 {
	return uint8((k >> 32) & 0xFF)
}

// KeyFromBytes hashes an arbitrary byte string into the uniformly
// distributed uint64 key space Crate expects. spec.md §1 assumes callers
// already hold such a key and puts tuning of the hash family out of scope;
// this helper exists only to give callers whose natural key is a byte
// string a documented way to produce one. It never participates in
// pd_find/pd_add themselves.
func KeyFromBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
