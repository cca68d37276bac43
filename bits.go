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

import "math/bits"

// popcount64 returns the number of set bits in x.
func popcount64(x uint64) uint {
	return uint(bits.OnesCount64(x))
}

// popcount128 returns the number of set bits in the 128-bit value (lo, hi),
// lo holding bits [0,64) and hi holding bits [64,128).
func popcount128(lo, hi uint64) uint {
	return popcount64(lo) + popcount64(hi)
}

// select64 returns the position (0-indexed) of the j-th set bit of x.
// The result is unspecified if x has fewer than j+1 set bits; callers must
// ensure j < popcount64(x).
//
// This is a pdep/tzcnt-free portable fallback: it narrows the search window
// by popcount of successive halves (a broadword rank/select technique), then
// clears the j lowest set bits that remain and reports the trailing zero
// count of what's left.
func select64(x uint64, j uint) uint {
	acc := uint(0)
	if count := uint(bits.OnesCount32(uint32(x))); count <= j {
		acc += 32
		x >>= 32
		j -= count
	}
	if count := uint(bits.OnesCount16(uint16(x))); count <= j {
		acc += 16
		x >>= 16
		j -= count
	}
	if count := uint(bits.OnesCount8(uint8(x))); count <= j {
		acc += 8
		x >>= 8
		j -= count
	}
	for ; j > 0; j-- {
		x &= x - 1
	}
	return acc + uint(bits.TrailingZeros64(x))
}

// select64Alt extends select64's domain to j == -1, returning 63 in that
// case. It lets callers compute select64(x, q-1) uniformly for q >= 0
// without a special case for q == 0.
func select64Alt(x uint64, j int) uint {
	if j < 0 {
		return 63
	}
	return select64(x, uint(j))
}

// select128 returns the position (0-indexed) of the j-th set bit of the
// 128-bit value (lo, hi).
func select128(lo, hi uint64, j uint) uint {
	return select128WithPop64(lo, hi, j, popcount64(lo))
}

// select128WithPop64 is select128 but takes a precomputed popcount64(lo) to
// avoid recomputing it across multiple selects against the same word.
func select128WithPop64(lo, hi uint64, j uint, pop uint) uint {
	if j < pop {
		return select64(lo, j)
	}
	return 64 + select64(hi, j-pop)
}

// shr128 shifts the 128-bit value (lo, hi) right by n bits, n in [0,128].
func shr128(lo, hi uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return lo, hi
	case n < 64:
		return (lo >> n) | (hi << (64 - n)), hi >> n
	case n == 64:
		return hi, 0
	case n < 128:
		return hi >> (n - 64), 0
	default:
		return 0, 0
	}
}

// shl128 shifts the 128-bit value (lo, hi) left by n bits, n in [0,128].
func shl128(lo, hi uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return lo, hi
	case n < 64:
		return lo << n, (hi << n) | (lo >> (64 - n))
	case n == 64:
		return 0, lo
	case n < 128:
		return 0, lo << (n - 64)
	default:
		return 0, 0
	}
}

// lowMask128 returns the 128-bit value with the low n bits set, n in [0,128].
func lowMask128(n uint) (uint64, uint64) {
	switch {
	case n <= 0:
		return 0, 0
	case n < 64:
		return (uint64(1) << n) - 1, 0
	case n == 64:
		return ^uint64(0), 0
	case n < 128:
		return ^uint64(0), (uint64(1) << (n - 64)) - 1
	default:
		return ^uint64(0), ^uint64(0)
	}
}
