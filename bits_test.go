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
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect64(t *testing.T) {
	testCases := []struct {
		x        uint64
		j        uint
		expected uint
	}{
		{0x1, 0, 0},
		{0x2, 0, 1},
		{0x3, 0, 0},
		{0x3, 1, 1},
		{0x8000000000000000, 0, 63},
		{0xFFFFFFFFFFFFFFFF, 63, 63},
		{0xFFFFFFFFFFFFFFFF, 0, 0},
	}
	for _, c := range testCases {
		require.EqualValues(t, c.expected, select64(c.x, c.j))
	}
}

func TestSelect64RandomAgreesWithScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := rng.Uint64()
		pop := bits.OnesCount64(x)
		if pop == 0 {
			continue
		}
		j := uint(rng.Intn(pop))

		// Reference: scan bit positions in order, counting set bits.
		want := uint(0)
		seen := uint(0)
		for pos := uint(0); pos < 64; pos++ {
			if x&(uint64(1)<<pos) != 0 {
				if seen == j {
					want = pos
					break
				}
				seen++
			}
		}
		require.EqualValues(t, want, select64(x, j), "x=%#x j=%d", x, j)
	}
}

func TestSelect64Alt(t *testing.T) {
	require.EqualValues(t, 63, select64Alt(0xFF, -1))
	require.EqualValues(t, 0, select64Alt(0x1, 0))
	require.EqualValues(t, select64(0xFF, 3), select64Alt(0xFF, 3))
}

func TestSelect128(t *testing.T) {
	// All ones in lo, one bit in hi: selecting past lo's 64 ones should
	// land in hi.
	lo := uint64(0xFFFFFFFFFFFFFFFF)
	hi := uint64(0x1) // bit 64 of the 128-bit value
	require.EqualValues(t, 0, select128(lo, hi, 0))
	require.EqualValues(t, 63, select128(lo, hi, 63))
	require.EqualValues(t, 64, select128(lo, hi, 64))
}

func TestSelect128WithPop64MatchesSelect128(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		lo := rng.Uint64()
		hi := rng.Uint64() & ((uint64(1) << 37) - 1)
		pop := popcount128(lo, hi)
		if pop == 0 {
			continue
		}
		j := uint(rng.Intn(int(pop)))
		require.EqualValues(t, select128(lo, hi, j), select128WithPop64(lo, hi, j, popcount64(lo)))
	}
}

func TestPopcount128(t *testing.T) {
	require.EqualValues(t, 0, popcount128(0, 0))
	require.EqualValues(t, 64, popcount128(^uint64(0), 0))
	require.EqualValues(t, 128, popcount128(^uint64(0), ^uint64(0)))
}

func TestShr128AndShl128RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		lo := rng.Uint64()
		hi := rng.Uint64()
		n := uint(rng.Intn(129))

		slo, shi := shr128(lo, hi, n)
		blo, bhi := shl128(slo, shi, n)

		// Shifting right by n then left by n clears the low n bits and
		// otherwise reproduces the original value.
		clearedLo, clearedHi := lo, hi
		cmLo, cmHi := lowMask128(n)
		clearedLo &^= cmLo
		clearedHi &^= cmHi
		require.Equal(t, clearedLo, blo)
		require.Equal(t, clearedHi, bhi)
	}
}

func TestLowMask128(t *testing.T) {
	lo, hi := lowMask128(0)
	require.EqualValues(t, 0, lo)
	require.EqualValues(t, 0, hi)

	lo, hi = lowMask128(1)
	require.EqualValues(t, 1, lo)
	require.EqualValues(t, 0, hi)

	lo, hi = lowMask128(64)
	require.EqualValues(t, ^uint64(0), lo)
	require.EqualValues(t, 0, hi)

	lo, hi = lowMask128(101)
	require.EqualValues(t, ^uint64(0), lo)
	require.EqualValues(t, (uint64(1)<<37)-1, hi)

	lo, hi = lowMask128(128)
	require.EqualValues(t, ^uint64(0), lo)
	require.EqualValues(t, ^uint64(0), hi)
}
