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

//go:build unix

package pocketset

import "golang.org/x/sys/unix"

// madviseDontNeed advises the kernel that region's pages are no longer
// needed, letting it reclaim them eagerly instead of waiting for the
// munmap that follows. Best-effort: a failure here doesn't block Close.
func madviseDontNeed(region []byte) {
	if len(region) == 0 {
		return
	}
	_ = unix.Madvise(region, unix.MADV_DONTNEED)
}
