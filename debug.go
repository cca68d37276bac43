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

// traceEnabled gates verbose fmt.Printf tracing of PD/Crate operations. It
// mirrors the teacher's compile-time debug constant rather than a logging
// framework: this library performs no I/O by default, and flipping this to
// true is a developer-only aid, never a runtime-configurable knob.
const traceEnabled = false

// assertionsEnabled gates panics on precondition violations (misaligned PD,
// out-of-range quotient, corrupted header, a shift amount that would exceed
// 63 bits). Per spec.md §7, violating these preconditions is a programming
// error, not a recoverable condition: debug builds should catch it loudly,
// release builds may elide the checks.
const assertionsEnabled = true
