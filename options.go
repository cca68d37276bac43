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

// Option configures a Crate at construction time. Generalized from the
// teacher's option[K,V] interface (options.go): one interface with a single
// apply method, one concrete type per knob.
type Option interface {
	apply(c *Crate)
}

type allocatorOption struct {
	allocator Allocator
}

func (o allocatorOption) apply(c *Crate) {
	c.allocator = o.allocator
}

// WithAllocator selects the Allocator a Crate uses for its bucket array.
// The default, used when no WithAllocator option is given, is
// DefaultAllocator{}.
func WithAllocator(allocator Allocator) Option {
	return allocatorOption{allocator}
}

type cpuFeaturesOption struct {
	features CPUFeatures
}

func (o cpuFeaturesOption) apply(c *Crate) {
	c.features = o.features
}

// WithCPUFeatures overrides the auto-detected CPUFeatures a Crate uses to
// choose its PD byte-compare strategy. Primarily useful for tests that want
// to force the wide or narrow path regardless of the host CPU.
func WithCPUFeatures(features CPUFeatures) Option {
	return cpuFeaturesOption{features}
}
