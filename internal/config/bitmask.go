// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

// Flags are the flag types a [BitMask] can hold. Each flag is a single bit,
// combined values like [AllRules] are allowed in [NewBitMask] and [BitMask.Set].
type Flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of flags of type T. The zero value is empty.
type BitMask[T Flags] struct {
	bits T
}

// NewBitMask returns a set containing flags.
func NewBitMask[T Flags](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.bits |= flag
	}

	return b
}

// Set adds or removes flag.
func (b *BitMask[T]) Set(flag T, enabled bool) {
	*b = b.With(flag, enabled)
}

// With returns a copy of b with flag added or removed.
func (b BitMask[T]) With(flag T, enabled bool) BitMask[T] {
	if enabled {
		b.bits |= flag
	} else {
		b.bits &^= flag
	}

	return b
}

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.bits&flag != 0
}
