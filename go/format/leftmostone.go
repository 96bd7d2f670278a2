/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:build !purego

package format

import "math/bits"

// leftmostOnePos64 returns the position of the most significant set bit in
// word, measured from the least significant bit. word must not be 0.
//
// bits.LeadingZeros64 compiles to the native count-leading-zeros instruction
// on every architecture that has one; build with the purego tag to get the
// table-driven fallback instead.
func leftmostOnePos64(word uint64) int {
	return 63 - bits.LeadingZeros64(word)
}
