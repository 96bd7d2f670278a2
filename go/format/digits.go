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

package format

var powersOfTen = [20]uint64{
	1, 10,
	100, 1000,
	10000, 100000,
	1000000, 10000000,
	100000000, 1000000000,
	10000000000, 100000000000,
	1000000000000, 10000000000000,
	100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000,
	1000000000000000000, 10000000000000000000,
}

// decimalLength64 returns the number of decimal digits in v, which must not
// be 0. It divides the base-2 logarithm by a fixed-point approximation of
// log2(10): 1233/4096 never overestimates and is within one of the true
// value, so a single comparison against a power of ten corrects the result.
func decimalLength64(v uint64) int {
	t := (leftmostOnePos64(v) + 1) * 1233 / 4096
	if v >= powersOfTen[t] {
		t++
	}
	return t
}

// DigitCount returns the number of decimal digits in v. Zero counts as one
// digit. Useful for sizing a buffer exactly before formatting.
func DigitCount(v uint64) int {
	if v == 0 {
		return 1
	}
	return decimalLength64(v)
}
