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

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitCount(t *testing.T) {
	check := func(v uint64) {
		require.Equal(t, len(strconv.FormatUint(v, 10)), DigitCount(v), "wrong digit count for %d", v)
	}

	check(0)
	check(math.MaxUint64)
	// Every power of ten and its direct neighbors, where the log2-based
	// approximation needs its correcting comparison.
	for _, p := range powersOfTen {
		check(p - 1)
		check(p)
		check(p + 1)
	}
	for i := 0; i < 100000; i++ {
		check(rand.Uint64())
	}
}

func TestDigitCountRange(t *testing.T) {
	require.Equal(t, 1, DigitCount(0))
	require.Equal(t, 1, DigitCount(1))
	require.Equal(t, MaxUint64Len, DigitCount(math.MaxUint64))
}

func TestDigitCountMonotonic(t *testing.T) {
	for i := 0; i < 100000; i++ {
		v1, v2 := rand.Uint64(), rand.Uint64()
		if v1 > v2 {
			v1, v2 = v2, v1
		}
		require.LessOrEqual(t, DigitCount(v1), DigitCount(v2), "digit count not monotonic between %d and %d", v1, v2)
	}
}
