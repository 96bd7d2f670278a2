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
	"strconv"
	"testing"
)

func FuzzFormatUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(99999999))
	f.Add(uint64(100000000))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, v uint64) {
		var buf [MaxUint64Len]byte
		n := FormatUint64(v, buf[:])

		expected := strconv.FormatUint(v, 10)
		if got := string(buf[:n]); got != expected {
			t.Errorf("FormatUint64(%d) = %q, want %q", v, got, expected)
		}
	})
}

func FuzzFormatInt64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))

	f.Fuzz(func(t *testing.T, v int64) {
		var buf [MaxInt64Len]byte
		n := FormatInt64(v, buf[:])

		expected := strconv.FormatInt(v, 10)
		if got := string(buf[:n]); got != expected {
			t.Errorf("FormatInt64(%d) = %q, want %q", v, got, expected)
		}
		if buf[n] != 0 {
			t.Errorf("FormatInt64(%d) did not NUL-terminate: buf[%d] = %#x", v, n, buf[n])
		}
	})
}
