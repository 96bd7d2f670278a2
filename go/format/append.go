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

import "vitess.io/fastformat/go/hack"

// AppendUint64 appends the decimal representation of v to dst and returns
// the extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	var scratch [MaxUint64Len]byte
	n := FormatUint64(v, scratch[:])
	return append(dst, scratch[:n]...)
}

// AppendInt64 appends the decimal representation of v to dst, with a leading
// '-' for negative values and no terminator, and returns the extended slice.
func AppendInt64(dst []byte, v int64) []byte {
	var scratch [MaxInt64Len]byte
	n := FormatInt64(v, scratch[:])
	return append(dst, scratch[:n]...)
}

// Utoa returns the decimal representation of v as a string. The backing
// array is allocated at exactly the digit count and never copied.
func Utoa(v uint64) string {
	buf := make([]byte, DigitCount(v))
	FormatUint64(v, buf)
	return hack.String(buf)
}

// Itoa returns the decimal representation of v as a string, with a leading
// '-' for negative values.
func Itoa(v int64) string {
	uv := uint64(v)
	sign := 0
	if v < 0 {
		uv = 0 - uv
		sign = 1
	}
	buf := make([]byte, sign+DigitCount(uv))
	if sign != 0 {
		buf[0] = '-'
	}
	FormatUint64(uv, buf[sign:])
	return hack.String(buf)
}
