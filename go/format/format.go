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

// Package format converts 64-bit integers to decimal text without allocating.
//
// The formatters write directly into a caller-supplied buffer and emit up to
// eight decimal digits per division by looking pairs of digits up in a table,
// which makes them considerably faster than one-digit-at-a-time conversion on
// the wire-encoding hot path.
package format

const (
	// MaxUint64Len is the number of bytes FormatUint64 may write: the 20
	// decimal digits of the largest uint64.
	MaxUint64Len = 20

	// MaxInt64Len is the number of bytes FormatInt64 may write: a leading
	// sign, 19 decimal digits and the trailing NUL.
	MaxInt64Len = 21
)

// digitTable holds the two ASCII characters of every two-digit number
// from 00 through 99, indexed at 2*n.
const digitTable = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// FormatUint64 writes the decimal representation of value into buf, most
// significant digit first, with no sign and no terminator, and returns the
// number of bytes written. buf must hold at least MaxUint64Len bytes; a
// shorter buffer panics before anything is written.
func FormatUint64(value uint64, buf []byte) int {
	if value == 0 {
		buf[0] = '0'
		return 1
	}

	olength := decimalLength64(value)

	// Check the full length up front so a short buffer fails before any
	// partial write.
	_ = buf[olength-1]

	i := 0
	for value >= 100000000 {
		q := value / 100000000
		v2 := uint32(value - 100000000*q)

		c := v2 % 10000
		d := v2 / 10000
		c0 := (c % 100) << 1
		c1 := (c / 100) << 1
		d0 := (d % 100) << 1
		d1 := (d / 100) << 1

		pos := olength - i
		copy(buf[pos-2:], digitTable[c0:c0+2])
		copy(buf[pos-4:], digitTable[c1:c1+2])
		copy(buf[pos-6:], digitTable[d0:d0+2])
		copy(buf[pos-8:], digitTable[d1:d1+2])

		value = q
		i += 8
	}

	// At most eight digits left; 32-bit arithmetic is faster for them.
	v2 := uint32(value)

	if v2 >= 10000 {
		c := v2 % 10000
		c0 := (c % 100) << 1
		c1 := (c / 100) << 1

		pos := olength - i
		copy(buf[pos-2:], digitTable[c0:c0+2])
		copy(buf[pos-4:], digitTable[c1:c1+2])

		v2 /= 10000
		i += 4
	}
	if v2 >= 100 {
		c := (v2 % 100) << 1

		pos := olength - i
		copy(buf[pos-2:], digitTable[c:c+2])

		v2 /= 100
		i += 2
	}
	if v2 >= 10 {
		c := v2 << 1

		pos := olength - i
		copy(buf[pos-2:], digitTable[c:c+2])
	} else {
		buf[0] = '0' + byte(v2)
	}

	return olength
}

// FormatInt64 writes the decimal representation of value into buf, with a
// leading '-' for negative values and a trailing NUL byte, and returns the
// length of the result excluding the NUL. buf must hold at least MaxInt64Len
// bytes.
func FormatInt64(value int64, buf []byte) int {
	uvalue := uint64(value)
	n := 0
	if value < 0 {
		// Negate through unsigned wraparound; signed negation of
		// math.MinInt64 has no positive counterpart in 64 bits.
		uvalue = 0 - uvalue
		buf[n] = '-'
		n++
	}
	n += FormatUint64(uvalue, buf[n:])
	buf[n] = 0
	return n
}
