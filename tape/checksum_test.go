/*
 * hctape - Checksum engine test cases.
 *
 * Copyright 2025, Joe Lynch
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package tape

import (
	"errors"
	"testing"
)

func fold(words []uint32) uint32 {
	var sum uint32
	for _, w := range words {
		sum = AddChecksum(sum, w)
	}
	return sum
}

func TestAddChecksumCarry(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 0, 0},
		{0o000001, 0o000002, 0o000003},
		{0o777777, 0o000001, 0o000001}, // carry out of bit 17 wraps to bit 0
		{0o777777, 0o777777, 0o777777},
		{0o400000, 0o400000, 0o000001},
		{0o600000, 0o600000, 0o400001},
	}
	for _, c := range cases {
		if got := AddChecksum(c.a, c.b); got != c.want {
			t.Errorf("add(%06o,%06o): got %06o want %06o", c.a, c.b, got, c.want)
		}
	}
}

func TestVerifyChecksum(t *testing.T) {
	words := []uint32{0o123456, 0o600000, 0o700144, 0o000017, 0o777001}
	sum := fold(words)
	if err := VerifyChecksum(sum, fold(words)); err != nil {
		t.Fatalf("matching checksums: %v", err)
	}

	// Flipping any single word must be detected against the original sum.
	for i := range words {
		mutated := make([]uint32, len(words))
		copy(mutated, words)
		mutated[i] ^= 0o000400
		err := VerifyChecksum(sum, fold(mutated))
		var cerr *ChecksumError
		if !errors.As(err, &cerr) {
			t.Fatalf("word %d mutation went undetected: %v", i, err)
		}
		if cerr.Expected != sum {
			t.Errorf("word %d: expected field %06o want %06o", i, cerr.Expected, sum)
		}
	}
}
