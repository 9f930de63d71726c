/*
 * hctape - End-around-carry checksum.
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

// AddChecksum folds b into the running accumulator a using 18-bit
// end-around-carry (one's complement) addition. The carry out of bit 17 is
// added back into bit 0 once; a second carry produced by the fold itself is
// not re-folded, matching the historical routine bit for bit.
func AddChecksum(a, b uint32) uint32 {
	sum := a + b
	return ((sum & WordMask) + (sum >> 18)) & WordMask
}

// VerifyChecksum compares a section's recorded checksum word against the
// accumulator folded over its data words.
func VerifyChecksum(expected, calculated uint32) error {
	if expected != calculated {
		return &ChecksumError{Expected: expected, Calculated: calculated}
	}
	return nil
}
