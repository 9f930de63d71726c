/*
 * hctape - Convert tape words to octal strings.
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

package octal

import "strings"

var octMap = "01234567"

// FormatWord writes an 18-bit word as six octal digits.
func FormatWord(str *strings.Builder, word uint32) {
	shift := 15
	for i := 0; i < 6; i++ {
		str.WriteByte(octMap[(word>>shift)&0o7])
		shift -= 3
	}
}

// FormatFrame writes one frame's payload as two octal digits.
func FormatFrame(str *strings.Builder, frame byte) {
	str.WriteByte(octMap[(frame>>3)&0o7])
	str.WriteByte(octMap[frame&0o7])
}

// Word returns an 18-bit word as a six digit octal string.
func Word(word uint32) string {
	var str strings.Builder
	FormatWord(&str, word)
	return str.String()
}
