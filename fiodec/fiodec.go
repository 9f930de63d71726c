/*
 * hctape - FIODEC to ASCII transliteration.
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

// Package fiodec converts between the Harmony Compiler's teletype
// character code and plain text. The code is six bits with an odd parity
// eighth channel, with dedicated shift codes switching between the upper
// and lower case tables.
package fiodec

import (
	"math/bits"
	"strings"

	"github.com/joeblynch/pdp-1-boc/util/octal"
)

const (
	lowerShift byte = 0o272 // switch to the lower case table
	upperShift byte = 0o274 // switch to the upper case table
	carriage   byte = 0o277 // carriage return
	space      byte = 0o200
	tab        byte = 0o236

	// StopCode separates voices on the compiler's input tape. Written for
	// the '@' character and appended at end of text.
	StopCode byte = 0o13
)

// Decode transliterates FIODEC bytes to text. Frames with bad parity or
// the seventh channel set are skipped, as the original converter skipped
// them; unmapped codes produce nothing.
func Decode(data []byte) string {
	var out strings.Builder
	uc := false
	for _, c := range data {
		switch c {
		case lowerShift:
			uc = false
		case upperShift:
			uc = true
		case carriage:
			out.WriteByte('\n')
		default:
			if bits.OnesCount8(c)&1 == 0 {
				continue // even parity: not a punched character
			}
			if c&0o100 != 0 {
				continue
			}
			ch := lower[c&0o77]
			if uc {
				ch = upper[c&0o77]
			}
			if ch != 0 {
				out.WriteRune(ch)
			}
		}
	}
	return out.String()
}

// Encode transliterates text to FIODEC bytes, emitting case shift codes
// as needed and terminating with the voice stop code. Characters outside
// both tables are dropped.
func Encode(text string) []byte {
	var out []byte
	uc := false
	for _, ch := range text {
		switch ch {
		case ' ':
			out = append(out, space)
			continue
		case '\t':
			out = append(out, tab)
			continue
		case '\n':
			out = append(out, carriage)
			continue
		}
		if code, ok := lookup(&upper, ch); ok {
			if !uc {
				out = append(out, upperShift)
				uc = true
			}
			out = append(out, withParity(code))
			continue
		}
		if code, ok := lookup(&lower, ch); ok {
			if uc {
				out = append(out, lowerShift)
				uc = false
			}
			out = append(out, withParity(code))
		}
	}
	return append(out, StopCode)
}

// Dump layout.
const (
	dumpWordsPerLine = 8
	dumpDotsPerLine  = dumpWordsPerLine * 8
)

// Dump renders raw tape bytes in the historical eyeball format: blank
// frames as one dot each, data frames assembled into six digit octal
// words, and a blank line at every run change or line wrap. Frames with
// the seventh channel set are skipped. Data frames left over after the
// last complete word are shown as two digit frame payloads.
func Dump(data []byte) string {
	var out strings.Builder
	var word uint32
	taken, col := 0, 0
	dots := false
	blank := true // no run open yet

	for _, c := range data {
		switch {
		case c < 0o200:
			if !dots && !blank {
				out.WriteString("\n\n")
				col = 0
			}
			dots, blank = true, false
			out.WriteByte('.')
			if col++; col > dumpDotsPerLine {
				out.WriteString("\n\n")
				col, blank = 0, true
			}

		case c&0o100 != 0:

		default:
			if dots && !blank {
				out.WriteString("\n\n")
				col = 0
			}
			dots, blank = false, false
			word = (word << 6) | uint32(c&0o77)
			if taken++; taken < 3 {
				continue
			}
			octal.FormatWord(&out, word)
			word, taken = 0, 0
			if col++; col > dumpWordsPerLine {
				out.WriteString("\n\n")
				col, blank = 0, true
			} else {
				out.WriteString("  ")
			}
		}
	}

	for i := taken - 1; i >= 0; i-- {
		octal.FormatFrame(&out, byte(word>>(6*i))&0o77)
	}
	return out.String()
}

func lookup(table *[64]rune, ch rune) (byte, bool) {
	for code, mapped := range table {
		if mapped != 0 && mapped == ch {
			return byte(code), true
		}
	}
	return 0, false
}

// withParity sets the eighth channel when needed to make the punched
// character odd parity.
func withParity(code byte) byte {
	if bits.OnesCount8(code)&1 == 1 {
		return code
	}
	return code + 0o200
}
