/*
 * hctape - Control words of the intermediate format.
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

const (
	// SentinelWord marks a measure boundary in a notes section and an
	// explicit separator in a bars section. Never a note.
	SentinelWord uint32 = 0o600000

	// tempoPrefix: a word whose top three bits are all set carries a tempo
	// value in its low fifteen bits.
	tempoPrefix uint32 = 0o700000

	// TempoRawMask covers the fifteen bit tempo payload.
	TempoRawMask uint32 = 0o077777
)

// IsTempoWord reports whether a notes section word is a tempo control word.
func IsTempoWord(word uint32) bool {
	return word&tempoPrefix == tempoPrefix
}

// TempoWord builds a tempo control word from a raw tempo value.
func TempoWord(raw uint32) uint32 {
	return tempoPrefix | (raw & TempoRawMask)
}

// TempoRaw extracts the raw tempo value from a tempo control word.
func TempoRaw(word uint32) uint32 {
	return word & TempoRawMask
}
