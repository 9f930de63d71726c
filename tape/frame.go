/*
 * hctape - Paper tape frame and word codec.
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

import "io"

const (
	// FrameMark flags a frame as carrying data. Frames without it are blank.
	FrameMark byte = 0o200

	// Six payload bits per data frame.
	payloadMask byte = 0o077

	// WordFrames data frames make one machine word.
	WordFrames = 3

	// WordMask covers one 18-bit machine word.
	WordMask uint32 = 0o777777
)

// IsDataFrame reports whether a physical frame carries payload bits.
// Bit 6 is a historical artifact and ignored here; any frame without the
// mark bit counts as blank, which lets punched title art in the leader
// read as gap.
func IsDataFrame(frame byte) bool {
	return frame&FrameMark != 0
}

// ReadWord assembles one 18-bit word from the next three data frames of r,
// most significant six bits first. Blank frames seen before the first data
// frame are counted as gap, blank frames between data frames as inner
// dropouts; classifying the latter is left to the caller. End of stream
// before the third data frame returns io.EOF along with the gap frames
// seen, so a trailer gap keeps its length.
func ReadWord(r io.ByteReader) (word uint32, gap int, inner int, err error) {
	taken := 0
	for taken < WordFrames {
		frame, rerr := r.ReadByte()
		if rerr != nil {
			return 0, gap, inner, rerr
		}
		if IsDataFrame(frame) {
			word = (word << 6) | uint32(frame&payloadMask)
			taken++
			continue
		}
		if taken == 0 {
			gap++
		} else {
			inner++
		}
	}
	return word, gap, inner, nil
}

// WriteWord punches one 18-bit word as three data frames, most significant
// six bits first, each carrying the frame mark.
func WriteWord(w io.ByteWriter, word uint32) error {
	frames := [WordFrames]byte{
		byte(word>>12) & payloadMask,
		byte(word>>6) & payloadMask,
		byte(word) & payloadMask,
	}
	for _, frame := range frames {
		if err := w.WriteByte(frame | FrameMark); err != nil {
			return err
		}
	}
	return nil
}

// WriteGap punches a run of blank frames.
func WriteGap(w io.ByteWriter, frames int) error {
	for i := 0; i < frames; i++ {
		if err := w.WriteByte(0); err != nil {
			return err
		}
	}
	return nil
}
