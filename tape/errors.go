/*
 * hctape - Tape error taxonomy.
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
	"fmt"
)

var (
	// ErrEndOfVoices is the normal termination of the voice loop: end of
	// stream at the post-bars peek.
	ErrEndOfVoices = errors.New("end of voices")

	// ErrMissingGap means a bars section directly abuts the checksum word
	// of the notes section before it.
	ErrMissingGap = errors.New("bars section must be separated from notes by blank frames")

	// ErrTrailingData means data frames follow the last voice.
	ErrTrailingData = errors.New("unexpected data after last voice")

	// ErrShortTape means the stream ended inside a voice, where only the
	// post-bars peek may legally hit end of stream.
	ErrShortTape = errors.New("unexpected end of tape")
)

// DropoutError reports blank frames found between the data frames of a
// word: tape damage or frame desync, never tolerated.
type DropoutError struct {
	Frames    int    // inner blank frames seen
	WordIndex uint32 // index of the word being assembled
}

func (e *DropoutError) Error() string {
	return fmt.Sprintf("%d inner blank frame%s found in word %06o",
		e.Frames, plural(e.Frames), e.WordIndex)
}

// ChecksumError reports a section whose recorded checksum does not match
// the accumulator folded over its data words.
type ChecksumError struct {
	Expected   uint32 // checksum word read from tape
	Calculated uint32 // accumulator over the data words
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected: %06o, calculated: %06o",
		e.Expected, e.Calculated)
}

// CapacityError reports a notes section larger than the per-voice note
// buffer limit. Recoverable: the caller decides whether to stop.
type CapacityError struct {
	Voice int // 1-based voice number
	Limit int // maximum note words per voice
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("voice %d notes section exceeds %d word buffer", e.Voice, e.Limit)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
