/*
 * hctape - Tape image writer: re-emit voices with substitutions.
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
	"bufio"
	"io"
)

// DefaultInterVoiceGap is the standard blank frame run punched after a
// bars section when no override is given.
const DefaultInterVoiceGap = 18

// Overrides selects the substitutions applied while re-emitting a voice.
type Overrides struct {
	Tempo         *uint32 // raw 15-bit value replacing every tempo word
	InterVoiceGap int     // blanks after the bars section; 0 means DefaultInterVoiceGap
}

// Writer punches a tape image. The section checksum is always recomputed
// over the words actually written, so a substituted tempo word never
// leaves a stale checksum behind.
type Writer struct {
	out *bufio.Writer
}

// NewWriter wraps an output stream.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// Flush pushes buffered frames to the underlying stream.
func (wr *Writer) Flush() error {
	return wr.out.Flush()
}

// WriteGap punches a run of blank frames: leader, trailer or inter-voice.
func (wr *Writer) WriteGap(frames int) error {
	return WriteGap(wr.out, frames)
}

// WriteVoice re-emits one voice: notes section with any tempo
// substitution, the preserved inner gap, the bars section, and the
// inter-voice gap unless this is the last voice (the caller punches the
// trailer gap instead).
func (wr *Writer) WriteVoice(voice *Voice, ov Overrides) error {
	notes := voice.Notes
	if ov.Tempo != nil {
		notes = substituteTempo(notes, *ov.Tempo)
	}
	if err := wr.writeSection(notes); err != nil {
		return err
	}
	if err := wr.WriteGap(voice.InnerGap); err != nil {
		return err
	}
	if err := wr.writeSection(voice.Bars); err != nil {
		return err
	}
	if voice.Last {
		return nil
	}
	gap := ov.InterVoiceGap
	if gap == 0 {
		gap = DefaultInterVoiceGap
	}
	return wr.WriteGap(gap)
}

// writeSection punches a count word, the data words, and the checksum
// folded over them in encounter order.
func (wr *Writer) writeSection(words []uint32) error {
	if err := WriteWord(wr.out, uint32(len(words))); err != nil {
		return err
	}
	var sum uint32
	for _, word := range words {
		if err := WriteWord(wr.out, word); err != nil {
			return err
		}
		sum = AddChecksum(sum, word)
	}
	return WriteWord(wr.out, sum)
}

// substituteTempo replaces every tempo control word with one carrying the
// given raw value, leaving all other words untouched.
func substituteTempo(words []uint32, raw uint32) []uint32 {
	out := make([]uint32, len(words))
	for i, word := range words {
		if IsTempoWord(word) {
			out[i] = TempoWord(raw)
		} else {
			out[i] = word
		}
	}
	return out
}
