/*
 * hctape - Sequential word stream with one word lookahead.
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

// Stream reads 18-bit words sequentially from a tape image, keeping a
// monotonically increasing word index for diagnostics. Peeking is done by
// saving and restoring the source position, so the source must seek; pipe
// input is buffered by the caller first.
type Stream struct {
	src   io.ReadSeeker
	index uint32  // words consumed so far
	buf   [1]byte // single frame read buffer
}

// NewStream wraps a seekable tape image.
func NewStream(src io.ReadSeeker) *Stream {
	return &Stream{src: src}
}

// ReadByte returns the next physical frame.
func (s *Stream) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.src, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

// Index reports how many words have been consumed.
func (s *Stream) Index() uint32 {
	return s.index
}

// Next consumes one word, returning it with the length of the gap before
// it. Inner blank frames are fatal. End of stream returns io.EOF with the
// gap frames seen before it.
func (s *Stream) Next() (uint32, int, error) {
	word, gap, inner, err := ReadWord(s)
	if err != nil {
		return 0, gap, err
	}
	if inner > 0 {
		return 0, gap, &DropoutError{Frames: inner, WordIndex: s.index}
	}
	s.index++
	return word, gap, nil
}

// PeekGap reads the next word purely to learn its leading gap length, then
// restores the stream position so no frame is lost or consumed twice. End
// of stream returns io.EOF with the blank frames seen before it, which is
// how a trailer gap is measured.
func (s *Stream) PeekGap() (int, error) {
	pos, err := s.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	_, gap, _, rerr := ReadWord(s)
	if _, err := s.src.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return gap, rerr
}
