/*
 * hctape - Shared tape image fixtures.
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

import "bytes"

// image builds tape test fixtures frame by frame.
type image struct {
	buf bytes.Buffer
}

func (img *image) gap(frames int) *image {
	_ = WriteGap(&img.buf, frames)
	return img
}

func (img *image) word(w uint32) *image {
	_ = WriteWord(&img.buf, w)
	return img
}

func (img *image) words(ws ...uint32) *image {
	for _, w := range ws {
		img.word(w)
	}
	return img
}

// section punches a count word, the data words, and their checksum.
func (img *image) section(ws ...uint32) *image {
	img.word(uint32(len(ws)))
	img.words(ws...)
	return img.word(fold(ws))
}

// raw punches frames directly, for deliberately damaged fixtures.
func (img *image) raw(frames ...byte) *image {
	img.buf.Write(frames)
	return img
}

func (img *image) reader() *bytes.Reader {
	return bytes.NewReader(img.buf.Bytes())
}

func (img *image) bytes() []byte {
	return img.buf.Bytes()
}

// oneVoice builds a well formed single voice tape.
func oneVoice(leader int, notes []uint32, inner int, bars []uint32, trailer int) *image {
	img := &image{}
	img.gap(leader).section(notes...)
	img.gap(inner).section(bars...)
	return img.gap(trailer)
}
