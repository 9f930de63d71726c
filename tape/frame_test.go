/*
 * hctape - Frame codec test cases.
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
	"bytes"
	"errors"
	"io"
	"testing"
)

// Every 18-bit value must survive a punch and read cycle unchanged.
func TestWordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	for word := uint32(0); word <= WordMask; word++ {
		if err := WriteWord(&buf, word); err != nil {
			t.Fatalf("write %06o: %v", word, err)
		}
	}

	rd := bytes.NewReader(buf.Bytes())
	for want := uint32(0); want <= WordMask; want++ {
		got, gap, inner, err := ReadWord(rd)
		if err != nil {
			t.Fatalf("read %06o: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip: got %06o want %06o", got, want)
		}
		if gap != 0 || inner != 0 {
			t.Fatalf("word %06o: unexpected gap %d inner %d", want, gap, inner)
		}
	}
	if _, _, _, err := ReadWord(rd); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF at end of stream, got %v", err)
	}
}

func TestWriteWordFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWord(&buf, 0o700144); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := []byte{0o200 | 0o70, 0o200 | 0o01, 0o200 | 0o44}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("frames: got %o want %o", buf.Bytes(), want)
	}
}

// Blank frames before the first data frame are gap, whatever their count.
func TestLeadingBlanksAreGap(t *testing.T) {
	data := append(bytes.Repeat([]byte{0}, 7), 0o253, 0o214, 0o307)
	word, gap, inner, err := ReadWord(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if gap != 7 {
		t.Errorf("gap: got %d want 7", gap)
	}
	if inner != 0 {
		t.Errorf("inner: got %d want 0", inner)
	}
	if word != 0o531407 {
		t.Errorf("word: got %06o want 531407", word)
	}
}

// A blank frame after the first data frame is an inner dropout no matter
// where it falls.
func TestInnerBlankPositions(t *testing.T) {
	cases := [][]byte{
		{0o252, 0, 0o252, 0o252},
		{0o252, 0o252, 0, 0o252},
		{0o252, 0, 0, 0o252, 0o252},
	}
	wants := []int{1, 1, 2}
	for i, frames := range cases {
		_, gap, inner, err := ReadWord(bytes.NewReader(frames))
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if gap != 0 {
			t.Errorf("case %d: gap %d", i, gap)
		}
		if inner != wants[i] {
			t.Errorf("case %d: inner got %d want %d", i, inner, wants[i])
		}
	}
}

// Bit 6 is a historical artifact: a set seventh channel still reads as
// the same payload.
func TestSeventhChannelIgnored(t *testing.T) {
	word, _, _, err := ReadWord(bytes.NewReader([]byte{0o300, 0o300, 0o300}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if word != 0 {
		t.Errorf("word: got %06o want 0", word)
	}
}

// End of stream mid-word still reports the gap frames seen, so a trailer
// gap keeps its measured length.
func TestEOFReportsGap(t *testing.T) {
	_, gap, _, err := ReadWord(bytes.NewReader([]byte{0, 0, 0}))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if gap != 3 {
		t.Errorf("gap: got %d want 3", gap)
	}
}

func TestWriteGap(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGap(&buf, 18); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 18 {
		t.Errorf("length: got %d want 18", buf.Len())
	}
	for _, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("gap frame not blank: %o", b)
		}
	}
}
