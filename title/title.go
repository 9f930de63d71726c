/*
 * hctape - Leader title block tooling.
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

// Package title handles the human readable block punched into a tape's
// leader: arbitrary hole patterns without the data frame mark, drawn
// before the first binary frame. The tape reader sees the block as gap,
// so it can be stripped, rendered, or swapped without touching the data.
package title

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joeblynch/pdp-1-boc/tape"
)

// Strip returns the leader bytes preceding the first data frame.
func Strip(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	var out []byte
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if tape.IsDataFrame(b) {
			return out, nil
		}
		out = append(out, b)
	}
}

// Dump renders title bytes as dot matrix rows, one line per frame: eight
// hole positions high bit first, with the sprocket hole drawn between
// channels three and four.
func Dump(data []byte) string {
	var out strings.Builder
	for i, b := range data {
		fmt.Fprintf(&out, "%d ", i)
		for bit := 7; bit >= 0; bit-- {
			if bit == 2 {
				out.WriteByte('.')
			}
			if b&(1<<bit) != 0 {
				out.WriteByte('o')
			} else {
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// Replace overlays a title block at the start of a tape image and/or a
// trailer block at its end. Both regions must currently be all null
// frames; refusing to punch over data is the only guard against clobbering
// a mispositioned image. Either block may be nil.
func Replace(image, titleBlock, trailerBlock []byte) ([]byte, error) {
	if len(titleBlock)+len(trailerBlock) > len(image) {
		return nil, errors.New("title and trailer exceed tape image size")
	}

	if err := verifyNull(image[:len(titleBlock)], "title"); err != nil {
		return nil, err
	}
	if err := verifyNull(image[len(image)-len(trailerBlock):], "trailer"); err != nil {
		return nil, err
	}

	out := make([]byte, len(image))
	copy(out, image)
	copy(out, titleBlock)
	copy(out[len(image)-len(trailerBlock):], trailerBlock)
	return out, nil
}

func verifyNull(region []byte, label string) error {
	for _, b := range region {
		if b != 0 {
			return fmt.Errorf("%s region is not blank; refusing to overwrite", label)
		}
	}
	return nil
}
