/*
 * hctape - Tape image to bitmap conversion.
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

// Package imgtape converts between raw tape bytes and an eight pixel tall
// bitmap: column x holds byte x, row 0 is the least significant bit, and a
// punched hole is a black pixel.
package imgtape

import (
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Height of a tape bitmap in pixels, one per channel.
const Height = 8

// Encode renders tape bytes as a BMP bitmap.
func Encode(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return errors.New("empty tape image")
	}
	img := image.NewGray(image.Rect(0, 0, len(data), Height))
	for x, b := range data {
		for y := 0; y < Height; y++ {
			if b&(1<<y) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return bmp.Encode(w, img)
}

// Decode extracts tape bytes from a bitmap produced by Encode, or any
// eight pixel tall image where dark pixels are punched holes.
func Decode(r io.Reader) ([]byte, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dy() != Height {
		return nil, errors.New("bitmap height must be exactly 8 pixels")
	}

	out := make([]byte, 0, bounds.Dx())
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		var b byte
		for y := 0; y < Height; y++ {
			gray := color.GrayModel.Convert(img.At(x, bounds.Min.Y+y)).(color.Gray)
			if gray.Y < 0x80 {
				b |= 1 << y
			}
		}
		out = append(out, b)
	}
	return out, nil
}
