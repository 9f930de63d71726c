/*
 * hctape - Tape image to bitmap subcommand.
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

package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/imgtape"
)

func init() {
	rootCmd.AddCommand(imgCmd)
}

var imgCmd = &cobra.Command{
	Use:   "img <src> <dst>",
	Short: "Convert between a tape image and an 8 pixel tall bitmap",
	Long: `Convert between raw tape bytes and an 8 pixel tall bitmap.
A BMP source is decoded to tape bytes; anything else is rendered as a
bitmap.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		// BMP files open with the "BM" signature.
		if len(data) > 2 && data[0] == 'B' && data[1] == 'M' {
			raw, err := imgtape.Decode(bytes.NewReader(data))
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], raw, 0o644)
		}

		var out bytes.Buffer
		if err := imgtape.Encode(&out, data); err != nil {
			return err
		}
		return os.WriteFile(args[1], out.Bytes(), 0o644)
	},
}
