/*
 * hctape - FIODEC transliteration filter.
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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/fiodec"
)

var (
	optToASCII  bool
	optToFiodec bool
)

func init() {
	fiodecCmd.Flags().BoolVarP(&optToASCII, "ascii", "a", false, "FIODEC on stdin to text on stdout")
	fiodecCmd.Flags().BoolVarP(&optToFiodec, "fiodec", "f", false, "Text on stdin to FIODEC on stdout")
	fiodecCmd.MarkFlagsMutuallyExclusive("ascii", "fiodec")
	rootCmd.AddCommand(fiodecCmd)
}

var fiodecCmd = &cobra.Command{
	Use:   "fiodec",
	Short: "Convert between FIODEC and plain text on stdin/stdout",
	Long: `Convert between FIODEC and plain text on stdin/stdout. With no
flag, dump the input in the eyeball format: blank frames as dots, data
frames as octal words.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		switch {
		case optToASCII:
			_, err = io.WriteString(cmd.OutOrStdout(), fiodec.Decode(data))
		case optToFiodec:
			_, err = cmd.OutOrStdout().Write(fiodec.Encode(string(data)))
		default:
			_, err = io.WriteString(cmd.OutOrStdout(), fiodec.Dump(data))
		}
		return err
	},
}
