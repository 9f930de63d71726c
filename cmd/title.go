/*
 * hctape - Leader title block subcommands.
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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/title"
)

var (
	optTitleBlock   string
	optTrailerBlock string
)

func init() {
	titleReplaceCmd.Flags().StringVar(&optTitleBlock, "title", "", "Block to punch at the start of the image")
	titleReplaceCmd.Flags().StringVar(&optTrailerBlock, "trailer", "", "Block to punch at the end of the image")
	titleCmd.AddCommand(titleStripCmd, titleDumpCmd, titleReplaceCmd)
	rootCmd.AddCommand(titleCmd)
}

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Work with the readable block punched into a leader",
}

var titleStripCmd = &cobra.Command{
	Use:   "strip <tape> <out>",
	Short: "Extract the leader bytes before the first data frame",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		block, err := title.Strip(file)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], block, 0o644)
	},
}

var titleDumpCmd = &cobra.Command{
	Use:   "dump <block>",
	Short: "Render a title block as dot matrix rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), title.Dump(data))
		return nil
	},
}

var titleReplaceCmd = &cobra.Command{
	Use:   "replace <tape-in> <tape-out>",
	Short: "Overlay title and/or trailer blocks onto blank leader regions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if optTitleBlock == "" && optTrailerBlock == "" {
			return fmt.Errorf("provide at least --title or --trailer")
		}

		image, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		titleBlock, err := readOptional(optTitleBlock)
		if err != nil {
			return err
		}
		trailerBlock, err := readOptional(optTrailerBlock)
		if err != nil {
			return err
		}

		out, err := title.Replace(image, titleBlock, trailerBlock)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], out, 0o644)
	},
}

func readOptional(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	return os.ReadFile(name)
}
