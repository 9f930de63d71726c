/*
 * hctape - Rewrite tempo and inter-voice gaps of a tape image.
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
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/tape"
)

var (
	optTempo int
	optGap   int
)

func init() {
	tweakCmd.Flags().IntVarP(&optTempo, "tempo", "t", -1, "Raw tempo value to substitute")
	tweakCmd.Flags().IntVarP(&optGap, "gap", "g", 0, "Inter-voice gap length in frames")
	rootCmd.AddCommand(tweakCmd)
}

var tweakCmd = &cobra.Command{
	Use:   "tweak <in> <out>",
	Short: "Rewrite tempo and inter-voice gaps",
	Long: `Re-emit a tape image with substituted tempo words and/or
inter-voice gap lengths ('-' reads stdin / writes stdout). Section
checksums are recomputed over the words actually written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, srcDone, err := openTape(args[0])
		if err != nil {
			return err
		}
		defer srcDone()

		out, outDone, err := createOut(args[1])
		if err != nil {
			return err
		}
		defer outDone()

		ov := tape.Overrides{InterVoiceGap: optGap}
		if ov.InterVoiceGap == 0 {
			ov.InterVoiceGap = defaultGap
		}
		if optTempo >= 0 {
			tempo := uint32(optTempo)
			ov.Tempo = &tempo
		}
		return tweakTape(cmd, src, out, ov)
	},
}

func tweakTape(cmd *cobra.Command, src io.ReadSeeker, out io.Writer, ov tape.Overrides) error {
	rd := tape.Open(src)
	wr := tape.NewWriter(out)

	first := true
	for {
		voice, err := rd.NextVoice()
		if errors.Is(err, tape.ErrEndOfVoices) {
			break
		}
		if err != nil {
			return err
		}

		if first {
			fmt.Fprintf(cmd.ErrOrStderr(), "[leader: %d frames]\n", voice.LeadGap)
			if err := wr.WriteGap(voice.LeadGap); err != nil {
				return err
			}
			first = false
		}

		if err := wr.WriteVoice(voice, ov); err != nil {
			return err
		}
		slog.Debug("rewrote voice", "voice", voice.Number,
			"notes", len(voice.Notes), "bars", len(voice.Bars))
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "[trailer: %d frames]\n", rd.TrailerGap())
	if err := wr.WriteGap(rd.TrailerGap()); err != nil {
		return err
	}
	return wr.Flush()
}
