/*
 * hctape - Decode a tape image to a readable transcription.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/score"
	"github.com/joeblynch/pdp-1-boc/tape"
	"github.com/joeblynch/pdp-1-boc/util/octal"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <tape>",
	Short: "Decode a tape image to readable text",
	Long:  `Decode a tape image to readable text ('-' reads stdin).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, done, err := openTape(args[0])
		if err != nil {
			return err
		}
		defer done()
		return decodeTape(cmd.OutOrStdout(), src)
	},
}

// decodeTape walks the voices and prints the transcription the historical
// decoder produced: word dump in octal interleaved with gap annotations
// and the semantic reading of every notes and bars word.
func decodeTape(out io.Writer, src io.ReadSeeker) error {
	rd := tape.Open(src)
	index := 0

	for {
		voice, err := rd.NextVoice()
		if errors.Is(err, tape.ErrEndOfVoices) {
			break
		}
		if err != nil {
			return err
		}
		slog.Debug("decoded voice", "voice", voice.Number,
			"notes", len(voice.Notes), "bars", len(voice.Bars))

		if voice.Number > 1 {
			fmt.Fprintln(out)
		}
		banner(out, voice.Number)

		if err := printNotes(out, voice, &index); err != nil {
			return err
		}
		if err := printBars(out, voice, &index); err != nil {
			return err
		}

		if voice.Last {
			printGap(out, rd.TrailerGap())
		}
	}

	fmt.Fprintf(out, "\nDATA LENGTH: %dB\n", (int(rd.WordCount())*18+7)/8)
	return nil
}

func banner(out io.Writer, voice int) {
	fmt.Fprintln(out, "╔═════════════╗")
	fmt.Fprintf(out, "║   VOICE %d   ║\n", voice)
	fmt.Fprintln(out, "╚═════════════╝")
}

func printGap(out io.Writer, frames int) {
	if frames == 0 {
		return
	}
	s := "s"
	if frames == 1 {
		s = ""
	}
	fmt.Fprintf(out, "[%d blank frame%s]\n", frames, s)
}

func printWord(out io.Writer, index *int, word uint32) {
	fmt.Fprintf(out, "%06o: %s", *index, octal.Word(word))
	*index++
}

func printNotes(out io.Writer, voice *tape.Voice, index *int) error {
	fmt.Fprintln(out, "NOTES:")

	printGap(out, voice.LeadGap)
	printWord(out, index, uint32(len(voice.Notes)))
	fmt.Fprintf(out, "\tnotes word count: %d\n", len(voice.Notes))

	for i, word := range voice.Notes {
		printGap(out, voice.NoteGaps[i])
		printWord(out, index, word)
		ev, err := score.Decode(word)
		if err != nil {
			return err
		}
		switch ev.Kind {
		case score.KindMeasureEnd:
			fmt.Fprintln(out, "\t/")
		case score.KindTempo:
			bpm := score.TempoBPM(ev.TempoRaw)
			fmt.Fprintf(out, "\ttempo: %d BPM [%d BPM for CHM PDP-1] (assuming 4/4 time) [raw: %d]\n",
				bpm, int(float64(bpm)*score.CHMSpeedMultiplier), ev.TempoRaw)
		case score.KindNote:
			printNote(out, ev.Note)
		}
	}

	printGap(out, voice.NotesChecksumGap)
	printWord(out, index, voice.NotesChecksum)
	fmt.Fprintln(out, "\tgood checksum")
	return nil
}

func printNote(out io.Writer, note *score.Note) {
	if note.Rest {
		fmt.Fprint(out, "\t")
	} else {
		yn := "N"
		triplet := 0
		if note.Triplet {
			yn = "Y"
			triplet = 1
		}
		fmt.Fprintf(out, "\tarticulation: %02o [%s], triplet: %o [%s], ",
			note.ArtBits, note.Articulation.Name(), triplet, yn)
	}
	fmt.Fprintf(out, "pitch: %02o [%s%d], duration: %03o [1/%d]\n",
		note.Pitch, note.Name, note.Octave, note.Duration, note.NoteDuration)
}

func printBars(out io.Writer, voice *tape.Voice, index *int) error {
	fmt.Fprintln(out, "\nBARS:")

	printGap(out, voice.InnerGap)
	printWord(out, index, uint32(len(voice.Bars)))
	fmt.Fprintf(out, "\tbars word count: %d\n", len(voice.Bars))

	measures, err := score.ExpandBars(voice.Notes, voice.Bars)
	if err != nil {
		return err
	}

	next := 0
	for i, word := range voice.Bars {
		printGap(out, voice.BarGaps[i])
		printWord(out, index, word)
		if word == tape.SentinelWord {
			fmt.Fprintln(out, "\t/")
			continue
		}

		var line strings.Builder
		fmt.Fprintf(&line, "\t%d", i+1)
		if next < len(measures) {
			for _, note := range measures[next].Notes {
				fmt.Fprintf(&line, " %st%d", note.Name, note.NoteDuration)
			}
			next++
		}
		fmt.Fprintf(out, "%s/\n", line.String())
	}

	printGap(out, voice.BarsChecksumGap)
	printWord(out, index, voice.BarsChecksum)
	fmt.Fprintln(out, "\tgood checksum")
	return nil
}
