/*
 * hctape - Interactive tape inspector.
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
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/score"
	"github.com/joeblynch/pdp-1-boc/tape"
	"github.com/joeblynch/pdp-1-boc/util/octal"
)

var shellCommands = []string{"voices", "notes", "bars", "word", "tempo", "help", "quit"}

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell <tape>",
	Short: "Inspect a tape image interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, done, err := openTape(args[0])
		if err != nil {
			return err
		}
		defer done()

		voices, err := tape.ReadAll(src)
		if err != nil {
			return err
		}
		runShell(voices)
		return nil
	},
}

func runShell(voices []*tape.Voice) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		var out []string
		for _, cmd := range shellCommands {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				out = append(out, cmd)
			}
		}
		return out
	})

	for {
		command, err := line.Prompt("hctape> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Println("Error: " + err.Error())
			return
		}
		line.AppendHistory(command)
		if !shellDispatch(voices, strings.Fields(command)) {
			return
		}
	}
}

// shellDispatch runs one command line, returning false to leave the shell.
func shellDispatch(voices []*tape.Voice, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "quit", "q", "exit":
		return false
	case "help":
		fmt.Println("voices | notes <v> | bars <v> | word <v> <i> | tempo | quit")
	case "voices":
		for _, voice := range voices {
			fmt.Printf("voice %d: %d note words, %d bar words, lead gap %d, inner gap %d\n",
				voice.Number, len(voice.Notes), len(voice.Bars), voice.LeadGap, voice.InnerGap)
		}
	case "notes":
		withVoice(voices, fields, func(voice *tape.Voice) {
			for i, word := range voice.Notes {
				fmt.Printf("%4d: %s %s\n", i, octal.Word(word), describeWord(word))
			}
		})
	case "bars":
		withVoice(voices, fields, func(voice *tape.Voice) {
			measures, err := score.ExpandBars(voice.Notes, voice.Bars)
			if err != nil {
				fmt.Println("Error: " + err.Error())
				return
			}
			for _, m := range measures {
				var names []string
				for _, note := range m.Notes {
					names = append(names, fmt.Sprintf("%st%d", note.Name, note.NoteDuration))
				}
				fmt.Printf("%4d @%d: %s\n", m.Number, m.Index, strings.Join(names, " "))
			}
		})
	case "word":
		if len(fields) != 3 {
			fmt.Println("usage: word <voice> <index>")
			break
		}
		withVoice(voices, fields[:2], func(voice *tape.Voice) {
			i, err := strconv.Atoi(fields[2])
			if err != nil || i < 0 || i >= len(voice.Notes) {
				fmt.Println("no such word")
				return
			}
			fmt.Printf("%s %s\n", octal.Word(voice.Notes[i]), describeWord(voice.Notes[i]))
		})
	case "tempo":
		for _, voice := range voices {
			for _, word := range voice.Notes {
				if tape.IsTempoWord(word) {
					raw := int(tape.TempoRaw(word))
					fmt.Printf("voice %d: raw %d = %d BPM\n",
						voice.Number, raw, score.TempoBPM(raw))
				}
			}
		}
	default:
		fmt.Println("unknown command; try help")
	}
	return true
}

func withVoice(voices []*tape.Voice, fields []string, fn func(*tape.Voice)) {
	if len(fields) < 2 {
		fmt.Println("usage: " + fields[0] + " <voice>")
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(voices) {
		fmt.Println("no such voice")
		return
	}
	fn(voices[n-1])
}

func describeWord(word uint32) string {
	ev, err := score.Decode(word)
	if err != nil {
		return err.Error()
	}
	switch ev.Kind {
	case score.KindMeasureEnd:
		return "/"
	case score.KindTempo:
		return fmt.Sprintf("tempo raw %d (%d BPM)", ev.TempoRaw, score.TempoBPM(ev.TempoRaw))
	default:
		note := ev.Note
		if note.Rest {
			return fmt.Sprintf("rest 1/%d", note.NoteDuration)
		}
		return fmt.Sprintf("%s%d 1/%d %s", note.Name, note.Octave,
			note.NoteDuration, note.Articulation.Name())
	}
}
