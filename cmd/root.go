/*
 * hctape - Command line front end.
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
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joeblynch/pdp-1-boc/config"
	"github.com/joeblynch/pdp-1-boc/score"
	"github.com/joeblynch/pdp-1-boc/tape"
	"github.com/joeblynch/pdp-1-boc/util/logger"
)

var (
	optConfig  string
	optLogFile string
	optDebug   bool

	// defaultGap is the inter-voice gap punched by tweak when no flag is
	// given. A DEFAULTGAP line in the defaults file overrides it.
	defaultGap = tape.DefaultInterVoiceGap
)

var rootCmd = &cobra.Command{
	Use:   "hctape",
	Short: "Harmony Compiler intermediate tape toolkit",
	Long: `Decode, rewrite and inspect Harmony Compiler intermediate
binary paper tape images.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the selected subcommand.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&optConfig, "config", "c", "hctape.cfg", "Defaults file")
	rootCmd.PersistentFlags().StringVarP(&optLogFile, "log", "l", "", "Log file")
	rootCmd.PersistentFlags().BoolVarP(&optDebug, "debug", "d", false, "Log debug to console")

	config.Register("DEFAULTGAP", func(value string) error {
		gap, err := strconv.Atoi(value)
		if err == nil {
			defaultGap = gap
		}
		return err
	})
	config.Register("LOGFILE", func(value string) error {
		if optLogFile == "" {
			optLogFile = value
		}
		return nil
	})
	config.Register("TEMPONUM", func(value string) error {
		numerator, err := strconv.Atoi(value)
		if err == nil {
			score.TempoNumerator = numerator
		}
		return err
	})
}

// setup loads the defaults file and wires slog before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.Load(optConfig); err != nil {
		return err
	}

	var file *os.File
	if optLogFile != "" {
		var err error
		file, err = os.Create(optLogFile)
		if err != nil {
			return err
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	slog.SetDefault(slog.New(logger.NewHandler(file,
		&slog.HandlerOptions{Level: programLevel}, optDebug)))
	return nil
}

// openTape opens a tape image for seekable reading. "-" reads stdin fully
// into memory first, since peeking needs a seekable source.
func openTape(name string) (io.ReadSeeker, func(), error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		return bytes.NewReader(data), func() {}, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

// createOut opens an output stream, with "-" meaning stdout.
func createOut(name string) (io.Writer, func(), error) {
	if name == "-" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}
