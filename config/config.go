/*
 * hctape - Defaults file parser.
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

// Package config loads tool defaults from a plain option file.
//
// File format: one option per line, '#' starts a comment, blank lines are
// skipped. Each line is an option name, whitespace, and its value.
// Handlers register per option name and run as the file is read.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Handler receives an option's value when its line is read.
type Handler func(value string) error

var handlers = map[string]Handler{}

// Register installs the handler for an option name. Called from init
// functions or command setup before Load.
func Register(name string, fn Handler) {
	handlers[strings.ToUpper(name)] = fn
}

// Load reads a defaults file and dispatches each option line. A missing
// file is not an error: every tool runs with built-in defaults.
func Load(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, value, _ := strings.Cut(line, " ")
		fn, ok := handlers[strings.ToUpper(name)]
		if !ok {
			return fmt.Errorf("%s line %d: unknown option %s", fileName, lineNumber, name)
		}
		if err := fn(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%s line %d: %w", fileName, lineNumber, err)
		}
	}
	return scanner.Err()
}
