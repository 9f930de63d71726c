/*
 * hctape - Defaults file wiring tests.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/joeblynch/pdp-1-boc/config"
	"github.com/joeblynch/pdp-1-boc/score"
)

func TestDefaultsFileOptions(t *testing.T) {
	oldGap, oldNumerator := defaultGap, score.TempoNumerator
	defer func() {
		defaultGap, score.TempoNumerator = oldGap, oldNumerator
	}()

	name := filepath.Join(t.TempDir(), "hctape.cfg")
	if err := os.WriteFile(name, []byte("DEFAULTGAP 25\nTEMPONUM 10000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := config.Load(name); err != nil {
		t.Fatal(err)
	}

	if defaultGap != 25 {
		t.Errorf("defaultGap = %d, want 25", defaultGap)
	}
	if score.TempoNumerator != 10000 {
		t.Errorf("TempoNumerator = %d, want 10000", score.TempoNumerator)
	}
	if got := score.TempoBPM(100); got != 100 {
		t.Errorf("TempoBPM(100) = %d with swapped numerator, want 100", got)
	}
}

func TestDefaultsFileBadValue(t *testing.T) {
	name := filepath.Join(t.TempDir(), "hctape.cfg")
	if err := os.WriteFile(name, []byte("TEMPONUM eleven\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := config.Load(name); err == nil {
		t.Error("non-numeric TEMPONUM did not fail")
	}
}
