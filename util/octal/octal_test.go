/*
 * hctape - Octal formatting tests.
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

package octal

import (
	"strings"
	"testing"
)

func TestWord(t *testing.T) {
	tests := []struct {
		word uint32
		want string
	}{
		{0, "000000"},
		{0o600000, "600000"},
		{0o700144, "700144"},
		{0o777777, "777777"},
		{0o000001, "000001"},
	}
	for _, tc := range tests {
		if got := Word(tc.word); got != tc.want {
			t.Errorf("Word(%o) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestFormatFrame(t *testing.T) {
	var str strings.Builder
	FormatFrame(&str, 0o53)
	FormatFrame(&str, 0o07)
	if got := str.String(); got != "5307" {
		t.Errorf("got %q, want 5307", got)
	}
}
