/*
 * hctape - Voice reader tests.
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

package tape

import (
	"errors"
	"testing"
)

func TestReadOneVoice(t *testing.T) {
	notes := []uint32{0o700144, 0o204620, 0o600000}
	bars := []uint32{0o000001, 0o600000}
	img := oneVoice(120, notes, 6, bars, 18)
	rd := Open(img.reader())

	voice, err := rd.NextVoice()
	if err != nil {
		t.Fatalf("voice 1: %v", err)
	}
	if voice.Number != 1 || !voice.Last {
		t.Errorf("number %d last %v, want 1 and true", voice.Number, voice.Last)
	}
	if voice.LeadGap != 120 || voice.InnerGap != 6 {
		t.Errorf("gaps %d/%d, want 120/6", voice.LeadGap, voice.InnerGap)
	}
	if len(voice.Notes) != len(notes) {
		t.Fatalf("got %d notes, want %d", len(voice.Notes), len(notes))
	}
	for i, w := range notes {
		if voice.Notes[i] != w {
			t.Errorf("note %d: %06o, want %06o", i, voice.Notes[i], w)
		}
	}
	if voice.NotesChecksum != fold(notes) || voice.BarsChecksum != fold(bars) {
		t.Errorf("checksums %06o/%06o, want %06o/%06o",
			voice.NotesChecksum, voice.BarsChecksum, fold(notes), fold(bars))
	}
	if len(voice.Bars) != 2 || voice.Bars[1] != SentinelWord {
		t.Errorf("bars %o", voice.Bars)
	}

	if _, err = rd.NextVoice(); !errors.Is(err, ErrEndOfVoices) {
		t.Fatalf("got %v, want ErrEndOfVoices", err)
	}
	if rd.TrailerGap() != 18 {
		t.Errorf("trailer %d, want 18", rd.TrailerGap())
	}
}

// A notes section holding only a tempo word decodes to that single word.
func TestReadTempoOnlyVoice(t *testing.T) {
	img := oneVoice(10, []uint32{0o700144}, 3, []uint32{0o600000}, 5)
	voices, err := ReadAll(img.reader())
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(voices) != 1 {
		t.Fatalf("got %d voices, want 1", len(voices))
	}
	if len(voices[0].Notes) != 1 || voices[0].Notes[0] != 0o700144 {
		t.Fatalf("notes %o", voices[0].Notes)
	}
	if raw := TempoRaw(voices[0].Notes[0]); raw != 100 {
		t.Errorf("tempo raw %d, want 100", raw)
	}
}

func TestReadMultipleVoices(t *testing.T) {
	img := &image{}
	img.gap(30)
	for i := 0; i < 4; i++ {
		img.section(0o204620, 0o600000)
		img.gap(3)
		img.section(0o000000, 0o600000)
		img.gap(DefaultInterVoiceGap)
	}

	voices, err := ReadAll(img.reader())
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(voices) != 4 {
		t.Fatalf("got %d voices, want 4", len(voices))
	}
	for i, voice := range voices {
		if voice.Number != i+1 {
			t.Errorf("voice %d numbered %d", i, voice.Number)
		}
		if voice.Last != (i == 3) {
			t.Errorf("voice %d last %v", i+1, voice.Last)
		}
	}
	if voices[0].LeadGap != 30 || voices[1].LeadGap != DefaultInterVoiceGap {
		t.Errorf("lead gaps %d/%d", voices[0].LeadGap, voices[1].LeadGap)
	}
}

// Stray blank runs between a section's words are legal and must be kept
// per word for the transcription.
func TestReadIntraSectionGaps(t *testing.T) {
	img := &image{}
	img.gap(10).word(2)
	img.gap(4).word(0o204620)
	img.word(0o600000)
	img.gap(1).word(fold([]uint32{0o204620, 0o600000}))
	img.gap(3)
	img.section(0o600000)
	img.gap(5)

	voices, err := ReadAll(img.reader())
	if err != nil {
		t.Fatalf("%v", err)
	}
	voice := voices[0]
	if len(voice.NoteGaps) != 2 || voice.NoteGaps[0] != 4 || voice.NoteGaps[1] != 0 {
		t.Errorf("note gaps %v, want [4 0]", voice.NoteGaps)
	}
	if voice.NotesChecksumGap != 1 {
		t.Errorf("notes checksum gap %d, want 1", voice.NotesChecksumGap)
	}
	if len(voice.BarGaps) != 1 || voice.BarGaps[0] != 0 {
		t.Errorf("bar gaps %v, want [0]", voice.BarGaps)
	}
	if voice.BarsChecksumGap != 0 {
		t.Errorf("bars checksum gap %d, want 0", voice.BarsChecksumGap)
	}
}

// A bars section that abuts the notes checksum word is a framing fault.
func TestReadMissingGap(t *testing.T) {
	img := &image{}
	img.gap(10).section(0o204620, 0o600000)
	img.section(0o000000, 0o600000) // no gap before bars
	img.gap(5)

	_, err := ReadAll(img.reader())
	if !errors.Is(err, ErrMissingGap) {
		t.Fatalf("got %v, want ErrMissingGap", err)
	}
}

func TestReadTrailingData(t *testing.T) {
	img := &image{}
	img.gap(10)
	for i := 0; i < 4; i++ {
		img.section(0o204620, 0o600000)
		img.gap(3)
		img.section(0o600000)
		img.gap(6)
	}
	img.word(0o000123) // junk after voice four

	_, err := ReadAll(img.reader())
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("got %v, want ErrTrailingData", err)
	}
}

// A tape that stops inside a voice, before its bars section, is short.
func TestReadShortTape(t *testing.T) {
	img := &image{}
	img.gap(10).section(0o204620, 0o600000)

	_, err := ReadAll(img.reader())
	if !errors.Is(err, ErrShortTape) {
		t.Fatalf("got %v, want ErrShortTape", err)
	}
}

func TestReadOversizedNotes(t *testing.T) {
	img := &image{}
	img.gap(10).word(MaxVoiceNotes + 1)

	_, err := ReadAll(img.reader())
	var cerr *CapacityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CapacityError", err)
	}
	if cerr.Voice != 1 || cerr.Limit != MaxVoiceNotes {
		t.Errorf("got voice %d limit %d", cerr.Voice, cerr.Limit)
	}
}

func TestReadChecksumFault(t *testing.T) {
	img := &image{}
	img.gap(10).word(2).words(0o204620, 0o600000).word(0o000001)

	_, err := ReadAll(img.reader())
	var cerr *ChecksumError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want ChecksumError", err)
	}
}
