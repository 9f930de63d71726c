/*
 * hctape - Tape image reader: voices of notes and bars sections.
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
	"fmt"
	"io"
)

const (
	// MaxVoices per tape image.
	MaxVoices = 4

	// MaxVoiceNotes caps the per-voice note buffer. The historical decoder
	// used a fixed 8192 word buffer with no bounds check; here an oversized
	// notes section is a reported error instead.
	MaxVoiceNotes = 8192
)

// Voice holds one voice's raw section words and the gap geometry around
// and inside them. Notes is populated by the notes section pass and read
// only by the bars expansion; it is not shared across voices.
//
// Stray blank runs between a section's words are legal on real tapes and
// are retained per word for transcription. Rewriting drops them, the same
// way the historical rewriter did.
type Voice struct {
	Number           int      // 1-based voice number
	LeadGap          int      // blank frames before the notes count word
	InnerGap         int      // blank frames before the bars count word
	Notes            []uint32 // notes section data words
	Bars             []uint32 // bars section data words
	NoteGaps         []int    // blank frames before each notes data word
	BarGaps          []int    // blank frames before each bars data word
	NotesChecksumGap int      // blank frames before the notes checksum word
	BarsChecksumGap  int      // blank frames before the bars checksum word
	NotesChecksum    uint32
	BarsChecksum     uint32
	Last             bool // no voice follows; trailer gap comes next
}

// Reader walks a tape image voice by voice: leader gap, then for each of
// up to four voices a notes section, an inner gap and a bars section, with
// inter-voice gaps between voices and a trailer gap at the end.
type Reader struct {
	stream  *Stream
	voice   int
	done    bool
	trailer int
}

// Open wraps a seekable tape image. Reading starts at the leader gap.
func Open(src io.ReadSeeker) *Reader {
	return &Reader{stream: NewStream(src)}
}

// WordCount reports how many words have been consumed so far.
func (rd *Reader) WordCount() uint32 {
	return rd.stream.Index()
}

// TrailerGap reports the measured trailer gap length. Valid once NextVoice
// has returned a voice marked Last or ErrEndOfVoices.
func (rd *Reader) TrailerGap() int {
	return rd.trailer
}

// NextVoice reads the next voice. ErrEndOfVoices is the only normal
// termination; every other failure identifies the word index and voice
// where the tape went wrong.
func (rd *Reader) NextVoice() (*Voice, error) {
	if rd.done {
		return nil, ErrEndOfVoices
	}
	if rd.voice >= MaxVoices {
		// Only the trailer gap may remain past voice four.
		gap, err := rd.stream.PeekGap()
		if err == nil {
			return nil, fmt.Errorf("%w: data frames after voice %d", ErrTrailingData, MaxVoices)
		}
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		rd.trailer = gap
		rd.done = true
		return nil, ErrEndOfVoices
	}

	voice := &Voice{Number: rd.voice + 1}

	if err := rd.readNotes(voice); err != nil {
		return nil, fmt.Errorf("voice %d notes: %w", voice.Number, err)
	}
	if err := rd.readBars(voice); err != nil {
		return nil, fmt.Errorf("voice %d bars: %w", voice.Number, err)
	}

	// Peek past the bars section: end of stream here is the one legal way
	// for the tape to end, and the blanks before it are the trailer gap.
	gap, err := rd.stream.PeekGap()
	if errors.Is(err, io.EOF) {
		rd.trailer = gap
		rd.done = true
		voice.Last = true
	} else if err != nil {
		return nil, fmt.Errorf("voice %d: %w", voice.Number, err)
	}

	rd.voice++
	return voice, nil
}

// readNotes runs the notes section. End of stream anywhere inside it is
// fatal: a bars section must always follow.
func (rd *Reader) readNotes(voice *Voice) error {
	sec := NewSection(rd.stream)
	for !sec.Done() {
		ev, err := sec.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventCount:
			voice.LeadGap = ev.Gap
			if sec.Count() > MaxVoiceNotes {
				return &CapacityError{Voice: voice.Number, Limit: MaxVoiceNotes}
			}
			voice.Notes = make([]uint32, 0, sec.Count())
			voice.NoteGaps = make([]int, 0, sec.Count())
		case EventData:
			voice.Notes = append(voice.Notes, ev.Word)
			voice.NoteGaps = append(voice.NoteGaps, ev.Gap)
		case EventChecksum:
			voice.NotesChecksum = ev.Word
			voice.NotesChecksumGap = ev.Gap
		}
	}
	return nil
}

// readBars runs the bars section. The section must not abut the notes
// checksum word: a zero leading gap is a framing fault.
func (rd *Reader) readBars(voice *Voice) error {
	gap, err := rd.stream.PeekGap()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrShortTape
		}
		return err
	}
	if gap == 0 {
		return ErrMissingGap
	}

	sec := NewSection(rd.stream)
	for !sec.Done() {
		ev, err := sec.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventCount:
			voice.InnerGap = ev.Gap
			voice.Bars = make([]uint32, 0, sec.Count())
			voice.BarGaps = make([]int, 0, sec.Count())
		case EventData:
			voice.Bars = append(voice.Bars, ev.Word)
			voice.BarGaps = append(voice.BarGaps, ev.Gap)
		case EventChecksum:
			voice.BarsChecksum = ev.Word
			voice.BarsChecksumGap = ev.Gap
		}
	}
	return nil
}

// ReadAll collects every voice of a tape image.
func ReadAll(src io.ReadSeeker) ([]*Voice, error) {
	rd := Open(src)
	var voices []*Voice
	for {
		voice, err := rd.NextVoice()
		if errors.Is(err, ErrEndOfVoices) {
			return voices, nil
		}
		if err != nil {
			return nil, err
		}
		voices = append(voices, voice)
	}
}
