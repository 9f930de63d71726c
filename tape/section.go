/*
 * hctape - Section framing state machine.
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
	"io"
)

// Section event kinds.
const (
	EventCount int = 1 + iota // count word opening the section
	EventData                 // one data word
	EventChecksum             // checksum word, verified before delivery
)

// SectionEvent is one step of a section pass. Both the decode and the
// re-encode consumers pull the same events and use them differently.
type SectionEvent struct {
	Kind  int
	Word  uint32
	Gap   int // blank frames punched before this word
	Index int // ordinal of a data word within the section, from 0
}

// Section states.
const (
	expectCount int = 1 + iota
	expectData
	expectChecksum
	sectionDone
)

// ErrSectionDone is returned by Next after the checksum event.
var ErrSectionDone = errors.New("section complete")

// Section drives one [count][data words][checksum] run of words. The
// checksum accumulator folds every data word in encounter order and is
// verified against the trailing checksum word.
type Section struct {
	stream *Stream
	state  int
	count  int
	taken  int    // data words delivered
	sum    uint32 // running checksum accumulator
}

// NewSection starts a section pass at the current stream position.
func NewSection(stream *Stream) *Section {
	return &Section{stream: stream, state: expectCount}
}

// Count reports the section's declared data word count. Valid after the
// count event.
func (sec *Section) Count() int {
	return sec.count
}

// Done reports whether the checksum word has been read and verified.
func (sec *Section) Done() bool {
	return sec.state == sectionDone
}

// Next advances the section one word. End of stream inside a section is
// always ErrShortTape; the voice loop decides separately whether end of
// stream between sections is legal.
func (sec *Section) Next() (SectionEvent, error) {
	if sec.state == sectionDone {
		return SectionEvent{}, ErrSectionDone
	}

	word, gap, err := sec.stream.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrShortTape
		}
		return SectionEvent{}, err
	}

	switch sec.state {
	case expectCount:
		sec.count = int(word)
		if sec.count == 0 {
			sec.state = expectChecksum
		} else {
			sec.state = expectData
		}
		return SectionEvent{Kind: EventCount, Word: word, Gap: gap}, nil

	case expectData:
		ev := SectionEvent{Kind: EventData, Word: word, Gap: gap, Index: sec.taken}
		sec.sum = AddChecksum(sec.sum, word)
		sec.taken++
		if sec.taken == sec.count {
			sec.state = expectChecksum
		}
		return ev, nil

	default: // expectChecksum
		if err := VerifyChecksum(word, sec.sum); err != nil {
			return SectionEvent{}, err
		}
		sec.state = sectionDone
		return SectionEvent{Kind: EventChecksum, Word: word, Gap: gap}, nil
	}
}
