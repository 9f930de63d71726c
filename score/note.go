/*
 * hctape - Note word semantic model.
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

package score

import (
	"fmt"

	"github.com/joeblynch/pdp-1-boc/tape"
)

// Event kinds produced by Decode.
const (
	KindNote int = 1 + iota
	KindTempo
	KindMeasureEnd
)

// Articulation style decoded from the spread articulation bits.
type Articulation int

// Name returns the style's table name.
func (a Articulation) Name() string {
	if a < 0 || int(a) >= len(articulationNames) {
		return "?"
	}
	return articulationNames[a]
}

// Note is one fully decoded note or rest.
type Note struct {
	Articulation Articulation
	ArtBits      int  // raw composite articulation field
	Triplet      bool // part of a triplet group
	Pitch        int  // raw six bit pitch field; 0 and 1 are rests
	Duration     int  // raw seven bit duration field
	NoteDuration int  // 1/N of a whole note
	NotePitch    int  // Pitch above the two rest codes; 0 is C1
	Octave       int  // 1-based octave, 0 for a rest
	SemiTone     int  // chromatic index within the octave
	Name         string
	Rest         bool
}

// Event is the classification of one notes section word.
type Event struct {
	Kind     int
	Word     uint32
	Note     *Note // KindNote only
	TempoRaw int   // KindTempo only
}

// ArticulationError reports a composite articulation value with no
// assigned style: the note encoding is malformed.
type ArticulationError struct {
	Value int
}

func (e *ArticulationError) Error() string {
	return fmt.Sprintf("invalid articulation: %d", e.Value)
}

// Decode classifies a notes section data word by its top bits: the measure
// separator sentinel, a tempo control word, or a note.
func Decode(word uint32) (Event, error) {
	switch {
	case word == tape.SentinelWord:
		return Event{Kind: KindMeasureEnd, Word: word}, nil
	case tape.IsTempoWord(word):
		return Event{Kind: KindTempo, Word: word, TempoRaw: int(tape.TempoRaw(word))}, nil
	}
	note, err := parseNote(word)
	if err != nil {
		return Event{}, err
	}
	return Event{Kind: KindNote, Word: word, Note: note}, nil
}

// parseNote unpacks the bit fields of a note word. The articulation field
// only means anything for pitched notes; rests carry pitch codes 0 and 1
// and ignore it, as the original decoder did.
func parseNote(word uint32) (*Note, error) {
	note := &Note{
		ArtBits:  int(((word >> 14) & 0o14) | ((word & 0o060000) >> 13)),
		Triplet:  (word>>15)&1 != 0,
		Pitch:    int((word >> 7) & 0o77),
		Duration: int(word & 0o177),
	}

	// Duration is 1/N of a whole note: 192 counts per whole, halved for
	// the three-in-the-time-of-two triplet case.
	div := note.Duration * 3
	if note.Triplet {
		div = note.Duration * 2
	}
	if div > 0 {
		note.NoteDuration = 192 / div
	}

	if note.Pitch > 1 {
		art, ok := articulationByBits[note.ArtBits]
		if !ok {
			return nil, &ArticulationError{Value: note.ArtBits}
		}
		note.Articulation = art
		note.NotePitch = note.Pitch - 2
		note.Octave = note.NotePitch/12 + 1
		note.SemiTone = note.NotePitch % 12
		note.Name = noteNames[note.SemiTone]
	} else {
		note.Rest = true
		note.Name = RestName
	}
	return note, nil
}

// TempoNumerator reproduces the historical tempo formula. Several
// derivations of this constant disagree (1126, 2861, 2859 per quarter
// note across sources), so the display basis can be swapped from the
// defaults file; the value below should be treated as approximate.
var TempoNumerator = 11436

// CHMSpeedMultiplier corrects for the restored CHM PDP-1 running about
// six percent slower than nominal.
const CHMSpeedMultiplier = 0.94

// TempoBPM converts a raw tempo value to an approximate quarter-note BPM.
func TempoBPM(raw int) int {
	if raw == 0 {
		return 0
	}
	return TempoNumerator / raw
}
