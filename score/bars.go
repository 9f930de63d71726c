/*
 * hctape - Bars section expansion against the voice note buffer.
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
	"errors"
	"fmt"

	"github.com/joeblynch/pdp-1-boc/tape"
)

// ErrMisplacedSentinel means an explicit separator appeared in a bars
// section before its final data word.
var ErrMisplacedSentinel = errors.New("measure separator before final bars word")

// BarIndexError reports a bar word pointing past the voice note buffer.
type BarIndexError struct {
	Index int // offending note index
	Limit int // exclusive upper bound
}

func (e *BarIndexError) Error() string {
	return fmt.Sprintf("note index %d out of range", e.Index)
}

// Measure is one bar: the notes running from a bar word's index to the
// next measure separator in the note buffer.
type Measure struct {
	Number int // 1-based measure number within the voice
	Index  int // starting index into the note buffer
	Notes  []*Note
}

// ExpandBars resolves every bar word of a voice against its note buffer.
// The indexable range excludes the buffer's final word, matching the
// historical decoder: the last notes section word is the closing measure
// separator, never a measure start.
func ExpandBars(notes, bars []uint32) ([]Measure, error) {
	limit := len(notes) - 1
	measures := make([]Measure, 0, len(bars))

	for i, word := range bars {
		if word == tape.SentinelWord {
			if i != len(bars)-1 {
				return nil, ErrMisplacedSentinel
			}
			continue
		}

		index := int(word)
		if index >= limit || limit < 0 {
			return nil, &BarIndexError{Index: index, Limit: limit}
		}

		measure := Measure{Number: i + 1, Index: index}
		for j := index; j < limit && notes[j] != tape.SentinelWord; j++ {
			ev, err := Decode(notes[j])
			if err != nil {
				return nil, err
			}
			if ev.Kind == KindNote {
				measure.Notes = append(measure.Notes, ev.Note)
			}
		}
		measures = append(measures, measure)
	}
	return measures, nil
}

// VoiceScore is the fully decoded content of one voice.
type VoiceScore struct {
	Events   []Event // notes section words in order
	Tempos   []int   // raw tempo values in encounter order
	Measures []Measure
}

// DecodeVoice decodes a voice's notes section and expands its bars.
func DecodeVoice(voice *tape.Voice) (*VoiceScore, error) {
	vs := &VoiceScore{Events: make([]Event, 0, len(voice.Notes))}
	for _, word := range voice.Notes {
		ev, err := Decode(word)
		if err != nil {
			return nil, fmt.Errorf("voice %d: %w", voice.Number, err)
		}
		if ev.Kind == KindTempo {
			vs.Tempos = append(vs.Tempos, ev.TempoRaw)
		}
		vs.Events = append(vs.Events, ev)
	}
	measures, err := ExpandBars(voice.Notes, voice.Bars)
	if err != nil {
		return nil, fmt.Errorf("voice %d: %w", voice.Number, err)
	}
	vs.Measures = measures
	return vs, nil
}
