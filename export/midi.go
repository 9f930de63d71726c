/*
 * hctape - Standard MIDI file export of a decoded score.
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

// Package export renders decoded voices as a standard MIDI file, one
// track per voice.
package export

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/joeblynch/pdp-1-boc/score"
	"github.com/joeblynch/pdp-1-boc/tape"
)

const (
	ticksPerQuarter = 96
	wholeTicks      = 4 * ticksPerQuarter
	velocity        = 100
)

// WriteSMF renders voices as a format 1 SMF stream. Tempo words become
// tempo meta events, rests become delta time, and the measure separators
// carry no time of their own.
func WriteSMF(w io.Writer, voices []*tape.Voice) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	for _, voice := range voices {
		track, err := voiceTrack(voice)
		if err != nil {
			return err
		}
		s.Add(track)
	}

	_, err := s.WriteTo(w)
	return err
}

func voiceTrack(voice *tape.Voice) (smf.Track, error) {
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("voice %d", voice.Number)))

	delta := uint32(0)
	for _, word := range voice.Notes {
		ev, err := score.Decode(word)
		if err != nil {
			return track, fmt.Errorf("voice %d: %w", voice.Number, err)
		}

		switch ev.Kind {
		case score.KindTempo:
			track.Add(delta, smf.MetaTempo(float64(score.TempoBPM(ev.TempoRaw))))
			delta = 0

		case score.KindNote:
			ticks := durationTicks(ev.Note)
			if ev.Note.Rest {
				delta += ticks
				continue
			}
			track.Add(delta, midi.NoteOn(0, key(ev.Note), velocity))
			track.Add(ticks, midi.NoteOff(0, key(ev.Note)))
			delta = 0
		}
	}

	track.Close(0)
	return track, nil
}

// key maps the tape pitch space to MIDI, anchoring octave 1 C at key 24.
func key(note *score.Note) uint8 {
	k := 24 + note.NotePitch
	if k > 127 {
		k = 127
	}
	return uint8(k)
}

// durationTicks converts a 1/N whole note duration to MIDI ticks.
func durationTicks(note *score.Note) uint32 {
	if note.NoteDuration == 0 {
		return 0
	}
	return uint32(wholeTicks / note.NoteDuration)
}
