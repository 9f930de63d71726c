/*
 * hctape - Static note name and articulation tables.
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

// Chromatic note names indexed by semitone. Major key spellings only.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// RestName is printed in place of a note name for the two rest pitches.
const RestName = "r"

// Articulation styles in table order.
const (
	Normal Articulation = iota
	Quarter
	Half
	Staccato
	Legato
)

var articulationNames = [5]string{"normal", "quarter", "half", "staccato", "legato"}

// The raw articulation field is a composite of four spread bits; only five
// of its values were ever assigned a style.
var articulationByBits = map[int]Articulation{
	0o00: Normal,
	0o01: Quarter,
	0o02: Half,
	0o04: Staccato,
	0o10: Legato,
}
