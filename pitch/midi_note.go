package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/matthunz/staff/interval"
)

var ErrInvalidMidiNote = errors.New("invalid midi note")

// Octave follows the MIDI convention where middle C is C4.
type Octave int8

const (
	OctaveNegOne Octave = iota - 1
	Octave0
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
	Octave6
	Octave7
	Octave8
	Octave9
)

// MidiNote is a MIDI note number, 60 being C4.
type MidiNote uint8

func NewMidiNote(p Pitch, o Octave) MidiNote {
	return MidiNote((int(o)+1)*12 + int(p))
}

func (m MidiNote) Pitch() Pitch {
	return Pitch(m % 12)
}

func (m MidiNote) Octave() Octave {
	return Octave(int(m)/12 - 1)
}

// Add transposes the note up by i. Staying within 0-127 is up to the caller.
func (m MidiNote) Add(i interval.Interval) MidiNote {
	return m + MidiNote(i)
}

// AbsDiff is the unsigned distance between two notes.
func (m MidiNote) AbsDiff(other MidiNote) interval.Interval {
	if m < other {
		return interval.Interval(other - m)
	}
	return interval.Interval(m - other)
}

func (m MidiNote) String() string {
	return m.Pitch().String() + strconv.Itoa(int(m.Octave()))
}

// ParseMidiNote reads either a note number ("60") or a spelled note with
// octave ("C4", "Eb3", "F##-1").
func ParseMidiNote(s string) (MidiNote, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if n > 127 {
			return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidMidiNote, s)
		}
		return MidiNote(n), nil
	}

	runes := []rune(s)
	if len(runes) < 2 {
		return 0, fmt.Errorf("%w: %q is too short", ErrInvalidMidiNote, s)
	}
	natural, err := ParseNatural(unicode.ToUpper(runes[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMidiNote, err)
	}

	note := Note{Natural: natural}
	i := 1
	for ; i < len(runes) && (runes[i] == 'b' || runes[i] == '#'); i++ {
		if runes[i] == 'b' {
			note.Accidental--
		} else {
			note.Accidental++
		}
	}
	if note.Accidental < DoubleFlatAccidental || note.Accidental > DoubleSharpAccidental {
		return 0, fmt.Errorf("%w: too many accidentals in %q", ErrInvalidMidiNote, s)
	}

	octave, err := strconv.Atoi(string(runes[i:]))
	if err != nil {
		return 0, fmt.Errorf("%w: bad octave in %q", ErrInvalidMidiNote, s)
	}

	// spelled notes may cross the octave boundary, e.g. Cb4 is B3
	value := (octave+1)*12 + int(natural.Pitch()) + int(note.Accidental)
	if value < 0 || value > 127 {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidMidiNote, s)
	}
	return MidiNote(value), nil
}
