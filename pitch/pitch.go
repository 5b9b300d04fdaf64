package pitch

import (
	"errors"
	"fmt"
)

var ErrInvalidNatural = errors.New("invalid natural note")

// Natural is one of the seven white-key note letters.
type Natural uint8

const (
	C Natural = iota
	D
	E
	F
	G
	A
	B
)

var naturalLetters = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

var naturalPitches = [7]Pitch{0, 2, 4, 5, 7, 9, 11}

func ParseNatural(r rune) (Natural, error) {
	for n, letter := range naturalLetters {
		if rune(letter) == r {
			return Natural(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNatural, r)
}

func (n Natural) Pitch() Pitch {
	return naturalPitches[n]
}

func (n Natural) String() string {
	return string(naturalLetters[n])
}

type Accidental int8

const (
	DoubleFlatAccidental  Accidental = -2
	FlatAccidental        Accidental = -1
	NoAccidental          Accidental = 0
	SharpAccidental       Accidental = 1
	DoubleSharpAccidental Accidental = 2
)

// Note is a spelled note name without octave.
type Note struct {
	Natural    Natural
	Accidental Accidental
}

func Flat(n Natural) Note { return Note{n, FlatAccidental} }

func DoubleFlat(n Natural) Note { return Note{n, DoubleFlatAccidental} }

func Sharp(n Natural) Note { return Note{n, SharpAccidental} }

func DoubleSharp(n Natural) Note { return Note{n, DoubleSharpAccidental} }

// Pitch resolves the spelling to a pitch class, wrapping across C.
func (n Note) Pitch() Pitch {
	return n.Natural.Pitch().Transpose(int(n.Accidental))
}

// Pitch is a pitch class, 0 (C) to 11 (B).
type Pitch uint8

const (
	PitchC Pitch = iota
	PitchCSharp
	PitchD
	PitchDSharp
	PitchE
	PitchF
	PitchFSharp
	PitchG
	PitchGSharp
	PitchA
	PitchASharp
	PitchB
)

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Transpose moves the pitch class by semitones, up or down, modulo 12.
func (p Pitch) Transpose(semitones int) Pitch {
	return Pitch(((int(p)+semitones)%12 + 12) % 12)
}

func (p Pitch) String() string {
	return pitchNames[p%12]
}
