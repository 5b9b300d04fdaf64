package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthunz/staff/interval"
	"github.com/matthunz/staff/pitch"
)

var (
	ErrEmpty        = errors.New("empty chord symbol")
	ErrInvalidRoot  = errors.New("invalid chord root")
	ErrUnknownToken = errors.New("unknown chord token")
)

// Parse reads a chord symbol such as "C", "D##", "Cm7", "Cb5", "Gm/C" or
// "Em/C(no5)". Symbols carry no octave, so the root is placed in octave 4 and
// a slash bass is placed below the root.
//
// Anything Parse does not recognize is an error; no partial chord is returned.
func Parse(s string) (Chord, error) {
	if s == "" {
		return Chord{}, ErrEmpty
	}

	p := parser{s: s}
	note, err := p.note()
	if err != nil {
		return Chord{}, err
	}

	root := pitch.NewMidiNote(note.Pitch(), pitch.Octave4)
	var c Chord
	if !p.peek("maj7") && p.accept("m") {
		c = Minor(root)
	} else {
		c = Major(root)
	}

	var bass *pitch.Note
	for !p.done() {
		switch {
		case p.accept("b5"):
			c.Intervals.Push(interval.Tritone)
		case p.accept("7"):
			c.Intervals.Push(interval.MinorSeventh)
		case p.accept("maj7"):
			c.Intervals.Push(interval.MajorSeventh)
		case p.accept("sus2"):
			c = suspend(c, interval.MajorSecond)
		case p.accept("sus4"):
			c = suspend(c, interval.PerfectFourth)
		case p.accept("(no5)"):
			c.Intervals.Remove(interval.PerfectFifth)
		case bass == nil && p.accept("/"):
			n, err := p.note()
			if err != nil {
				return Chord{}, fmt.Errorf("bass of %q: %w", s, err)
			}
			bass = &n
		default:
			return Chord{}, fmt.Errorf("%w %q in %q", ErrUnknownToken, p.rest(), s)
		}
	}

	if bass != nil {
		c = invert(c, bass.Pitch())
	}
	return c, nil
}

func suspend(c Chord, i interval.Interval) Chord {
	c.Intervals.Remove(interval.MinorThird)
	c.Intervals.Remove(interval.MajorThird)
	return c.Interval(i)
}

// invert moves a root position chord onto a bass below its root.
func invert(c Chord, bassPitch pitch.Pitch) Chord {
	bass := pitch.NewMidiNote(bassPitch, c.Root.Octave())
	for bass >= c.Root {
		bass -= 12
	}

	intervals := interval.NewSet(interval.Unison)
	for _, i := range c.Intervals.Slice() {
		intervals.Push(c.Root.Add(i).AbsDiff(bass))
	}
	c.Intervals = intervals
	return c.WithInversion(bass)
}

type parser struct {
	s   string
	pos int
}

func (p *parser) done() bool {
	return p.pos >= len(p.s)
}

func (p *parser) rest() string {
	return p.s[p.pos:]
}

func (p *parser) peek(tok string) bool {
	return strings.HasPrefix(p.rest(), tok)
}

func (p *parser) accept(tok string) bool {
	if !p.peek(tok) {
		return false
	}
	p.pos += len(tok)
	return true
}

// note reads a natural letter and its accidental. A "b" directly followed by
// "5" is left for the flat five token, so "Cb5" is C with a flat five.
func (p *parser) note() (pitch.Note, error) {
	if p.done() {
		return pitch.Note{}, fmt.Errorf("%w: missing note letter", ErrInvalidRoot)
	}
	natural, err := pitch.ParseNatural(rune(p.s[p.pos]))
	if err != nil {
		return pitch.Note{}, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	p.pos++

	switch {
	case p.accept("##"):
		return pitch.DoubleSharp(natural), nil
	case p.accept("#"):
		return pitch.Sharp(natural), nil
	case p.peek("bb") && !p.peek("bb5"):
		p.pos += 2
		return pitch.DoubleFlat(natural), nil
	case p.peek("b") && !p.peek("b5"):
		p.pos++
		return pitch.Flat(natural), nil
	}
	return pitch.Note{Natural: natural}, nil
}
