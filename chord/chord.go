package chord

import (
	"github.com/matthunz/staff/interval"
	"github.com/matthunz/staff/pitch"
	"golang.org/x/exp/slices"
)

// Chord is a root, an optional bass note and the sounding intervals.
//
// Intervals are measured from the lowest note: the bass when there is one,
// otherwise the root. Use RootIntervals for the root-relative view.
type Chord struct {
	Root        pitch.MidiNote
	Bass        *pitch.MidiNote
	IsInversion bool
	Intervals   interval.Set
}

// New returns an empty chord on root. Nothing sounds until intervals are added.
func New(root pitch.MidiNote) Chord {
	return Chord{Root: root}
}

func (c Chord) Interval(i interval.Interval) Chord {
	c.Intervals.Push(i)
	return c
}

// WithUnison marks the root itself as sounding.
func (c Chord) WithUnison() Chord {
	return c.Interval(interval.Unison)
}

func (c Chord) WithBass(bass pitch.MidiNote) Chord {
	c.Bass = &bass
	return c
}

func (c Chord) WithInversion(bass pitch.MidiNote) Chord {
	c.IsInversion = true
	return c.WithBass(bass)
}

func (c Chord) WithMajorSeventh() Chord {
	return c.Interval(interval.MajorSeventh)
}

func (c Chord) WithMajorNinth() Chord {
	return c.Interval(interval.MajorNinth)
}

func triad(root pitch.MidiNote, third, fifth interval.Interval) Chord {
	return New(root).WithUnison().Interval(third).Interval(fifth)
}

// Major builds a root position major triad. Further intervals can be chained:
//
//	chord.Major(c4).WithMajorSeventh().WithMajorNinth() // C E G B D
func Major(root pitch.MidiNote) Chord {
	return triad(root, interval.MajorThird, interval.PerfectFifth)
}

func Minor(root pitch.MidiNote) Chord {
	return triad(root, interval.MinorThird, interval.PerfectFifth)
}

func Diminished(root pitch.MidiNote) Chord {
	return triad(root, interval.MinorThird, interval.Tritone)
}

func Augmented(root pitch.MidiNote) Chord {
	return triad(root, interval.MajorThird, interval.MinorSixth)
}

func Sus2(root pitch.MidiNote) Chord {
	return triad(root, interval.MajorSecond, interval.PerfectFifth)
}

func Sus4(root pitch.MidiNote) Chord {
	return triad(root, interval.PerfectFourth, interval.PerfectFifth)
}

// Seventh is the dominant seventh.
func Seventh(root pitch.MidiNote) Chord {
	return Major(root).Interval(interval.MinorSeventh)
}

func MajorSeventh(root pitch.MidiNote) Chord {
	return Major(root).WithMajorSeventh()
}

func MinorSeventh(root pitch.MidiNote) Chord {
	return Minor(root).Interval(interval.MinorSeventh)
}

func HalfDiminished(root pitch.MidiNote) Chord {
	return Diminished(root).Interval(interval.MinorSeventh)
}

// FromMIDI reads notes, lowest first, as a chord on root.
//
// The first note is the bass. When it differs from root the chord is an
// inversion. The unison is always counted as sounding. FromMIDI reports false
// only when notes is empty.
func FromMIDI(root pitch.MidiNote, notes []pitch.MidiNote) (Chord, bool) {
	if len(notes) == 0 {
		return Chord{}, false
	}

	c := New(root)
	if bass := notes[0]; bass != root {
		c.Bass = &bass
		c.IsInversion = true
	}
	c.Intervals.Push(interval.Unison)

	lowest := c.lowest()
	for _, note := range notes[1:] {
		c.Intervals.Push(note.AbsDiff(lowest))
	}
	return c, true
}

// FromNotes reads the first note as both root and bass.
func FromNotes(notes []pitch.MidiNote) Chord {
	if len(notes) == 0 {
		return New(0).WithUnison()
	}
	c, _ := FromMIDI(notes[0], notes)
	return c
}

// Chords returns one reading of notes per sounding note taken as the root,
// in the order the notes were given.
func Chords(notes []pitch.MidiNote) []Chord {
	var res []Chord
	for _, root := range notes {
		c, ok := FromMIDI(root, notes)
		if !ok {
			break
		}
		res = append(res, c)
	}
	return res
}

func (c Chord) lowest() pitch.MidiNote {
	if c.Bass != nil {
		return *c.Bass
	}
	return c.Root
}

// RootIntervals re-anchors the stored intervals on the root.
func (c Chord) RootIntervals() interval.Set {
	lowest := c.lowest()
	return c.Intervals.Map(func(i interval.Interval) interval.Interval {
		return lowest.Add(i).AbsDiff(c.Root)
	})
}

func (c Chord) MIDINotes() *MIDINotes {
	return &MIDINotes{base: c.lowest(), intervals: c.Intervals}
}

// Notes materializes the chord, lowest note first.
func (c Chord) Notes() []pitch.MidiNote {
	var res []pitch.MidiNote
	it := c.MIDINotes()
	for {
		note, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, note)
	}
}

func (c Chord) Equal(other Chord) bool {
	if c.Root != other.Root || c.IsInversion != other.IsInversion {
		return false
	}
	if (c.Bass == nil) != (other.Bass == nil) {
		return false
	}
	if c.Bass != nil && *c.Bass != *other.Bass {
		return false
	}
	return slices.Equal(c.Intervals.Slice(), other.Intervals.Slice())
}

// MIDINotes yields the notes of a chord in ascending order, once.
type MIDINotes struct {
	base      pitch.MidiNote
	intervals interval.Set
}

func (m *MIDINotes) Next() (pitch.MidiNote, bool) {
	i, ok := m.intervals.Next()
	if !ok {
		return 0, false
	}
	return m.base.Add(i), true
}
