package interval

import "strconv"

// Interval is a distance between two pitches in semitones.
type Interval uint

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
	MinorNinth
	MajorNinth
)

const (
	Eleventh   Interval = 17
	Thirteenth Interval = 21
)

// Semitones returns the interval as a plain semitone count.
func (i Interval) Semitones() uint {
	return uint(i)
}

func (i Interval) Add(other Interval) Interval {
	return i + other
}

type degree struct {
	flat   bool
	number int
}

var degrees = [12]degree{
	{false, 1}, {true, 2}, {false, 2}, {true, 3}, {false, 3}, {false, 4},
	{true, 5}, {false, 5}, {true, 6}, {false, 6}, {true, 7}, {false, 7},
}

// String labels the interval as a scale degree: 1, b3, 5, b7, 9, 13 and so on.
func (i Interval) String() string {
	d := degrees[i%12]
	label := strconv.Itoa(d.number + 7*int(i/12))
	if d.flat {
		return "b" + label
	}
	return label
}
