package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalsCompose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(PerfectFifth, MajorThird.Add(MinorThird))
	assert.Equal(Octave, PerfectFifth.Add(PerfectFourth))
	assert.Equal(Thirteenth, Octave.Add(MajorSixth))
	assert.Equal(uint(21), Thirteenth.Semitones())
}

func TestIntervalLabels(t *testing.T) {
	cases := map[Interval]string{
		Unison:       "1",
		MinorThird:   "b3",
		MajorThird:   "3",
		Tritone:      "b5",
		PerfectFifth: "5",
		MinorSeventh: "b7",
		MajorSeventh: "7",
		Octave:       "8",
		MinorNinth:   "b9",
		MajorNinth:   "9",
		Eleventh:     "11",
		Thirteenth:   "13",
	}
	for i, want := range cases {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, i.String())
		})
	}
}
