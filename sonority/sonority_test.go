package sonority

import (
	"bytes"
	"testing"

	"github.com/matthunz/staff/midi"
	"github.com/matthunz/staff/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// C major for a quarter, then F major (second inversion) for a quarter.
func twoChordFile(t *testing.T) *smf.SMF {
	var tr smf.Track
	for _, key := range []uint8{64, 60, 67} {
		tr.Add(0, gm.NoteOn(0, key, 100))
	}
	tr.Add(960, gm.NoteOff(0, 60))
	tr.Add(0, gm.NoteOff(0, 64))
	tr.Add(0, gm.NoteOff(0, 67))
	for _, key := range []uint8{60, 65, 69} {
		tr.Add(0, gm.NoteOn(0, key, 100))
	}
	tr.Add(960, gm.NoteOff(0, 60))
	tr.Add(0, gm.NoteOn(0, 65, 0))
	tr.Add(0, gm.NoteOff(0, 69))
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	read, err := midi.ReadMidi(&buf)
	require.NoError(t, err)
	return read
}

func TestExtractFindsHeldChords(t *testing.T) {
	sonorities, err := Extract(twoChordFile(t))
	require.NoError(t, err)

	require.Len(t, sonorities, 2)
	assert.Equal(t, model.Notes{60, 64, 67}, sonorities[0].Notes)
	assert.Equal(t, model.Notes{60, 65, 69}, sonorities[1].Notes)
	assert.Equal(t, uint32(0), sonorities[0].Offset)
	assert.Less(t, sonorities[0].Offset, sonorities[1].Offset)
}

func TestNameReadsLowestNoteAsRoot(t *testing.T) {
	sonorities, err := Extract(twoChordFile(t))
	require.NoError(t, err)

	assert.Equal(t, "C", Name(sonorities[0]).String())
	assert.Equal(t, "Csus4(no5)", Name(sonorities[1]).String())
}

func TestNameable(t *testing.T) {
	assert.False(t, Nameable(model.Sonority{Notes: model.Notes{60}}))
	assert.True(t, Nameable(model.Sonority{Notes: model.Notes{60, 67}}))
	assert.False(t, Nameable(model.Sonority{Notes: make(model.Notes, 17)}))
}
