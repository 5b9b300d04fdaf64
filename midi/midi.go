package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/constants"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidi parses a standard MIDI file. The smf reader can panic on
// malformed input, so panics are turned into errors.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

// ChordTrack holds every note of c for ticks, all struck together on channel 0.
func ChordTrack(c chord.Chord, ticks uint32) smf.Track {
	notes := c.Notes()

	var tr smf.Track
	for _, n := range notes {
		tr.Add(0, gm.NoteOn(0, uint8(n), constants.DefaultVelocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = ticks
		}
		tr.Add(delta, gm.NoteOff(0, uint8(n)))
	}
	tr.Close(0)
	return tr
}

// WriteChord writes c as a single track file holding the chord for a whole note.
func WriteChord(w io.Writer, c chord.Chord) error {
	if len(c.Notes()) == 0 {
		return errors.New("chord has no notes to write")
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := s.Add(ChordTrack(c, 4*constants.TicksPerQuarter)); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

func WriteChordFile(path string, c chord.Chord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create midi file: %w", err)
	}
	if err := WriteChord(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
