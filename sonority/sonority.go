package sonority

import (
	"fmt"
	"sort"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/constants"
	"github.com/matthunz/staff/model"
	"github.com/matthunz/staff/pitch"
	"github.com/matthunz/staff/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	// microseconds from the start of the file
	offset    int64
	isNoteOff bool
	note      uint8
}

func getSonority(pressed map[uint8]bool, offset int64) model.Sonority {
	return model.Sonority{
		// millis is accurate enough and gives us 1200 hours in 32 bits
		Offset: uint32(offset / 1000),
		Notes:  util.GetSortedKeys(pressed),
	}
}

func reduceEvents(s *smf.SMF) []reducedEvent {
	var res []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// a note on without velocity is a note off
				res = append(res, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: velocity == 0, note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: true, note: key})
			}
		}
	}

	// smaller offsets first, then note offs before note ons
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].offset != res[j].offset {
			return res[i].offset < res[j].offset
		}
		return res[i].isNoteOff && !res[j].isNoteOff
	})
	return res
}

// Extract returns the notes held at every moment the held set changes,
// in time order. Notes are ascending, so the first one is the bass.
func Extract(s *smf.SMF) (res []model.Sonority, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("could not extract sonorities: %v", r)
		}
	}()

	offsetToSonority := make(map[int64]model.Sonority)
	pressed := make(map[uint8]bool)
	for _, evt := range reduceEvents(s) {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		offsetToSonority[evt.offset] = getSonority(pressed, evt.offset)
	}

	for _, offset := range util.GetSortedKeys(offsetToSonority) {
		if so := offsetToSonority[offset]; len(so.Notes) > 0 {
			res = append(res, so)
		}
	}
	return res, nil
}

// Nameable reports whether a sonority is worth naming.
func Nameable(so model.Sonority) bool {
	return len(so.Notes) >= constants.MinSonoritySize && len(so.Notes) <= constants.MaxSonoritySize
}

// MidiNotes converts raw note numbers, lowest first.
func MidiNotes(notes model.Notes) []pitch.MidiNote {
	res := make([]pitch.MidiNote, len(notes))
	for i, n := range notes {
		res[i] = pitch.MidiNote(n)
	}
	return res
}

// Name reads the sonority with its lowest note as the root.
func Name(so model.Sonority) chord.Chord {
	return chord.FromNotes(MidiNotes(so.Notes))
}
