package model

type Notes = []uint8

// Sonority is the set of notes held at one moment of a MIDI file.
type Sonority struct {
	// storing it in millis for space savings
	Offset uint32
	Notes  Notes
}

// Occurrence places a named sonority in an indexed file.
type Occurrence struct {
	FileNum uint32
	Offset  uint32
	Notes   Notes
}
