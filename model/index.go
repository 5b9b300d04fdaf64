package model

type FileNumToMidiPath = map[uint32]string

type SymbolToOccurrences = map[string][]Occurrence

type Index struct {
	ID      string
	Files   FileNumToMidiPath
	Symbols SymbolToOccurrences
}
