package index

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/midi"
	"github.com/matthunz/staff/model"
	"github.com/matthunz/staff/sonority"
	"github.com/matthunz/staff/util"
	"github.com/sirupsen/logrus"
)

var ErrNotIndexed = errors.New("index has not been built")

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

func New() model.Index {
	return model.Index{
		ID:      uuid.New().String(),
		Files:   make(model.FileNumToMidiPath),
		Symbols: make(model.SymbolToOccurrences),
	}
}

// AddFile names every sonority of one MIDI file into idx.
func AddFile(idx model.Index, fileNum uint32, path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	sonorities, err := sonority.Extract(parsed)
	if err != nil {
		return err
	}

	idx.Files[fileNum] = path
	for _, so := range sonorities {
		if !sonority.Nameable(so) {
			continue
		}
		symbol := sonority.Name(so).String()
		idx.Symbols[symbol] = append(idx.Symbols[symbol], model.Occurrence{
			FileNum: fileNum,
			Offset:  so.Offset,
			Notes:   so.Notes,
		})
	}
	return nil
}

// Build indexes every file. Files that fail to parse are logged and skipped.
func Build(files model.FileNumToMidiPath) model.Index {
	idx := New()
	keys := util.GetSortedKeys(files)
	for i, num := range keys {
		log := logrus.WithFields(logrus.Fields{"file": files[num], "index": idx.ID})
		log.Debugf("Processing %v of %v midi files", i+1, len(keys))
		if err := AddFile(idx, num, files[num]); err != nil {
			log.WithError(err).Warn("Skipping file")
		}
	}
	logrus.WithFields(logrus.Fields{
		"index":   idx.ID,
		"files":   len(idx.Files),
		"symbols": len(idx.Symbols),
	}).Info("Built index")
	return idx
}

func Save(path string, idx model.Index) error {
	return util.CreateBinary(path, idx)
}

func Load(path string) (model.Index, error) {
	idx, err := util.ReadBinary[model.Index](path)
	if err != nil {
		return model.Index{}, fmt.Errorf("%w: %v", ErrNotIndexed, err)
	}
	return idx, nil
}

// Search finds occurrences of symbol. The symbol is normalized first, so
// "Db" finds sonorities named "C#".
func Search(idx model.Index, symbol string) (string, []model.Occurrence, error) {
	c, err := chord.Parse(symbol)
	if err != nil {
		return "", nil, err
	}
	normalized := c.String()
	return normalized, idx.Symbols[normalized], nil
}
