package index

import (
	"path/filepath"
	"testing"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/midi"
	"github.com/matthunz/staff/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChords(t *testing.T, dir string, symbols ...string) []string {
	var paths []string
	for i, s := range symbols {
		c, err := chord.Parse(s)
		require.NoError(t, err)
		path := filepath.Join(dir, string(rune('a'+i))+".mid")
		require.NoError(t, midi.WriteChordFile(path, c))
		paths = append(paths, path)
	}
	return paths
}

func TestBuildAndSearch(t *testing.T) {
	dir := t.TempDir()
	paths := writeChords(t, dir, "C#m7", "G", "Db")
	paths = append(paths, filepath.Join(dir, "missing.mid"))

	idx := Build(CreateFileNumMap(paths))
	assert.NotEmpty(t, idx.ID)
	assert.Len(t, idx.Files, 3)

	symbol, found, err := Search(idx, "Db")
	require.NoError(t, err)
	assert.Equal(t, "C#", symbol)
	require.Len(t, found, 1)
	assert.Equal(t, uint32(2), found[0].FileNum)
	assert.Equal(t, model.Notes{61, 65, 68}, found[0].Notes)

	_, found, err = Search(idx, "C#m7")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, found, err = Search(idx, "Cm")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, _, err = Search(idx, "Hm")
	assert.ErrorIs(t, err, chord.ErrInvalidRoot)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	idx := Build(CreateFileNumMap(writeChords(t, dir, "Am")))

	path := filepath.Join(dir, "out", "index.dat")
	require.NoError(t, Save(path, idx))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, idx, loaded)

	_, err = Load(filepath.Join(dir, "nothing.dat"))
	assert.ErrorIs(t, err, ErrNotIndexed)
}
