package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNatural(t *testing.T) {
	n, err := ParseNatural('G')
	require.NoError(t, err)
	assert.Equal(t, G, n)
	assert.Equal(t, PitchG, n.Pitch())

	_, err = ParseNatural('H')
	assert.ErrorIs(t, err, ErrInvalidNatural)
	_, err = ParseNatural('c')
	assert.ErrorIs(t, err, ErrInvalidNatural)
}

func TestAccidentalsResolvePitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(PitchE, DoubleSharp(D).Pitch())
	assert.Equal(PitchCSharp, Sharp(C).Pitch())
	assert.Equal(PitchASharp, Flat(B).Pitch())
	assert.Equal(PitchB, Flat(C).Pitch())
	assert.Equal(PitchC, Sharp(B).Pitch())
	assert.Equal(PitchA, DoubleFlat(B).Pitch())
}

func TestPitchTransposeWraps(t *testing.T) {
	assert.Equal(t, PitchC, PitchB.Transpose(1))
	assert.Equal(t, PitchB, PitchC.Transpose(-1))
	assert.Equal(t, PitchG, PitchC.Transpose(31))
	assert.Equal(t, "F#", PitchFSharp.String())
}
