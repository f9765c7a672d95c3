package reflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

func TestReflect(t *testing.T) {
	p, err := permutator.New(cryptors.Upper, "EJMZALYXVBWFCRQUONTSPIKHGD")
	require.NoError(t, err)
	r, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Reflect(0))
	for i := 0; i < r.Size(); i++ {
		assert.Equal(t, i, r.Reflect(r.Reflect(i)))
	}
}

func TestNewRejectsNonInvolution(t *testing.T) {
	p, err := permutator.New(cryptors.Upper, "EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	require.NoError(t, err)
	_, err = New(p)
	assert.ErrorIs(t, err, cryptors.ErrInvalidConfig)
}
