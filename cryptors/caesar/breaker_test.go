package caesar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
)

const (
	hawking = "Zyp cpxpxmpc ez wzzv fa le esp delcd lyo yze ozhy le jzfc qppe Ehz ypgpc rtgp fa hzcv Hzcv rtgpd jzf xplytyr lyo afcazdp lyo wtqp td pxaej hteszfe te Escpp tq jzf lcp wfnvj pyzfrs ez qtyo wzgp cpxpxmpc te td espcp lyo ozye esczh te lhlj Depaspy Slhvtyr"
	decoded = "One remember to look up at the stars and not down at your feet Two never give up work Work gives you meaning and purpose and life is empty without it Three if you are lucky enough to find love remember it is there and dont throw it away Stephen Hawking"
)

func TestGuessShift(t *testing.T) {
	g, err := GuessShift(hawking)
	require.NoError(t, err)
	assert.Equal(t, 'p', g.Letter)
	assert.Equal(t, 27, g.Count)
	assert.Equal(t, 11, g.Shift)
	assert.Equal(t, decoded, g.Plaintext)
}

func TestGuessShiftUpperCase(t *testing.T) {
	// H stands for E, a shift of 3.
	g, err := GuessShift("HHH DEF")
	require.NoError(t, err)
	assert.Equal(t, 'H', g.Letter)
	assert.Equal(t, 3, g.Shift)
	assert.Equal(t, "EEE ABC", g.Plaintext)

	// A most frequent letter before e in the alphabet wraps around.
	g, err = GuessShift("Bbb")
	require.NoError(t, err)
	assert.Equal(t, 'b', g.Letter)
	assert.Equal(t, 23, g.Shift)
}

func TestGuessShiftTies(t *testing.T) {
	g, err := GuessShift("xy yx")
	require.NoError(t, err)
	assert.Equal(t, 'x', g.Letter)
}

func TestGuessShiftNoLetters(t *testing.T) {
	_, err := GuessShift("  123 !")
	assert.ErrorIs(t, err, cryptors.ErrNoMatchFound)
}

func TestBruteForce(t *testing.T) {
	cands := BruteForce("Wkh txlfn eurzq ira")
	require.Len(t, cands, 26)
	for i, c := range cands {
		assert.Equal(t, i, c.Shift)
	}
	assert.Equal(t, "Wkh txlfn eurzq ira", cands[0].Plaintext)
	assert.Equal(t, "The quick brown fox", cands[3].Plaintext)
}

func TestRank(t *testing.T) {
	ranked := Rank(BruteForce(hawking), CommonWords)
	require.Len(t, ranked, 26)
	assert.Equal(t, 11, ranked[0].Shift)
	assert.Equal(t, decoded, ranked[0].Plaintext)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankKeepsOrderOnTies(t *testing.T) {
	ranked := Rank(BruteForce("qqq"), nil)
	for i, c := range ranked {
		assert.Equal(t, i, c.Shift)
		assert.Zero(t, c.Score)
	}
}
