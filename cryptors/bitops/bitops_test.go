package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New(26)
	assert.Len(t, s, 4)

	assert.True(t, s.Add(0))
	assert.True(t, s.Add(25))
	assert.False(t, s.Add(25))
	assert.True(t, s.Get(25))
	assert.False(t, s.Get(24))
	assert.Equal(t, 2, s.Count())

	s.Clr(25)
	assert.False(t, s.Get(25))
	assert.Equal(t, 1, s.Count())
}
