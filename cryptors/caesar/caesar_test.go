package caesar

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/bgallie/enigma/cryptors"
)

func TestEncodeWraps(t *testing.T) {
	tbl := NewTables(3)
	assert.Equal(t, "def abc", Encode("abc xyz", tbl))
	assert.Equal(t, "abc xyz", Decode("def abc", tbl))
}

func TestCaseBlocksAreSeparate(t *testing.T) {
	tbl := NewTables(3)
	assert.Equal(t, "Wkh Txlfn, eurzq ira!", Encode("The Quick, brown fox!", tbl))
	assert.Equal(t, "ABC", Encode("XYZ", tbl))
	assert.Equal(t, "The Quick, brown fox!", Decode("Wkh Txlfn, eurzq ira!", tbl))
}

func TestShiftNormalisation(t *testing.T) {
	assert.Equal(t, 23, NewTables(-3).Shift())
	assert.Equal(t, NewTables(-3), NewTables(23))
	assert.Equal(t, NewTables(0), NewTables(26))
	assert.Equal(t, "xyz uvw", Encode("abc xyz", NewTables(-3)))
	assert.Equal(t, "abc 123", Encode("abc 123", NewTables(52)))
}

func TestTablesAreIdempotent(t *testing.T) {
	for shift := -30; shift < 60; shift++ {
		assert.Equal(t, NewTables(shift), NewTables(shift))
	}
}

func TestCrypterInterface(t *testing.T) {
	var c cryptors.Crypter = NewTables(7)
	assert.Equal(t, "Hello, World", c.Decrypt(c.Encrypt("Hello, World")))
}

func TestString(t *testing.T) {
	s := NewTables(1).String()
	assert.Contains(t, s, "a->b")
	assert.Contains(t, s, "z->a")
	assert.Contains(t, s, "Z->A")
}

func TestRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode undoes encode for any shift", prop.ForAll(
		func(shift int, msg string) bool {
			tbl := NewTables(shift)
			return Decode(Encode(msg, tbl), tbl) == msg
		},
		gen.IntRange(-100, 100),
		gen.AnyString(),
	))

	properties.Property("non letters are untouched", prop.ForAll(
		func(shift int, msg string) bool {
			out := []rune(Encode(msg, NewTables(shift)))
			for i, r := range []rune(msg) {
				if !cryptors.Letters.Contains(r) && out[i] != r {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 25),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
