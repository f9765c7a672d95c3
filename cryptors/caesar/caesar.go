// Package caesar implements the Caesar shift cipher and two ways of breaking
// it.  Lower and upper case letters are shifted within their own case, and
// anything that is not an ASCII letter is left alone.
package caesar

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
)

const tableSize = 2 * cryptors.LettersPerCase

// Tables holds the substitution for one shift and its inverse.  Tables is a
// value type: building it twice from the same shift gives equal values.
type Tables struct {
	shift   int
	forward [tableSize]rune
	inverse [tableSize]rune
}

// NewTables builds the tables for shift, which is taken modulo 26 so
// negative shifts wrap.
func NewTables(shift int) Tables {
	var t Tables
	t.shift = cryptors.Mod(shift, cryptors.LettersPerCase)
	letters := cryptors.Letters

	for i := 0; i < tableSize; i++ {
		block := letters.Block(i)
		j := block + (i-block+t.shift)%cryptors.LettersPerCase
		t.forward[i] = letters.LetterAt(j)
		t.inverse[j] = letters.LetterAt(i)
	}

	return t
}

// Shift is the normalised shift in [0, 26).
func (t Tables) Shift() int {
	return t.shift
}

func substitute(message string, table *[tableSize]rune) string {
	var output strings.Builder
	output.Grow(len(message))
	for _, c := range message {
		if idx, err := cryptors.Letters.IndexOf(c); err == nil {
			output.WriteRune(table[idx])
		} else {
			output.WriteRune(c)
		}
	}
	return output.String()
}

// Encode shifts every letter of message forward.
func Encode(message string, t Tables) string {
	return substitute(message, &t.forward)
}

// Decode undoes Encode.
func Decode(message string, t Tables) string {
	return substitute(message, &t.inverse)
}

func (t Tables) Encrypt(plaintext string) string {
	return Encode(plaintext, t)
}

func (t Tables) Decrypt(ciphertext string) string {
	return Decode(ciphertext, t)
}

// String lists the forward mapping, e.g. "a->d b->e ...".
func (t Tables) String() string {
	var output strings.Builder
	for i, r := range t.forward {
		if i > 0 {
			output.WriteByte(' ')
		}
		output.WriteString(fmt.Sprintf("%c->%c", cryptors.Letters.LetterAt(i), r))
	}
	return output.String()
}
