package enigma

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
)

// Keyspace enumerates every key for a machine with a given number of rotors.
// Keys are ordered like nested loops with the first key letter outermost,
// so for three rotors over A-Z the order is AAA, AAB, ... AAZ, ABA, ... ZZZ.
type Keyspace struct {
	alphabet *cryptors.Alphabet
	rotors   int
	size     int
}

func NewKeyspace(alphabet *cryptors.Alphabet, rotors int) Keyspace {
	size := 1
	for i := 0; i < rotors; i++ {
		size *= alphabet.Size()
	}
	return Keyspace{alphabet: alphabet, rotors: rotors, size: size}
}

// Len is the number of keys, alphabet size to the power of the rotor count.
func (k Keyspace) Len() int {
	return k.size
}

// KeyAt returns the key at position idx of the enumeration.
func (k Keyspace) KeyAt(idx int) string {
	n := k.alphabet.Size()
	key := make([]rune, k.rotors)
	for i := k.rotors - 1; i >= 0; i-- {
		key[i] = k.alphabet.LetterAt(idx % n)
		idx /= n
	}
	return string(key)
}

// IndexOf is the inverse of KeyAt.
func (k Keyspace) IndexOf(key string) (int, error) {
	runes := []rune(key)
	if len(runes) != k.rotors {
		return 0, fmt.Errorf("%w: key %q has %d letters for %d rotors",
			cryptors.ErrInvalidKey, key, len(runes), k.rotors)
	}
	idx := 0
	for _, r := range runes {
		i, err := k.alphabet.IndexOf(r)
		if err != nil {
			return 0, fmt.Errorf("%w: key %q: %w", cryptors.ErrInvalidKey, key, err)
		}
		idx = idx*k.alphabet.Size() + i
	}
	return idx, nil
}
