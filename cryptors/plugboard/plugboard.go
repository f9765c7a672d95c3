// Package plugboard implements the letter pair swaps applied on the way into
// and out of the rotor stack.
package plugboard

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

type Plugboard struct {
	alphabet *cryptors.Alphabet
	pairs    []int // pairs[i] is the letter i is plugged to, or i itself.
}

// Parse builds a plugboard from whitespace separated two letter tokens such
// as "AB CD EF".  A token pairing a letter with itself is accepted and does
// nothing, but no letter may take part in two different pairs.
func Parse(alphabet *cryptors.Alphabet, config string) (*Plugboard, error) {
	p := &Plugboard{alphabet: alphabet, pairs: make([]int, alphabet.Size())}
	for i := range p.pairs {
		p.pairs[i] = i
	}

	used := bitops.New(alphabet.Size())
	for _, tok := range strings.Fields(config) {
		pair := []rune(tok)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: plugboard token %q is not a letter pair", cryptors.ErrInvalidConfig, tok)
		}
		a, err := alphabet.IndexOf(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: plugboard token %q: %v", cryptors.ErrInvalidConfig, tok, err)
		}
		b, err := alphabet.IndexOf(pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: plugboard token %q: %v", cryptors.ErrInvalidConfig, tok, err)
		}
		if !used.Add(uint(a)) || (a != b && !used.Add(uint(b))) {
			return nil, fmt.Errorf("%w: plugboard token %q reuses a plugged letter", cryptors.ErrInvalidConfig, tok)
		}
		p.pairs[a], p.pairs[b] = b, a
	}

	return p, nil
}

// Swap returns the letter index idx is plugged to.
func (p *Plugboard) Swap(idx int) int {
	return p.pairs[idx]
}

// String lists the swapping pairs in alphabet order.
func (p *Plugboard) String() string {
	var tokens []string
	for a, b := range p.pairs {
		if a < b {
			tokens = append(tokens, string([]rune{p.alphabet.LetterAt(a), p.alphabet.LetterAt(b)}))
		}
	}
	return strings.Join(tokens, " ")
}
