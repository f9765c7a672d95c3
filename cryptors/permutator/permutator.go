// permutator project permutator.go
package permutator

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// Permutator is a substitution of an alphabet onto itself together with its
// inverse.  It is the wiring shared by rotors and reflectors.
type Permutator struct {
	alphabet *cryptors.Alphabet
	forward  []int // forward[i] is the output for input i.
	inverse  []int // inverse[forward[i]] == i
}

// New creates a permutator from wiring, which must contain every letter of
// alphabet exactly once.  wiring[i] is the letter input i is mapped to.
func New(alphabet *cryptors.Alphabet, wiring string) (*Permutator, error) {
	var p Permutator
	p.alphabet = alphabet
	p.forward = make([]int, 0, alphabet.Size())
	seen := bitops.New(alphabet.Size())

	for _, r := range wiring {
		idx, err := alphabet.IndexOf(r)
		if err != nil {
			return nil, fmt.Errorf("%w: wiring %q: %v", cryptors.ErrInvalidConfig, wiring, err)
		}
		if !seen.Add(uint(idx)) {
			return nil, fmt.Errorf("%w: wiring %q maps to %q twice", cryptors.ErrInvalidConfig, wiring, r)
		}
		p.forward = append(p.forward, idx)
	}

	if len(p.forward) != alphabet.Size() {
		return nil, fmt.Errorf("%w: wiring %q has %d letters, want %d",
			cryptors.ErrInvalidConfig, wiring, len(p.forward), alphabet.Size())
	}

	p.inverse = make([]int, len(p.forward))
	for i, v := range p.forward {
		p.inverse[v] = i
	}

	return &p, nil
}

func (p *Permutator) Size() int {
	return len(p.forward)
}

func (p *Permutator) Alphabet() *cryptors.Alphabet {
	return p.alphabet
}

func (p *Permutator) Forward(idx int) int {
	return p.forward[idx]
}

func (p *Permutator) Inverse(idx int) int {
	return p.inverse[idx]
}

// IsInvolution reports whether applying the permutation twice is the
// identity, i.e. it is made only of swapped pairs and fixed points.
func (p *Permutator) IsInvolution() bool {
	for i, v := range p.forward {
		if p.forward[v] != i {
			return false
		}
	}
	return true
}

// String returns the wiring as the letters each input maps to.
func (p *Permutator) String() string {
	var output bytes.Buffer
	for _, v := range p.forward {
		output.WriteRune(p.alphabet.LetterAt(v))
	}
	return output.String()
}
