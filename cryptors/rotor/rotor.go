// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Rotor is a wiring permutation that turns one position every time it is
// stepped.  Reaching a notch position signals the next rotor to turn.
type Rotor struct {
	start   int // offset the rotor was set to
	size    int
	ring    int // ring setting, shifts the wiring against the offset
	current int // current offset
	notches bitops.Set
	wiring  *permutator.Permutator
}

// New returns a rotor using wiring, set to offset start with the given ring
// setting.  Stepping onto any of the notch offsets carries into the next
// rotor.
func New(wiring *permutator.Permutator, start, ring int, notches ...int) *Rotor {
	var r Rotor
	r.size = wiring.Size()
	r.start = cryptors.Mod(start, r.size)
	r.current = r.start
	r.ring = cryptors.Mod(ring, r.size)
	r.wiring = wiring
	r.notches = bitops.New(r.size)
	for _, n := range notches {
		r.notches.Set(uint(cryptors.Mod(n, r.size)))
	}
	return &r
}

func (r *Rotor) Size() int {
	return r.size
}

func (r *Rotor) Offset() int {
	return r.current
}

// SetOffset moves the rotor to idx (mod size) without signalling a carry.
func (r *Rotor) SetOffset(idx int) {
	r.current = cryptors.Mod(idx, r.size)
}

// Reset puts the rotor back to the offset it was created with.
func (r *Rotor) Reset() {
	r.current = r.start
}

// Letter is the letter showing in the rotor window.
func (r *Rotor) Letter() rune {
	return r.wiring.Alphabet().LetterAt(r.current)
}

// IsNotch reports whether idx is one of the rotor's notch offsets.
func (r *Rotor) IsNotch(idx int) bool {
	return r.notches.Get(uint(cryptors.Mod(idx, r.size)))
}

// Step advances the rotor one position and reports whether the new offset is
// a notch, in which case the next rotor must step too.
func (r *Rotor) Step() bool {
	r.current = (r.current + 1) % r.size
	return r.notches.Get(uint(r.current))
}

// Forward passes idx through the rotor on the way to the reflector.
func (r *Rotor) Forward(idx int) int {
	shift := r.current - r.ring
	return cryptors.Mod(r.wiring.Forward(cryptors.Mod(idx+shift, r.size))-shift, r.size)
}

// Backward passes idx through the rotor on the way back from the reflector.
// It is the inverse of Forward at the same offset.
func (r *Rotor) Backward(idx int) int {
	shift := r.current - r.ring
	return cryptors.Mod(r.wiring.Inverse(cryptors.Mod(idx+shift, r.size))-shift, r.size)
}

// Clone returns an independent copy of the rotor sharing only the immutable
// wiring.
func (r *Rotor) Clone() *Rotor {
	c := *r
	c.notches = append(bitops.Set(nil), r.notches...)
	return &c
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	alpha := r.wiring.Alphabet()
	output.WriteString(fmt.Sprintf("rotor.New(%q, %c, %c", r.wiring, alpha.LetterAt(r.start), alpha.LetterAt(r.ring)))
	for i := 0; i < r.size; i++ {
		if r.notches.Get(uint(i)) {
			output.WriteString(fmt.Sprintf(", %c", alpha.LetterAt(i)))
		}
	}
	output.WriteString(fmt.Sprintf(") at %c", r.Letter()))
	return output.String()
}
