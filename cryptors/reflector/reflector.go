// Package reflector implements the fixed wheel that turns the signal around
// at the end of the rotor stack.
package reflector

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

type Reflector struct {
	wiring *permutator.Permutator
}

// New returns a reflector for wiring, which must be an involution.
func New(wiring *permutator.Permutator) (*Reflector, error) {
	if !wiring.IsInvolution() {
		return nil, fmt.Errorf("%w: reflector wiring %q is not made of pairs", cryptors.ErrInvalidConfig, wiring)
	}
	return &Reflector{wiring: wiring}, nil
}

func (r *Reflector) Reflect(idx int) int {
	return r.wiring.Forward(idx)
}

func (r *Reflector) Size() int {
	return r.wiring.Size()
}

func (r *Reflector) String() string {
	return r.wiring.String()
}
