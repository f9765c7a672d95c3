// Package enigma implements a rotor cipher machine in the style of the
// Enigma: a plugboard, a stack of stepping rotors and a reflector.  Because
// the reflector is an involution, a machine set up like the one that
// produced a ciphertext turns it back into the plaintext.
//
// Rotors are listed in the order the signal meets them on its way to the
// reflector, so the first rotor is the fast one.  Stepping is a plain
// odometer: the first rotor steps before every letter and a rotor stepping
// onto one of its notches steps the rotor after it.  There is no double
// stepping.
package enigma

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

const (
	MinRotors = 1
	MaxRotors = 5
)

// Settings describes how a machine is assembled.  Rotors are listed from
// the fast rotor next to the plugboard to the slow rotor next to the
// reflector; Key and Ring give one letter per rotor in the same order.
//
// StepNonLetters makes characters outside the alphabet advance the rotors
// as well.  They are still copied through unchanged.
type Settings struct {
	Reflector      string
	Rotors         []string
	Key            string
	Ring           string // optional, defaults to the first letter of the alphabet for every rotor
	Plugboard      string
	StepNonLetters bool
	Catalogue      *Catalogue // optional, defaults to Standard
}

// DefaultSettings returns reflector A with rotors I (fast), II and III
// (slow), no plugboard pairs and the key AAA.
func DefaultSettings() Settings {
	return Settings{
		Reflector: "A",
		Rotors:    []string{"I", "II", "III"},
		Key:       "AAA",
	}
}

func (s Settings) catalogue() *Catalogue {
	if s.Catalogue == nil {
		return Standard
	}
	return s.Catalogue
}

// Machine is a single rotor machine.  Its rotors are owned by the machine
// and change position as letters are enciphered, so a Machine must not be
// used by two goroutines at once.
type Machine struct {
	alphabet       *cryptors.Alphabet
	rotors         []*rotor.Rotor // fast rotor first
	reflector      *reflector.Reflector
	plugboard      *plugboard.Plugboard
	stepNonLetters bool
}

// New assembles a machine from s.  A key of the wrong length or with
// letters outside the alphabet fails with cryptors.ErrInvalidKey; unknown
// wheels, a bad ring setting or a bad plugboard fail with
// cryptors.ErrInvalidConfig.
func New(s Settings) (*Machine, error) {
	cat := s.catalogue()
	alpha := cat.Alphabet()

	if len(s.Rotors) < MinRotors || len(s.Rotors) > MaxRotors {
		return nil, fmt.Errorf("%w: %d rotors given, want %d to %d",
			cryptors.ErrInvalidConfig, len(s.Rotors), MinRotors, MaxRotors)
	}

	key, err := offsets(alpha, s.Key, len(s.Rotors))
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", cryptors.ErrInvalidKey, s.Key, err)
	}

	ring := make([]int, len(s.Rotors))
	if s.Ring != "" {
		ring, err = offsets(alpha, s.Ring, len(s.Rotors))
		if err != nil {
			return nil, fmt.Errorf("%w: ring setting %q: %v", cryptors.ErrInvalidConfig, s.Ring, err)
		}
	}

	refl, ok := cat.reflectors[s.Reflector]
	if !ok {
		return nil, fmt.Errorf("%w: unknown reflector %q", cryptors.ErrInvalidConfig, s.Reflector)
	}

	pb, err := plugboard.Parse(alpha, s.Plugboard)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		alphabet:       alpha,
		rotors:         make([]*rotor.Rotor, len(s.Rotors)),
		reflector:      refl,
		plugboard:      pb,
		stepNonLetters: s.StepNonLetters,
	}
	for i, name := range s.Rotors {
		rw, ok := cat.rotors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown rotor %q", cryptors.ErrInvalidConfig, name)
		}
		m.rotors[i] = rotor.New(rw.wiring, key[i], ring[i], rw.notches...)
	}

	return m, nil
}

// offsets converts one letter per rotor into alphabet positions.
func offsets(alpha *cryptors.Alphabet, letters string, n int) ([]int, error) {
	runes := []rune(letters)
	if len(runes) != n {
		return nil, fmt.Errorf("%d letters given for %d rotors", len(runes), n)
	}
	res := make([]int, n)
	for i, r := range runes {
		idx, err := alpha.IndexOf(r)
		if err != nil {
			return nil, err
		}
		res[i] = idx
	}
	return res, nil
}

// step turns the fast rotor and carries on through every rotor that steps
// onto a notch.
func (m *Machine) step() {
	for _, r := range m.rotors {
		if !r.Step() {
			break
		}
	}
}

// Encipher runs message through the machine.  Characters outside the
// alphabet are copied unchanged and only move the rotors when the machine
// was built with StepNonLetters; letters keep their case.
func (m *Machine) Encipher(message string) string {
	var output strings.Builder
	output.Grow(len(message))

	for _, c := range message {
		idx, upper, ok := m.alphabet.Fold(c)
		if !ok {
			if m.stepNonLetters {
				m.step()
			}
			output.WriteRune(c)
			continue
		}

		m.step()
		idx = m.plugboard.Swap(idx)
		for _, r := range m.rotors {
			idx = r.Forward(idx)
		}
		idx = m.reflector.Reflect(idx)
		for i := len(m.rotors) - 1; i >= 0; i-- {
			idx = m.rotors[i].Backward(idx)
		}
		idx = m.plugboard.Swap(idx)
		output.WriteRune(m.alphabet.Cased(idx, upper))
	}

	return output.String()
}

func (m *Machine) Encrypt(plaintext string) string {
	return m.Encipher(plaintext)
}

func (m *Machine) Decrypt(ciphertext string) string {
	return m.Encipher(ciphertext)
}

// Key returns the letters currently showing in the rotor windows.
func (m *Machine) Key() string {
	key := make([]rune, len(m.rotors))
	for i, r := range m.rotors {
		key[i] = r.Letter()
	}
	return string(key)
}

// Reset returns every rotor to the position given by the key the machine
// was built with.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}

// Clone returns a machine in the same state as m that shares no moving
// parts with it.
func (m *Machine) Clone() *Machine {
	c := *m
	c.rotors = make([]*rotor.Rotor, len(m.rotors))
	for i, r := range m.rotors {
		c.rotors[i] = r.Clone()
	}
	return &c
}

// Offsets returns the current rotor positions, fast rotor first.
func (m *Machine) Offsets() []int {
	res := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		res[i] = r.Offset()
	}
	return res
}

func (m *Machine) String() string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("reflector: %s\n", m.reflector))
	for i, r := range m.rotors {
		output.WriteString(fmt.Sprintf("rotor %d: %s\n", i+1, r))
	}
	output.WriteString(fmt.Sprintf("plugboard: %s\n", m.plugboard))
	return output.String()
}
