package enigma

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/bgallie/enigma/cryptors/reflector"
)

type rotorWiring struct {
	wiring  *permutator.Permutator
	notches []int
}

// Catalogue is a set of named rotor and reflector wirings over one alphabet.
// Wirings are validated when they are added, so a machine built from a
// catalogue only has to check its key and plugboard.
type Catalogue struct {
	alphabet   *cryptors.Alphabet
	rotors     map[string]rotorWiring
	reflectors map[string]*reflector.Reflector
}

// Standard holds the rotors I to V and the reflectors A, B and C.  Each
// rotor's notch is the window letter it shows when it carries into the next
// rotor, one past the historical turnover letter.
var Standard = mustStandard()

func mustStandard() *Catalogue {
	c := NewCatalogue(cryptors.Upper)
	for _, w := range []struct{ name, wiring, notches string }{
		{"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "R"},
		{"II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "F"},
		{"III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "W"},
		{"IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "K"},
		{"V", "VZBRGITYUPSDNHLXAWMKJQOFEC", "A"},
	} {
		if err := c.AddRotor(w.name, w.wiring, w.notches); err != nil {
			panic(err)
		}
	}
	for _, w := range []struct{ name, wiring string }{
		{"A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
		{"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
		{"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	} {
		if err := c.AddReflector(w.name, w.wiring); err != nil {
			panic(err)
		}
	}
	return c
}

// NewCatalogue returns an empty catalogue for alphabet.
func NewCatalogue(alphabet *cryptors.Alphabet) *Catalogue {
	return &Catalogue{
		alphabet:   alphabet,
		rotors:     make(map[string]rotorWiring),
		reflectors: make(map[string]*reflector.Reflector),
	}
}

func (c *Catalogue) Alphabet() *cryptors.Alphabet {
	return c.alphabet
}

// AddRotor adds or replaces the rotor called name.  notches lists the window
// letters at which the rotor carries.
func (c *Catalogue) AddRotor(name, wiring, notches string) error {
	p, err := permutator.New(c.alphabet, wiring)
	if err != nil {
		return fmt.Errorf("rotor %s: %w", name, err)
	}
	rw := rotorWiring{wiring: p}
	for _, n := range notches {
		idx, err := c.alphabet.IndexOf(n)
		if err != nil {
			return fmt.Errorf("rotor %s notch: %w: %v", name, cryptors.ErrInvalidConfig, err)
		}
		rw.notches = append(rw.notches, idx)
	}
	c.rotors[name] = rw
	return nil
}

// AddReflector adds or replaces the reflector called name.
func (c *Catalogue) AddReflector(name, wiring string) error {
	p, err := permutator.New(c.alphabet, wiring)
	if err != nil {
		return fmt.Errorf("reflector %s: %w", name, err)
	}
	r, err := reflector.New(p)
	if err != nil {
		return fmt.Errorf("reflector %s: %w", name, err)
	}
	c.reflectors[name] = r
	return nil
}

func (c *Catalogue) RotorNames() []string {
	names := make([]string, 0, len(c.rotors))
	for n := range c.rotors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *Catalogue) ReflectorNames() []string {
	names := make([]string, 0, len(c.reflectors))
	for n := range c.reflectors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of c that can be extended without touching c.
func (c *Catalogue) Clone() *Catalogue {
	n := NewCatalogue(c.alphabet)
	for k, v := range c.rotors {
		n.rotors[k] = v
	}
	for k, v := range c.reflectors {
		n.reflectors[k] = v
	}
	return n
}

// wiringFile is the YAML layout read by LoadWirings:
//
//	rotors:
//	  VI: {wiring: JPGVOUMFYQBENHZRDKASXLICTW, notches: AN}
//	reflectors:
//	  B: YRUHQSLDPXNGOKMIEBFZCWVJAT
type wiringFile struct {
	Rotors map[string]struct {
		Wiring  string `yaml:"wiring"`
		Notches string `yaml:"notches"`
	} `yaml:"rotors"`
	Reflectors map[string]string `yaml:"reflectors"`
}

// LoadWirings reads rotor and reflector definitions in YAML from rdr and adds
// them to c.  Nothing is added if any definition is invalid.
func (c *Catalogue) LoadWirings(rdr io.Reader) error {
	var f wiringFile
	dec := yaml.NewDecoder(rdr)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("%w: wiring file: %v", cryptors.ErrInvalidConfig, err)
	}

	tmp := c.Clone()
	for name, r := range f.Rotors {
		if err := tmp.AddRotor(name, r.Wiring, r.Notches); err != nil {
			return err
		}
	}
	for name, w := range f.Reflectors {
		if err := tmp.AddReflector(name, w); err != nil {
			return err
		}
	}

	c.rotors, c.reflectors = tmp.rotors, tmp.reflectors
	return nil
}
