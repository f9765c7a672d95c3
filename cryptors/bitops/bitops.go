// bitops project bitops.go
package bitops

// Set is a fixed size bit set indexed by alphabet position.
type Set []byte

// New returns a Set able to hold the indices [0, n).
func New(n int) Set {
	return make(Set, (n+7)>>3)
}

func (s Set) Set(bit uint) {
	s[bit>>3] |= (1 << (bit & 7))
}

func (s Set) Clr(bit uint) {
	s[bit>>3] &= ^(1 << (bit & 7))
}

func (s Set) Get(bit uint) bool {
	return (s[bit>>3]&(1<<(bit&7)) != 0)
}

// Add sets bit and reports whether it was clear before.
func (s Set) Add(bit uint) bool {
	if s.Get(bit) {
		return false
	}
	s.Set(bit)
	return true
}

// Count returns the number of set bits.
func (s Set) Count() int {
	n := 0
	for _, b := range s {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}
