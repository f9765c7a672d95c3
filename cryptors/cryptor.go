// cryptors
package cryptors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// LettersPerCase is the size of one case block of the Latin alphabet.
	LettersPerCase = 26
	upperLetters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters   = "abcdefghijklmnopqrstuvwxyz"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidKey    = errors.New("invalid key")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNoMatchFound  = errors.New("no match found")

	// Upper is the alphabet the rotor machines work over.  Lowercase input
	// is folded onto it by Fold.
	Upper = MustAlphabet(upperLetters)

	// Letters holds both case blocks, lowercase first, as used by the
	// Caesar cipher.
	Letters = MustAlphabet(lowerLetters + upperLetters)
)

// Alphabet is an ordered set of unique letters with a bijective mapping
// between each letter and its zero based index.
type Alphabet struct {
	letters []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the letters in s.
func NewAlphabet(s string) (*Alphabet, error) {
	a := &Alphabet{index: make(map[rune]int)}
	for _, r := range s {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: letter %q repeated in alphabet", ErrInvalidConfig, r)
		}
		a.index[r] = len(a.letters)
		a.letters = append(a.letters, r)
	}
	if len(a.letters) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidConfig)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.  It is meant for
// package level tables.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) Size() int {
	return len(a.letters)
}

func (a *Alphabet) String() string {
	return string(a.letters)
}

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IndexOf returns the position of r in the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return i, nil
}

// LetterAt returns the letter at idx modulo the alphabet size.  Negative
// indices wrap as well.
func (a *Alphabet) LetterAt(idx int) rune {
	return a.letters[Mod(idx, len(a.letters))]
}

// Fold looks r up ignoring ASCII case.  upper reports whether r was an
// upper case letter (or a caseless one) so the caller can restore the case
// afterwards.  Only 'a'-'z' and 'A'-'Z' fold onto each other; other runes
// must be in the alphabet as they are.
func (a *Alphabet) Fold(r rune) (idx int, upper bool, ok bool) {
	if i, found := a.index[r]; found {
		return i, !isLower(r), true
	}
	switch {
	case isLower(r):
		i, found := a.index[r-'a'+'A']
		return i, false, found
	case isUpper(r):
		i, found := a.index[r-'A'+'a']
		return i, true, found
	}
	return 0, false, false
}

// Cased returns the letter at idx in upper or lower case.  Letters outside
// 'a'-'z' and 'A'-'Z' are returned as they are.
func (a *Alphabet) Cased(idx int, upper bool) rune {
	r := a.LetterAt(idx)
	switch {
	case upper && isLower(r):
		return r - 'a' + 'A'
	case !upper && isUpper(r):
		return r - 'A' + 'a'
	}
	return r
}

func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

// Block returns the start of the case block holding idx when the alphabet is
// made of equally sized case blocks (like Letters).
func (a *Alphabet) Block(idx int) int {
	return idx - idx%LettersPerCase
}

// Mod returns a modulo n in the range [0, n).
func Mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// Crypter is implemented by the cipher engines.  For the rotor machines
// Encrypt and Decrypt are the same operation.
type Crypter interface {
	Encrypt(string) string
	Decrypt(string) string
}

// CipherHelper streams rdr through the crypter line by line and returns a
// reader for the result.  State kept by the crypter carries over from one
// line to the next, so a stream is treated as one long message.
func CipherHelper(rdr io.Reader, c Crypter, encrypt bool) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	go func() {
		bRdr := bufio.NewReader(rdr)
		for {
			line, err := bRdr.ReadString('\n')
			if len(line) > 0 {
				if encrypt {
					line = c.Encrypt(line)
				} else {
					line = c.Decrypt(line)
				}
				if _, werr := io.WriteString(rWrtr, line); werr != nil {
					rWrtr.CloseWithError(werr)
					return
				}
			}
			if err == io.EOF {
				rWrtr.Close()
				return
			}
			if err != nil {
				rWrtr.CloseWithError(err)
				return
			}
		}
	}()
	return rRdr
}
