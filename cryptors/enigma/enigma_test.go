package enigma

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
)

func settings(key, plugs string) Settings {
	s := DefaultSettings()
	s.Key = key
	s.Plugboard = plugs
	return s
}

func newMachine(t *testing.T, s Settings) *Machine {
	t.Helper()
	m, err := New(s)
	require.NoError(t, err)
	return m
}

func TestHelloWorld(t *testing.T) {
	s := settings("ABC", "AA BB CC DD EE")

	secret := newMachine(t, s).Encipher("Hello World")
	assert.Equal(t, "Ncsmm Iapor", secret)
	assert.Equal(t, "Hello World", newMachine(t, s).Encipher(secret))
}

func TestPlugboardChangesOutput(t *testing.T) {
	s := settings("ABC", "HW LO")
	secret := newMachine(t, s).Encipher("Hello World")
	assert.Equal(t, "Ccbtz Vfpor", secret)
	assert.Equal(t, "Hello World", newMachine(t, s).Encipher(secret))
}

func TestPassThrough(t *testing.T) {
	in := "a, b! 42 ?é ıſ"
	for _, tc := range []struct {
		stepAll bool
		want    []int
	}{
		{false, []int{2, 1, 2}},
		{true, []int{14, 1, 2}},
	} {
		s := settings("ABC", "")
		s.StepNonLetters = tc.stepAll
		m := newMachine(t, s)
		out := m.Encipher(in)

		require.Equal(t, len([]rune(in)), len([]rune(out)))
		for i, r := range []rune(in) {
			if !strings.ContainsRune("ab", r) {
				assert.Equal(t, r, []rune(out)[i])
			}
		}
		assert.Equal(t, tc.want, m.Offsets(), "StepNonLetters=%v", tc.stepAll)
	}
}

func TestNonASCIILettersUntouched(t *testing.T) {
	m := newMachine(t, settings("ABC", ""))
	assert.Equal(t, "ſ", m.Encipher("ſ"))
	assert.Equal(t, "ı", m.Encipher("ı"))
	assert.Equal(t, []int{0, 1, 2}, m.Offsets())

	s := settings("ABC", "")
	secret := newMachine(t, s).Encipher("Hıllo")
	assert.Equal(t, 'ı', []rune(secret)[1])
	assert.Equal(t, "Hıllo", newMachine(t, s).Encipher(secret))
}

func TestNoLetterMapsToItself(t *testing.T) {
	m := newMachine(t, settings("XYZ", ""))
	in := strings.Repeat("A", 200)
	for _, r := range m.Encipher(in) {
		assert.NotEqual(t, 'A', r)
	}
}

func TestCasePreserved(t *testing.T) {
	out := newMachine(t, settings("ABC", "")).Encipher("aBc")
	assert.Equal(t, strings.ToLower(out[:1]), out[:1])
	assert.Equal(t, strings.ToUpper(out[1:2]), out[1:2])
	assert.Equal(t, strings.ToLower(out[2:]), out[2:])
}

func TestStepping(t *testing.T) {
	// I, the fast rotor, carries when it steps onto R.
	m := newMachine(t, settings("QAA", ""))
	m.Encipher("X")
	assert.Equal(t, []int{17, 1, 0}, m.Offsets())
	assert.Equal(t, "RBA", m.Key())

	// II at E steps onto its notch F and carries into III.
	m = newMachine(t, settings("QEA", ""))
	m.Encipher("X")
	assert.Equal(t, "RFB", m.Key())

	m.Reset()
	assert.Equal(t, "QEA", m.Key())
}

func TestFastRotorCycles(t *testing.T) {
	m := newMachine(t, settings("AAA", ""))
	m.Encipher(strings.Repeat("Q", 26))
	// The fast rotor is back at A after one carry into the middle rotor.
	assert.Equal(t, "ABA", m.Key())
}

// Messages enciphered by a machine that also steps on spaces and
// punctuation.
const (
	stepAllMessage = "Vxye ajgh D yf? Ptn uluo yjgco L ws nznde czidn. Bsj ccj qdbk qjph wpw ypxvu!"
	stepAllPlain   = "What will I do? The same thing I do every night. Try and take over the world!"
)

func TestStepNonLetters(t *testing.T) {
	s := settings("SSC", "AA BB CC DD EE")
	s.StepNonLetters = true
	assert.Equal(t, stepAllPlain, newMachine(t, s).Encipher(stepAllMessage))
	assert.Equal(t, stepAllMessage, newMachine(t, s).Encipher(stepAllPlain))
	hello := s
	hello.Key = "ABC"
	assert.Equal(t, "Ncsmm Ywdpy", newMachine(t, hello).Encipher("Hello World"))

	// Without it the machines agree until the first space.
	s.StepNonLetters = false
	out := newMachine(t, s).Encipher(stepAllMessage)
	assert.Equal(t, "What efyu M dy? Ymx nmln wukwe Q bq lwcla esgke. Puc gqh upuf dles ixj fzfan!", out)
	assert.Equal(t, stepAllPlain[:5], out[:5])
}

func TestClone(t *testing.T) {
	m := newMachine(t, settings("ABC", "AZ"))
	c := m.Clone()
	secret := m.Encipher("Clone me")
	assert.Equal(t, "Clone me", c.Encipher(secret))
	assert.Equal(t, m.Key(), c.Key())
}

func TestRingSetting(t *testing.T) {
	s := settings("ABC", "")
	plain := newMachine(t, s).Encipher("RINGSTELLUNG")
	s.Ring = "BBB"
	ringed := newMachine(t, s).Encipher("RINGSTELLUNG")
	assert.NotEqual(t, plain, ringed)
	assert.Equal(t, "RINGSTELLUNG", newMachine(t, s).Encipher(ringed))
}

func TestCrypterInterface(t *testing.T) {
	var c cryptors.Crypter = newMachine(t, settings("DOG", ""))
	secret := c.Encrypt("Over the lazy dog")
	assert.Equal(t, "Over the lazy dog", cryptors.Crypter(newMachine(t, settings("DOG", ""))).Decrypt(secret))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"short key", func(s *Settings) { s.Key = "AB" }, cryptors.ErrInvalidKey},
		{"long key", func(s *Settings) { s.Key = "ABCD" }, cryptors.ErrInvalidKey},
		{"lowercase key", func(s *Settings) { s.Key = "abc" }, cryptors.ErrInvalidKey},
		{"digit key", func(s *Settings) { s.Key = "A1C" }, cryptors.ErrInvalidKey},
		{"overlapping plugs", func(s *Settings) { s.Plugboard = "AB BC" }, cryptors.ErrInvalidConfig},
		{"odd plug", func(s *Settings) { s.Plugboard = "ABC" }, cryptors.ErrInvalidConfig},
		{"unknown rotor", func(s *Settings) { s.Rotors = []string{"I", "II", "IX"} }, cryptors.ErrInvalidConfig},
		{"unknown reflector", func(s *Settings) { s.Reflector = "Z" }, cryptors.ErrInvalidConfig},
		{"no rotors", func(s *Settings) { s.Rotors = nil; s.Key = "" }, cryptors.ErrInvalidConfig},
		{"too many rotors", func(s *Settings) {
			s.Rotors = []string{"I", "II", "III", "IV", "V", "I"}
			s.Key = "AAAAAA"
		}, cryptors.ErrInvalidConfig},
		{"bad ring", func(s *Settings) { s.Ring = "AA" }, cryptors.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := settings("ABC", "")
			tc.mutate(&s)
			m, err := New(s)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	letter := gen.RuneRange('A', 'Z')
	key := gen.SliceOfN(3, letter).Map(func(r []rune) string { return string(r) })
	message := gen.SliceOf(gen.AlphaString()).Map(func(words []string) string {
		return strings.Join(words, ", ") + "!?."
	})
	plugs := gen.OneConstOf("", "AA BB CC DD EE", "AZ BY CX", "QW ER TY UI OP")

	properties.Property("deciphering with the same settings restores the message", prop.ForAll(
		func(k, msg, p string) bool {
			s := settings(k, p)
			enc, err := New(s)
			if err != nil {
				return false
			}
			dec, err := New(s)
			if err != nil {
				return false
			}
			return dec.Encipher(enc.Encipher(msg)) == msg
		},
		key, message, plugs,
	))

	properties.Property("non letters keep their place", prop.ForAll(
		func(k, msg string) bool {
			out := []rune(newMachine(t, settings(k, "")).Encipher(msg))
			for i, r := range []rune(msg) {
				if r == ' ' || r == '.' || r == ',' || r == '!' || r == '?' {
					if out[i] != r {
						return false
					}
				}
			}
			return len(out) == len([]rune(msg))
		},
		key, message,
	))

	properties.TestingRun(t)
}
