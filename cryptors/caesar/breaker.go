package caesar

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bgallie/enigma/cryptors"
)

// mostCommon is the letter assumed to be the most frequent in English text.
const mostCommon = 'e'

// Guess is the result of a frequency attack.
type Guess struct {
	Letter    rune // most frequent letter of the ciphertext
	Count     int
	Shift     int
	Plaintext string
}

// GuessShift assumes the most frequent letter of ciphertext stands for 'e'
// (or 'E') and decodes with the implied shift.  Letters are counted with
// their case and ties go to the letter seen first.  This is only a guess:
// short texts or texts without the usual English letter frequencies will
// often come out wrong.
func GuessShift(ciphertext string) (Guess, error) {
	counts := make(map[rune]int)
	var order []rune
	for _, c := range ciphertext {
		if !cryptors.Letters.Contains(c) {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	if len(order) == 0 {
		return Guess{}, fmt.Errorf("%w: no letters to count", cryptors.ErrNoMatchFound)
	}

	var g Guess
	for _, c := range order {
		if counts[c] > g.Count {
			g.Letter, g.Count = c, counts[c]
		}
	}

	idx, _ := cryptors.Letters.IndexOf(g.Letter)
	e, _ := cryptors.Letters.IndexOf(mostCommon)
	g.Shift = cryptors.Mod(idx-cryptors.Letters.Block(idx)-e, cryptors.LettersPerCase)
	g.Plaintext = Decode(ciphertext, NewTables(g.Shift))
	return g, nil
}

// Candidate is one decoding tried by a brute force attack.
type Candidate struct {
	Shift     int
	Plaintext string
	Score     int // dictionary words found, set by Rank
}

// BruteForce decodes ciphertext with every shift from 0 to 25.
func BruteForce(ciphertext string) []Candidate {
	res := make([]Candidate, cryptors.LettersPerCase)
	for shift := range res {
		res[shift] = Candidate{Shift: shift, Plaintext: Decode(ciphertext, NewTables(shift))}
	}
	return res
}

// Rank scores every candidate by the number of its words found in
// dictionary and sorts them best first.  Candidates with equal scores keep
// their order.  dictionary entries are matched ignoring case.
func Rank(candidates []Candidate, dictionary []string) []Candidate {
	words := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		words[strings.ToLower(w)] = struct{}{}
	}

	ranked := make([]Candidate, len(candidates))
	for i, c := range candidates {
		c.Score = 0
		for _, w := range strings.FieldsFunc(c.Plaintext, func(r rune) bool { return !unicode.IsLetter(r) }) {
			if _, ok := words[strings.ToLower(w)]; ok {
				c.Score++
			}
		}
		ranked[i] = c
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// CommonWords is a small list of frequent English words for Rank.
var CommonWords = strings.Fields(`
	the be to of and a in that have i it for not on with he as you do at this
	but his by from they we say her she or an will my one all would there their
	what so up out if about who get which go me when make can like time no just
	him know take people into year your good some could them see other than then
	now look only come its over think also back after use two how our work first
	well way even new want because any these give day most us is are was were
	has had been did said am love life live here where why away never ever
`)
