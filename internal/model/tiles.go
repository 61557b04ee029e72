package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Letter groups used when drawing a hand
const (
	Vowels     = "AEIOU"
	Consonants = "BCDFGHJKLMNPQRSTVWXYZ"
	Alphabet   = Vowels + Consonants
)

// Hand shape constraints
const (
	DefaultHandSize = 7
	MinVowels       = 2
	MinConsonants   = 2
	MinHandSize     = MinVowels + MinConsonants
)

// Tiles is the ordered hand of letters available to a player in a round.
// A hand is replaced wholesale on a new game; methods never modify the receiver.
type Tiles []rune

// NewTiles builds a hand from a string of letters, upper-casing as it goes
func NewTiles(letters string) Tiles {
	return Tiles(strings.ToUpper(letters))
}

// IsVowel reports whether r is one of A, E, I, O, U
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// IsConsonant reports whether r is one of the 21 non-vowel letters
func IsConsonant(r rune) bool {
	return strings.ContainsRune(Consonants, r)
}

// String returns the letters concatenated, e.g. "AEBCDFG"
func (t Tiles) String() string {
	return string(t)
}

// Strings returns each letter as its own string
func (t Tiles) Strings() []string {
	return lo.Map(t, func(r rune, _ int) string { return string(r) })
}

// Clone returns an independent copy of the hand
func (t Tiles) Clone() Tiles {
	if t == nil {
		return nil
	}
	out := make(Tiles, len(t))
	copy(out, t)
	return out
}

// VowelCount returns the number of vowels in the hand
func (t Tiles) VowelCount() int {
	return lo.CountBy(t, IsVowel)
}

// ConsonantCount returns the number of consonants in the hand
func (t Tiles) ConsonantCount() int {
	return lo.CountBy(t, IsConsonant)
}

// IsPlayable reports whether the hand meets the minimum vowel and consonant counts
// and contains only letters A-Z
func (t Tiles) IsPlayable() bool {
	if !lo.EveryBy(t, func(r rune) bool { return IsVowel(r) || IsConsonant(r) }) {
		return false
	}
	return t.VowelCount() >= MinVowels && t.ConsonantCount() >= MinConsonants
}

// CanForm reports whether word can be spelled using each tile at most once.
// Comparison is case-insensitive.
func (t Tiles) CanForm(word string) bool {
	if word == "" {
		return false
	}
	available := lo.CountValues(t)
	for _, r := range strings.ToUpper(word) {
		if available[r] == 0 {
			return false
		}
		available[r]--
	}
	return true
}

// MarshalJSON encodes the hand as an array of one-letter strings
func (t Tiles) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Strings())
}

// UnmarshalJSON decodes an array of one-letter strings
func (t *Tiles) UnmarshalJSON(data []byte) error {
	var letters []string
	if err := json.Unmarshal(data, &letters); err != nil {
		return err
	}
	out := make(Tiles, 0, len(letters))
	for _, l := range letters {
		if utf8.RuneCountInString(l) != 1 {
			return fmt.Errorf("tile %q is not a single letter", l)
		}
		r, _ := utf8.DecodeRuneInString(strings.ToUpper(l))
		out = append(out, r)
	}
	*t = out
	return nil
}
