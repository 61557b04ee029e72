// Package tiles draws letter hands for the word game.
package tiles

import (
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/model"
)

// Generator produces playable hands. A hand always holds at least
// model.MinVowels vowels and model.MinConsonants consonants; the remaining
// slots are drawn from the whole alphabet so they stay close to uniform.
type Generator struct {
	random random.Random
}

// New creates a Generator drawing from the given source
func New(random random.Random) *Generator {
	return &Generator{random: random}
}

// Generate returns a shuffled hand of count letters. count must be at least
// model.MinHandSize; smaller values are a caller bug and are not checked.
func (g *Generator) Generate(count int) model.Tiles {
	hand := g.Draw(count)
	g.shuffle(hand)
	return hand
}

// Draw returns the hand before shuffling: vowels first, then consonants, then fill
func (g *Generator) Draw(count int) model.Tiles {
	hand := make(model.Tiles, 0, count)
	for i := 0; i < model.MinVowels; i++ {
		hand = append(hand, g.pick(model.Vowels))
	}
	for i := 0; i < model.MinConsonants; i++ {
		hand = append(hand, g.pick(model.Consonants))
	}
	for i := len(hand); i < count; i++ {
		hand = append(hand, g.pick(model.Alphabet))
	}
	return hand
}

func (g *Generator) pick(letters string) rune {
	return rune(letters[g.random.Intn(len(letters))])
}

// shuffle is a Fisher-Yates permutation in place
func (g *Generator) shuffle(hand model.Tiles) {
	for i := len(hand) - 1; i > 0; i-- {
		j := g.random.Intn(i + 1)
		hand[i], hand[j] = hand[j], hand[i]
	}
}
