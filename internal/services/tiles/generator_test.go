package tiles

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcoach/internal/dependencies/mocks"
	"github.com/mcoot/wordcoach/internal/dependencies/random"
	"github.com/mcoot/wordcoach/internal/model"
)

type GeneratorSuite struct {
	suite.Suite
	random    *mocks.MockRandom
	generator *Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.generator = New(s.random)
}

// queueDraws queues the letter draws for a 7-tile hand of A,E / B,C / D,F,G
func (s *GeneratorSuite) queueDraws() {
	s.random.QueueIntn(0, 1, 0, 1, 7, 8, 9)
}

func (s *GeneratorSuite) TestDrawOrder() {
	s.queueDraws()

	hand := s.generator.Draw(7)

	s.Equal("AEBCDFG", hand.String())
	s.Equal([]int{5, 5, 21, 21, 26, 26, 26}, s.random.Calls)
}

func (s *GeneratorSuite) TestGenerateWithIdentityShuffle() {
	s.queueDraws()
	// j == i at every step leaves the hand in draw order
	s.random.QueueIntn(6, 5, 4, 3, 2, 1)

	hand := s.generator.Generate(7)

	s.Equal([]string{"A", "E", "B", "C", "D", "F", "G"}, hand.Strings())
}

func (s *GeneratorSuite) TestGenerateWithFrontSwapShuffle() {
	s.queueDraws()
	s.random.QueueIntn(0, 0, 0, 0, 0, 0)

	hand := s.generator.Generate(7)

	s.ElementsMatch(model.NewTiles("AEBCDFG"), hand)
	s.NotEqual("AEBCDFG", hand.String())
	s.True(hand.IsPlayable())
}

func (s *GeneratorSuite) TestShuffleCallsUseShrinkingRanges() {
	s.queueDraws()

	s.generator.Generate(7)

	s.Equal([]int{7, 6, 5, 4, 3, 2}, s.random.Calls[7:])
}

func (s *GeneratorSuite) TestMinimumHandIsExactlyTwoAndTwo() {
	hand := New(random.New()).Generate(model.MinHandSize)

	s.Len(hand, 4)
	s.Equal(2, hand.VowelCount())
	s.Equal(2, hand.ConsonantCount())
}

func (s *GeneratorSuite) TestShapeHoldsAcrossSizes() {
	g := New(random.New())
	for count := model.MinHandSize; count <= 20; count++ {
		for trial := 0; trial < 200; trial++ {
			hand := g.Generate(count)
			s.Require().Len(hand, count)
			s.Require().True(hand.IsPlayable(), "hand %s of size %d", hand, count)
		}
	}
}

func (s *GeneratorSuite) TestSeededSourceIsReproducible() {
	a := New(random.NewSeeded(42))
	b := New(random.NewSeeded(42))

	for i := 0; i < 20; i++ {
		s.Equal(a.Generate(model.DefaultHandSize), b.Generate(model.DefaultHandSize))
	}
}

func (s *GeneratorSuite) TestOrderVaries() {
	g := New(random.NewSeeded(7))
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[g.Generate(model.DefaultHandSize).String()] = struct{}{}
	}
	s.Greater(len(seen), 1)
}

func (s *GeneratorSuite) TestFillDrawsCoverWholeAlphabet() {
	g := New(random.NewSeeded(1))
	seen := make(map[rune]struct{})
	for i := 0; i < 500; i++ {
		for _, r := range g.Draw(10)[4:] {
			seen[r] = struct{}{}
		}
	}
	s.Len(seen, len(model.Alphabet))
}
