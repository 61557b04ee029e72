package scoring

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// letterValues are the standard English Scrabble tile values
var letterValues = map[rune]int{
	'A': 1, 'E': 1, 'I': 1, 'O': 1, 'U': 1, 'L': 1, 'N': 1, 'S': 1, 'T': 1, 'R': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// FullHandBonus is added when a word uses every tile in a seven-tile hand
const FullHandBonus = 50

// Service scores words by face value
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// LetterValue returns the face value of a letter, or 0 for anything that isn't A-Z
func (s *Service) LetterValue(r rune) int {
	return letterValues[unicode.ToUpper(r)]
}

// ScoreWord sums the letter values of word. Using all seven tiles earns
// FullHandBonus on top.
func (s *Service) ScoreWord(word string, handSize int) int {
	letters := []rune(strings.ToUpper(strings.TrimSpace(word)))
	score := lo.SumBy(letters, s.LetterValue)
	if handSize == 7 && len(letters) == 7 {
		score += FullHandBonus
	}
	return score
}
