package judge

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/dictionary"
	"github.com/mcoot/wordcoach/internal/services/scoring"
)

// Dictionary judges plays offline: the word list decides validity, the tile
// multiset decides buildability, and a few surface rules stand in for a
// grammar check.
type Dictionary struct {
	dictionary *dictionary.Service
	scoring    *scoring.Service
}

// NewDictionary creates an offline judge
func NewDictionary(dictionary *dictionary.Service, scoring *scoring.Service) *Dictionary {
	return &Dictionary{
		dictionary: dictionary,
		scoring:    scoring,
	}
}

// Ensure Dictionary implements Judge
var _ Judge = (*Dictionary)(nil)

// Judge validates the play
func (j *Dictionary) Judge(ctx context.Context, req model.ValidationRequest) (*model.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !j.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	word := cases.Upper(language.English).String(strings.TrimSpace(req.Word))
	sentence := norm.NFC.String(strings.TrimSpace(req.Sentence))

	res := &model.ValidationResult{
		IsValidWord:        j.dictionary.IsValidWord(word),
		CanBeMadeFromTiles: req.Tiles.CanForm(word),
	}
	grammarProblem := checkSentence(sentence, word)
	res.IsGrammaticallyCorrect = grammarProblem == ""

	switch {
	case !res.IsValidWord:
		res.Feedback = fmt.Sprintf(feedbackInvalidWord, word)
	case !res.CanBeMadeFromTiles:
		res.Feedback = fmt.Sprintf(feedbackWrongTiles, word)
		if hint := j.dictionary.LongestFrom(req.Tiles); hint != "" {
			res.Feedback += fmt.Sprintf(" You could make '%s'.", hint)
		}
	case !res.IsGrammaticallyCorrect:
		res.Feedback = grammarProblem
	default:
		res.Feedback = fmt.Sprintf(feedbackExcellent, word)
		res.Score = j.scoring.ScoreWord(word, len(req.Tiles))
	}
	return res, nil
}

const closingMarks = "\"'”’»)]} "

// checkSentence returns a description of the first surface problem with the
// sentence, or "" if there is none
func checkSentence(sentence, word string) string {
	words := strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	if len(words) < 2 {
		return "Please write a full sentence, not just a word or two."
	}

	folded := cases.Fold()
	target := folded.String(word)
	used := false
	for _, w := range words {
		if folded.String(strings.Trim(w, "'")) == target {
			used = true
			break
		}
	}
	if !used {
		return fmt.Sprintf("Your sentence needs to use the word '%s'.", word)
	}

	if i := strings.IndexFunc(sentence, unicode.IsLetter); i >= 0 {
		first, _ := utf8.DecodeRuneInString(sentence[i:])
		if !unicode.IsUpper(first) {
			return "A sentence should start with a capital letter."
		}
	}

	// Closing quotes and brackets may follow the final punctuation
	end := strings.TrimRight(sentence, closingMarks)
	last, _ := utf8.DecodeLastRuneInString(end)
	if !strings.ContainsRune(".!?…", last) {
		return "A sentence should end with a full stop, question mark or exclamation mark."
	}
	return ""
}
