package factory

import (
	"time"

	"github.com/mcoot/wordcoach/internal/dependencies/mocks"
	"github.com/mcoot/wordcoach/internal/llm/llmtest"
	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/services/judge"
	"github.com/mcoot/wordcoach/internal/services/session"
	"github.com/mcoot/wordcoach/internal/storage/memory"
	"github.com/mcoot/wordcoach/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockLLM    *llmtest.Fake
}

// NewTestApp creates an App on memory storage with mocked clock, randomness
// and LLM. The judge is the offline dictionary judge.
func NewTestApp() *TestApp {
	return NewTestAppWithJudge(nil)
}

// NewTestAppWithJudge is NewTestApp with the given judge in place of the
// dictionary judge. A nil judge keeps the dictionary judge.
func NewTestAppWithJudge(j judge.Judge) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockLLM := llmtest.New()

	app, err := newWithDependencies(dependencies{
		storage:       memory.New(),
		clock:         mockClock,
		random:        mockRandom,
		llm:           mockLLM,
		judge:         j,
		judgeProvider: judge.ProviderDictionary,
		authConfig:    auth.DefaultConfig(),
		sessionConfig: session.Config{HandSize: 7, JudgeTimeout: 2 * time.Second},
		logger:        testutil.NopLogger(),
	})
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockLLM:    mockLLM,
	}
}

// QueueStandardHand makes the next hand drawn come out as A E B C D F G, in
// that order
func (t *TestApp) QueueStandardHand() {
	// draws: A E from vowels, B C from consonants, D F G from the alphabet
	t.MockRandom.QueueIntn(0, 1, 0, 1, 7, 8, 9)
	// identity shuffle
	t.MockRandom.QueueIntn(6, 5, 4, 3, 2, 1)
}

// LoadTestDictionary loads a small dictionary for testing. Every word in it
// can be built from the standard hand or is a common short word.
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadWords([]string{
		// from A E B C D F G
		"ace", "aced", "age", "aged", "bad", "bade", "badge", "bag", "bead",
		"bed", "beg", "cab", "cafe", "cage", "caged", "dab", "deaf", "decaf",
		"face", "faced", "fad", "fade", "fed", "gab", "gad",
		// common words
		"at", "be", "do", "go", "it", "cat", "dog", "the", "and", "word",
		"quiz", "zebra", "tile", "tiles", "sentence",
	})
}
