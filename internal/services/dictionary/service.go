package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/storage"
)

// MinWordLength is the shortest word the dictionary accepts
const MinWordLength = 2

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// Load populates the dictionary from storage, falling back to the word list
// at path (which is then saved to storage) when storage has none.
func (s *Service) Load(ctx context.Context, path string) error {
	err := s.LoadFromStorage(ctx)
	if err == nil {
		s.logger.Info("dictionary loaded from storage", slog.Int("words", s.WordCount()))
		return nil
	}
	if path == "" {
		return err
	}
	if err := s.LoadFromFile(ctx, path); err != nil {
		return err
	}
	s.logger.Info("dictionary loaded from file",
		slog.String("path", path),
		slog.Int("words", s.WordCount()),
	)
	return nil
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.LoadWords(words)
	return nil
}

// LoadFromFile loads a word list (one word per line, '#' comments allowed)
// and saves it to storage for future starts
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word list: %w", err)
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.LoadWords(words)
	return nil
}

// LoadWords replaces the dictionary contents
func (s *Service) LoadWords(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		s.words[Normalize(word)] = struct{}{}
	}
	s.loaded = true
}

// IsValidWord checks if a word exists in the dictionary. Matching ignores
// case and surrounding whitespace; words shorter than MinWordLength are never valid.
func (s *Service) IsValidWord(word string) bool {
	key := Normalize(word)
	if len([]rune(key)) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.words[key]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// LongestFrom returns the longest dictionary word that can be spelled with
// the tiles, upper-cased, or "" if there is none. Ties go to the
// alphabetically first word.
func (s *Service) LongestFrom(tiles model.Tiles) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := ""
	for word := range s.words {
		n, m := len([]rune(word)), len([]rune(best))
		if n < MinWordLength || n > len(tiles) || n < m {
			continue
		}
		upper := strings.ToUpper(word)
		if n == m && upper >= best {
			continue
		}
		if tiles.CanForm(upper) {
			best = upper
		}
	}
	return best
}

// Normalize is the dictionary's lookup key for a word: NFC-composed,
// trimmed and case-folded
func Normalize(word string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(word)))
}
