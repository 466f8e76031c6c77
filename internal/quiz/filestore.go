package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// storedQuestion is the on-disk JSON shape. The answer fields are lists of
// zero or one letter for compatibility with existing quiz files; the
// domain model uses plain optional scalars.
type storedQuestion struct {
	ID         int      `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Correct    []string `json:"correct"`
	UserAnswer []string `json:"user_answer"`
}

// FileStore reads and writes the whole quiz document as one JSON file.
// The mutex keeps individual Load/Save calls from interleaving on the
// file; a concurrent submit against the same store is still
// last-writer-wins across the Load/Save pair.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var stored []storedQuestion
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(stored))
	for _, item := range stored {
		questions = append(questions, Question{
			ID:            item.ID,
			Question:      item.Question,
			Options:       item.Options,
			CorrectAnswer: firstOrEmpty(item.Correct),
			UserAnswer:    firstOrEmpty(item.UserAnswer),
		})
	}
	return questions, nil
}

func (s *FileStore) Save(_ context.Context, questions []Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]storedQuestion, 0, len(questions))
	for _, question := range questions {
		stored = append(stored, storedQuestion{
			ID:         question.ID,
			Question:   question.Question,
			Options:    question.Options,
			Correct:    wrapLetter(question.CorrectAnswer),
			UserAnswer: wrapLetter(question.UserAnswer),
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func firstOrEmpty(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func wrapLetter(letter string) []string {
	if letter == "" {
		return []string{}
	}
	return []string{letter}
}
