package quiz

import (
	"context"
	"errors"
)

var (
	ErrQuizNotFound     = errors.New("quiz data not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidLetter    = errors.New("answer letter does not address an option")
)

// Store owns the quiz document. The document is loaded and saved
// wholesale; concurrent read-modify-write flows against the same store are
// last-writer-wins.
type Store interface {
	Load(ctx context.Context) ([]Question, error)
	Save(ctx context.Context, questions []Question) error
}
