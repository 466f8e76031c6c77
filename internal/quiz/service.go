package quiz

import (
	"context"
	"math"

	"github.com/sandrikkk/quiz/internal/explain"
)

// Explainer produces one explanation per incorrect answer, keyed by
// explain.Key. Satisfied by *explain.Service.
type Explainer interface {
	BatchExplanations(ctx context.Context, items []explain.IncorrectAnswer) map[string]string
}

// Service grades the quiz document and records submitted answers.
type Service struct {
	store     Store
	explainer Explainer
}

func NewService(store Store, explainer Explainer) *Service {
	return &Service{
		store:     store,
		explainer: explainer,
	}
}

// Questions returns the full question set without correct answers.
func (s *Service) Questions(ctx context.Context) ([]PublicQuestion, error) {
	questions, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]PublicQuestion, 0, len(questions))
	for _, question := range questions {
		public = append(public, question.Public())
	}
	return public, nil
}

// Question returns a single question without its answer.
func (s *Service) Question(ctx context.Context, questionID int) (PublicQuestion, error) {
	question, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return PublicQuestion{}, err
	}
	return question.Public(), nil
}

// CorrectAnswer reveals a question's correct letter and the option text it
// addresses. The text is empty when the letter does not map to an option.
type CorrectAnswer struct {
	ID            int    `json:"id"`
	CorrectAnswer string `json:"correct_answer"`
	CorrectText   string `json:"correct_text"`
}

func (s *Service) CorrectAnswer(ctx context.Context, questionID int) (CorrectAnswer, error) {
	question, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return CorrectAnswer{}, err
	}
	return CorrectAnswer{
		ID:            question.ID,
		CorrectAnswer: question.CorrectAnswer,
		CorrectText:   question.OptionText(question.CorrectAnswer),
	}, nil
}

// SubmitAnswer records a user answer and persists the document before
// returning, so the next Results call observes it.
func (s *Service) SubmitAnswer(ctx context.Context, questionID int, answer string) (string, error) {
	letter := NormalizeLetter(answer)
	if letter == "" {
		return "", ErrInvalidLetter
	}

	questions, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	index := -1
	for idx := range questions {
		if questions[idx].ID == questionID {
			index = idx
			break
		}
	}
	if index < 0 {
		return "", ErrQuestionNotFound
	}
	if optionIndex(letter) >= len(questions[index].Options) {
		return "", ErrInvalidLetter
	}

	questions[index].UserAnswer = letter
	if err := s.store.Save(ctx, questions); err != nil {
		return "", err
	}
	return letter, nil
}

// Reset clears every user answer and keeps correct answers.
func (s *Service) Reset(ctx context.Context) error {
	questions, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for idx := range questions {
		questions[idx].UserAnswer = ""
	}
	return s.store.Save(ctx, questions)
}

type QuestionResult struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    *string  `json:"user_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   *string  `json:"ai_explanation"`
}

type Results struct {
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	Percentage      float64          `json:"percentage"`
	DetailedResults []QuestionResult `json:"detailed_results"`
}

// Results grades the whole document and attaches explanations to wrong,
// answered questions. Unanswered questions count as incorrect but never
// request an explanation. The explanation batch is requested exactly once
// per call regardless of how many answers were wrong.
func (s *Service) Results(ctx context.Context) (Results, error) {
	questions, err := s.store.Load(ctx)
	if err != nil {
		return Results{}, err
	}

	detailed := make([]QuestionResult, 0, len(questions))
	incorrect := make([]explain.IncorrectAnswer, 0)
	correctCount := 0

	for _, question := range questions {
		isCorrect := question.Answered() && question.UserAnswer == question.CorrectAnswer
		if isCorrect {
			correctCount++
		} else if question.Answered() {
			incorrect = append(incorrect, explain.IncorrectAnswer{
				QuestionID:    question.ID,
				Question:      question.Question,
				Options:       question.Options,
				UserAnswer:    question.UserAnswer,
				CorrectAnswer: question.CorrectAnswer,
			})
		}

		result := QuestionResult{
			ID:            question.ID,
			Question:      question.Question,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
		}
		if question.Answered() {
			userAnswer := question.UserAnswer
			result.UserAnswer = &userAnswer
		}
		detailed = append(detailed, result)
	}

	var explanations map[string]string
	if len(incorrect) > 0 && s.explainer != nil {
		explanations = s.explainer.BatchExplanations(ctx, incorrect)
	}

	for idx := range detailed {
		result := &detailed[idx]
		if result.IsCorrect || result.UserAnswer == nil {
			continue
		}
		// Same key derivation as the explanation builder.
		key := explain.Key(result.ID, *result.UserAnswer, result.CorrectAnswer)
		if text, ok := explanations[key]; ok {
			explanation := text
			result.Explanation = &explanation
		}
	}

	percentage := 0.0
	if len(questions) > 0 {
		percentage = math.Round(float64(correctCount)/float64(len(questions))*100*100) / 100
	}

	return Results{
		TotalQuestions:  len(questions),
		CorrectAnswers:  correctCount,
		Percentage:      percentage,
		DetailedResults: detailed,
	}, nil
}

func (s *Service) findQuestion(ctx context.Context, questionID int) (Question, error) {
	questions, err := s.store.Load(ctx)
	if err != nil {
		return Question{}, err
	}
	for _, question := range questions {
		if question.ID == questionID {
			return question, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}
