// Package quiz owns the question records, the stores that persist them and
// the grading service that turns submitted answers into results.
package quiz

import "strings"

// Question is one record of the quiz document. Answers are option letters
// addressing Options positionally (A, B, C, ...); an empty UserAnswer
// means the question is unanswered.
type Question struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer string
	UserAnswer    string
}

// PublicQuestion is a question stripped of its answers for delivery to
// quiz takers.
type PublicQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
	}
}

// Answered reports whether the user has submitted an answer.
func (q Question) Answered() bool {
	return q.UserAnswer != ""
}

// OptionText resolves a letter to its option text, empty when the letter
// does not address an option.
func (q Question) OptionText(letter string) string {
	index := optionIndex(letter)
	if index < 0 || index >= len(q.Options) {
		return ""
	}
	return q.Options[index]
}

// NormalizeLetter uppercases and trims a submitted answer. An empty result
// means the input was not a single A-Z letter.
func NormalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return ""
	}
	return letter
}

func optionIndex(letter string) int {
	if len(letter) != 1 {
		return -1
	}
	return int(letter[0] - 'A')
}
