// Package explain generates natural-language explanations for incorrectly
// answered quiz questions. All incorrect answers of one grading request are
// batched into a single call to a generateContent endpoint; when generation
// is disabled, fails, or skips an item, a fixed default explanation fills
// the gap so every item always gets exactly one explanation.
package explain

import "fmt"

// IncorrectAnswer is an answered-but-wrong question, the unit of work for
// explanation generation. Unanswered questions never become items.
type IncorrectAnswer struct {
	QuestionID    int
	Question      string
	Options       []string
	UserAnswer    string
	CorrectAnswer string
}

// Key derives the composite identity used to correlate explanations back
// to graded results. The producer (batch builder) and the consumer (result
// merger) must compute it identically.
func Key(questionID int, userAnswer, correctAnswer string) string {
	return fmt.Sprintf("%d_%s_%s", questionID, userAnswer, correctAnswer)
}
