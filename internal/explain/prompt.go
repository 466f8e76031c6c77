package explain

import (
	"fmt"
	"strings"
)

// sectionMarker opens every per-question block in generated output. The
// prompt template pins this format so ParseSections can recover structure.
const sectionMarker = "### Question"

const promptInstructions = `You are an IT education expert and programming instructor. Every question below is about information technology, programming, computer science or networking.

For each question, explain technically why the correct answer is correct and why the student's answer is wrong.
`

const promptRequirements = `**Requirements:**
1. A short, concise explanation for each question
2. Cover why the correct answer is right, from a technical IT perspective
3. Cover why the student's answer is wrong, with a technical justification
4. Use markdown formatting
5. At most 2-3 sentences per question
6. Use precise IT terminology

**Format:**
` + "```" + `
### Question (ID: X)
**Correct answer (Y):** [technical explanation]
**Why yours is wrong (Z):** [technical justification]

### Question (ID: X)
...
` + "```"

func sectionHeader(questionID int) string {
	return fmt.Sprintf("%s (ID: %d)", sectionMarker, questionID)
}

// BuildBatchPrompt renders one instructional document covering every item
// in input order.
func BuildBatchPrompt(items []IncorrectAnswer) string {
	var sb strings.Builder
	sb.WriteString(promptInstructions)

	for idx, item := range items {
		sb.WriteString(fmt.Sprintf("\n---\n**Question %d (ID: %d):**\n%s\n\n**Options:**\n", idx+1, item.QuestionID, item.Question))
		for optionIdx, option := range item.Options {
			sb.WriteString(fmt.Sprintf("%s. %s\n", OptionLetter(optionIdx), option))
		}
		sb.WriteString(fmt.Sprintf("\n**Student's answer:** %s\n**Correct answer:** %s\n", item.UserAnswer, item.CorrectAnswer))
	}

	sb.WriteString("\n")
	sb.WriteString(promptRequirements)
	return sb.String()
}

// DefaultExplanation is the fixed template used whenever generation is
// unavailable or an item's section is missing from the generated output.
// It depends only on the two answer letters.
func DefaultExplanation(userAnswer, correctAnswer string) string {
	return fmt.Sprintf("**Your answer:** %s ❌  \n**Correct answer:** %s ✅\n\n💡 **Tip:** Review the study material on this topic.", userAnswer, correctAnswer)
}

// OptionLetter maps an option position to its letter (0 -> A, 1 -> B, ...).
func OptionLetter(index int) string {
	return string(rune('A' + index))
}
