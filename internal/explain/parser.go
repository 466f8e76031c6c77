package explain

import (
	"strconv"
	"strings"
)

// ParsedSection is one per-question block recovered from generated text.
type ParsedSection struct {
	QuestionID int
	Body       string
}

// ParseSections splits generated text on the section marker and extracts
// the question identifier from each header. Text before the first marker
// is ignored; sections without a parseable identifier are dropped rather
// than aborting the rest of the parse.
func ParseSections(text string) []ParsedSection {
	parts := strings.Split(text, sectionMarker)
	if len(parts) < 2 {
		return nil
	}

	sections := make([]ParsedSection, 0, len(parts)-1)
	for _, part := range parts[1:] {
		questionID, body, ok := extractID(part)
		if !ok {
			continue
		}
		sections = append(sections, ParsedSection{
			QuestionID: questionID,
			Body:       strings.TrimSpace(body),
		})
	}
	return sections
}

// extractID pulls the integer out of the "(ID: N)" header token and
// returns the section text following it.
func extractID(section string) (int, string, bool) {
	const idToken = "(ID: "

	start := strings.Index(section, idToken)
	if start < 0 {
		return 0, "", false
	}

	rest := section[start+len(idToken):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return 0, "", false
	}

	questionID, err := strconv.Atoi(strings.TrimSpace(rest[:end]))
	if err != nil {
		return 0, "", false
	}
	return questionID, rest[end+1:], true
}
