package explain

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces text for a prompt. Satisfied by *Client; tests
// substitute fakes.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey  string
	Enabled bool
	Model   string
	APIURL  string
}

// Service batches incorrect answers into single generate calls and tracks
// process-wide usage counters. Safe for concurrent use; each batch call is
// independent aside from the atomic counter increments.
type Service struct {
	cfg       Config
	generator Generator

	requests           atomic.Int64
	questionsProcessed atomic.Int64
}

// NewService builds a service around the given generator. Passing a nil
// generator wires the default Gemini client from the config.
func NewService(cfg Config, generator Generator) *Service {
	if generator == nil {
		generator = NewClient(cfg.APIURL, cfg.APIKey, nil)
	}
	return &Service{cfg: cfg, generator: generator}
}

// Active reports whether generation is administratively enabled and a
// credential is configured.
func (s *Service) Active() bool {
	return s.cfg.Enabled && s.cfg.APIKey != ""
}

// BatchExplanations returns exactly one explanation per item, keyed by
// Key. At most one generate call is made regardless of batch size. An
// inactive service or an empty batch short-circuits to defaults without a
// network call; a failed call falls back to defaults for the whole batch;
// items whose section is missing from otherwise-usable output fall back
// individually.
func (s *Service) BatchExplanations(ctx context.Context, items []IncorrectAnswer) map[string]string {
	if !s.Active() || len(items) == 0 {
		return defaultExplanations(items)
	}

	// Counters cover attempted calls, so they move before the call.
	requestNumber := s.requests.Add(1)
	s.questionsProcessed.Add(int64(len(items)))
	requestID := uuid.NewString()[:8]

	prompt := BuildBatchPrompt(items)
	log.Printf("explain: request #%d [%s] model=%s questions=%d prompt_chars=%d",
		requestNumber, requestID, s.cfg.Model, len(items), len(prompt))

	generated, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("explain: request #%d [%s] failed, using default explanations: %v", requestNumber, requestID, err)
		return defaultExplanations(items)
	}

	log.Printf("explain: request #%d [%s] completed response_chars=%d cost_estimate=$%.4f",
		requestNumber, requestID, len(generated), EstimateCost(len(prompt), len(generated)))

	return mapSections(ParseSections(generated), items)
}

func defaultExplanations(items []IncorrectAnswer) map[string]string {
	explanations := make(map[string]string, len(items))
	for _, item := range items {
		explanations[Key(item.QuestionID, item.UserAnswer, item.CorrectAnswer)] = DefaultExplanation(item.UserAnswer, item.CorrectAnswer)
	}
	return explanations
}

// mapSections correlates parsed sections with the items that produced
// them. A section is matched to the first item with its question id, the
// stored text is the section body re-prefixed with the canonical header,
// and any item left without a section gets the default explanation so
// coverage is total.
func mapSections(sections []ParsedSection, items []IncorrectAnswer) map[string]string {
	explanations := make(map[string]string, len(items))

	for _, section := range sections {
		for _, item := range items {
			if item.QuestionID != section.QuestionID {
				continue
			}
			key := Key(item.QuestionID, item.UserAnswer, item.CorrectAnswer)
			if _, exists := explanations[key]; !exists {
				explanations[key] = sectionHeader(section.QuestionID) + "\n" + section.Body
			}
			break
		}
	}

	for _, item := range items {
		key := Key(item.QuestionID, item.UserAnswer, item.CorrectAnswer)
		if _, ok := explanations[key]; !ok {
			explanations[key] = DefaultExplanation(item.UserAnswer, item.CorrectAnswer)
		}
	}

	return explanations
}

// Stats is a point-in-time snapshot of explanation-service usage.
type Stats struct {
	TotalRequests           int64 `json:"total_requests"`
	TotalQuestionsProcessed int64 `json:"total_questions_processed"`
	Enabled                 bool  `json:"enabled"`
	APIKeyConfigured        bool  `json:"api_key_configured"`
}

func (s *Service) Statistics() Stats {
	return Stats{
		TotalRequests:           s.requests.Load(),
		TotalQuestionsProcessed: s.questionsProcessed.Load(),
		Enabled:                 s.Active(),
		APIKeyConfigured:        s.cfg.APIKey != "",
	}
}

// ResetStatistics zeroes the counters and returns the values they held.
// The enabled/credential flags are configuration and stay as they were.
func (s *Service) ResetStatistics() Stats {
	prior := Stats{
		TotalRequests:           s.requests.Swap(0),
		TotalQuestionsProcessed: s.questionsProcessed.Swap(0),
		Enabled:                 s.Active(),
		APIKeyConfigured:        s.cfg.APIKey != "",
	}
	log.Printf("explain: statistics reset: %d requests, %d questions", prior.TotalRequests, prior.TotalQuestionsProcessed)
	return prior
}

// EstimateCost approximates the cost of one generate call from prompt and
// response character counts. Informational only, never affects control
// flow.
func EstimateCost(promptChars, responseChars int) float64 {
	const (
		inputRatePer1KChars  = 0.000075
		outputRatePer1KChars = 0.0003
	)
	return float64(promptChars)/1000*inputRatePer1KChars + float64(responseChars)/1000*outputRatePer1KChars
}
