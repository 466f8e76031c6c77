package httpapi

import "github.com/sandrikkk/quiz/internal/explain"

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	Message string `json:"message"`
	Answer  string `json:"answer"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type aiStatsResponse struct {
	AIStatistics explain.Stats `json:"ai_statistics"`
	Message      string        `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
