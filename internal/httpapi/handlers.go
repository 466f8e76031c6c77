package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HandleQuiz returns all questions with correct answers stripped.
func (a *API) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	questions, err := a.service.Questions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (a *API) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := questionIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	question, err := a.service.Question(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// HandleCorrectAnswer reveals a question's correct letter and option text
// (quick-answer feature).
func (a *API) HandleCorrectAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := questionIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	answer, err := a.service.CorrectAnswer(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

func (a *API) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := questionIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	defer r.Body.Close()
	var request answerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	letter, err := a.service.SubmitAnswer(r.Context(), questionID, request.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Message: "Answer submitted successfully",
		Answer:  letter,
	})
}

// HandleResults grades the quiz. Explanation generation happens inside the
// service; its failures never fail this request.
func (a *API) HandleResults(w http.ResponseWriter, r *http.Request) {
	results, err := a.service.Results(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (a *API) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Reset(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Quiz reset successfully"})
}

func (a *API) HandleAIStats(w http.ResponseWriter, r *http.Request) {
	stats := a.explain.Statistics()
	writeJSON(w, http.StatusOK, aiStatsResponse{
		AIStatistics: stats,
		Message: fmt.Sprintf("Total API requests: %d, Questions processed: %d",
			stats.TotalRequests, stats.TotalQuestionsProcessed),
	})
}

func (a *API) HandleResetAIStats(w http.ResponseWriter, r *http.Request) {
	prior := a.explain.ResetStatistics()
	writeJSON(w, http.StatusOK, aiStatsResponse{
		AIStatistics: prior,
		Message:      "AI statistics reset successfully",
	})
}
