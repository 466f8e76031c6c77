package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sandrikkk/quiz/internal/quiz"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "quiz data not found"})
	case errors.Is(err, quiz.ErrQuestionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "question not found"})
	case errors.Is(err, quiz.ErrInvalidLetter):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "answer must be a letter addressing one of the options"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func questionIDParam(r *http.Request) (int, error) {
	questionID, err := strconv.Atoi(chi.URLParam(r, "question_id"))
	if err != nil {
		return 0, errors.New("question_id must be an integer")
	}
	return questionID, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
