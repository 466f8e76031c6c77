package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sandrikkk/quiz/internal/quiz"
)

func TestRouterWiresQuestionRoutes(t *testing.T) {
	api, _ := newTestAPI(t, inactiveExplainConfig(), nil)
	server := httptest.NewServer(NewRouter(api, nil, ""))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/quiz/2")
	if err != nil {
		t.Fatalf("GET /api/quiz/2 failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var question quiz.PublicQuestion
	if err := json.NewDecoder(resp.Body).Decode(&question); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if question.ID != 2 || question.Question != "Q2" {
		t.Fatalf("unexpected question: %+v", question)
	}
}

func TestRouterSubmitAndResultsFlow(t *testing.T) {
	api, _ := newTestAPI(t, inactiveExplainConfig(), nil)
	server := httptest.NewServer(NewRouter(api, nil, ""))
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/quiz/3/answer", "application/json", strings.NewReader(`{"answer":"A"}`))
	if err != nil {
		t.Fatalf("POST answer failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	resp, err = http.Get(server.URL + "/api/results")
	if err != nil {
		t.Fatalf("GET results failed: %v", err)
	}
	defer resp.Body.Close()

	var results quiz.Results
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	// Question 3's correct answer is A, so the submission above makes two
	// correct out of three.
	if results.CorrectAnswers != 2 {
		t.Fatalf("correct answers = %d, want 2", results.CorrectAnswers)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	api, _ := newTestAPI(t, inactiveExplainConfig(), nil)
	server := httptest.NewServer(NewRouter(api, nil, ""))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/reset")
	if err != nil {
		t.Fatalf("GET /api/reset failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}
