// Package cli is an interactive terminal runner that takes a quiz against
// a running quiz-service over its HTTP API.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandrikkk/quiz/internal/quiz"
)

const maxAttempts = 3

type App struct {
	baseURL    string
	httpClient *http.Client
}

func NewApp(baseURL string, httpClient *http.Client) *App {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &App{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var questions []quiz.PublicQuestion
	if err := a.doJSON(ctx, http.MethodGet, "/api/quiz", nil, &questions); err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}

	reader := bufio.NewReader(in)
	for idx, question := range questions {
		printQuestion(out, idx+1, question)

		letter, ok := getAnswer(reader, out, len(question.Options))
		fmt.Fprintln(out)
		if !ok {
			fmt.Fprintln(out, "Skipping.")
			continue
		}

		body := map[string]string{"answer": letter}
		if err := a.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/quiz/%d/answer", question.ID), body, nil); err != nil {
			return fmt.Errorf("submit answer for question %d: %w", question.ID, err)
		}
	}

	var results quiz.Results
	if err := a.doJSON(ctx, http.MethodGet, "/api/results", nil, &results); err != nil {
		return fmt.Errorf("fetch results: %w", err)
	}

	printResults(out, results)
	return nil
}

func (a *App) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printQuestion(out io.Writer, number int, question quiz.PublicQuestion) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %s\n\n", number, question.Question)
	for idx, option := range question.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+idx, option)
	}
	fmt.Fprintln(out)
}

func printResults(out io.Writer, results quiz.Results) {
	fmt.Fprintf(out, "\nFinal score: %d/%d (%.2f%%)\n", results.CorrectAnswers, results.TotalQuestions, results.Percentage)

	for _, result := range results.DetailedResults {
		verdict := "correct"
		if !result.IsCorrect {
			verdict = "wrong"
			if result.UserAnswer == nil {
				verdict = "unanswered"
			}
		}
		fmt.Fprintf(out, "\nQ%d [%s]: %s\n", result.ID, verdict, result.Question)
		if result.Explanation != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, *result.Explanation)
		}
	}
}

func getAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (string, bool) {
	if optionCount < 1 {
		return "", false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		userAnswer, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}

		letter := quiz.NormalizeLetter(userAnswer)
		if letter != "" && letter[0] <= maxLetter {
			return letter, true
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}

	return "", false
}
