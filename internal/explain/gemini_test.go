package explain

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient("https://generativelanguage.example.com/v1beta/models/test:generateContent", "secret-key", &http.Client{Transport: rt})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestGenerateContentSendsKeyAndPrompt(t *testing.T) {
	var seenKey, seenBody, seenContentType string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenKey = r.URL.Query().Get("key")
		seenContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		seenBody = string(body)
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"generated text"}]}}]}`), nil
	}))

	got, err := client.GenerateContent(context.Background(), "explain these answers")
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}
	if got != "generated text" {
		t.Fatalf("unexpected text: %q", got)
	}
	if seenKey != "secret-key" {
		t.Fatalf("key query parameter = %q", seenKey)
	}
	if seenContentType != "application/json" {
		t.Fatalf("content type = %q", seenContentType)
	}
	if seenBody != `{"contents":[{"parts":[{"text":"explain these answers"}]}]}` {
		t.Fatalf("unexpected request body: %s", seenBody)
	}
}

func TestGenerateContentNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":"quota"}`), nil
	}))

	if _, err := client.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestGenerateContentMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not-json"},
		{name: "no candidates", body: `{"candidates":[]}`},
		{name: "no parts", body: `{"candidates":[{"content":{"parts":[]}}]}`},
		{name: "empty text", body: `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, tc.body), nil
			}))

			if _, err := client.GenerateContent(context.Background(), "prompt"); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestGenerateContentUsesOnlyFirstCandidate(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK,
			`{"candidates":[{"content":{"parts":[{"text":"first"},{"text":"second part"}]}},{"content":{"parts":[{"text":"second candidate"}]}}]}`), nil
	}))

	got, err := client.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}
	if got != "first" {
		t.Fatalf("expected first candidate's first part, got %q", got)
	}
}
