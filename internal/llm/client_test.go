package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"postcraft/internal/config"
)

func stubResponse(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func withStubDo(t *testing.T, fn func(*http.Request) (*http.Response, error)) {
	t.Helper()
	orig := httpDo
	httpDo = fn
	t.Cleanup(func() { httpDo = orig })
}

func testClient() *Client {
	return New(config.LLMConfig{Provider: "openai", Model: "gpt-4o-mini", APIKey: "k"})
}

func TestNewWithoutProviderReturnsNil(t *testing.T) {
	if c := New(config.LLMConfig{Provider: "none"}); c != nil {
		t.Fatalf("expected nil client without provider")
	}
	var c *Client
	if _, err := c.GenerateText(context.Background(), "hi"); err == nil {
		t.Fatalf("nil client must report unavailability")
	}
}

func TestGenerateTextParsesChoices(t *testing.T) {
	withStubDo(t, func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("Authorization"); got != "Bearer k" {
			t.Fatalf("missing auth header, got %q", got)
		}
		return stubResponse(200, `{"choices":[{"message":{"content":"Fresh take on Go. #golang"}}]}`), nil
	})
	text, err := testClient().GenerateText(context.Background(), "write a post")
	if err != nil {
		t.Fatal(err)
	}
	if text != "Fresh take on Go. #golang" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGenerateTextEmptyCompletion(t *testing.T) {
	withStubDo(t, func(req *http.Request) (*http.Response, error) {
		return stubResponse(200, `{"choices":[{"message":{"content":"   "}}]}`), nil
	})
	if _, err := testClient().GenerateText(context.Background(), "p"); !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGenerateTextErrorStatus(t *testing.T) {
	withStubDo(t, func(req *http.Request) (*http.Response, error) {
		return stubResponse(429, `{}`), nil
	})
	if _, err := testClient().GenerateText(context.Background(), "p"); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestGenerateTextTransportError(t *testing.T) {
	withStubDo(t, func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	if _, err := testClient().GenerateText(context.Background(), "p"); err == nil {
		t.Fatalf("expected transport error to surface")
	}
}
