package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"postcraft/internal/config"
)

// Generator is the text-generation capability consumed by the content engine.
// Implementations may fail or time out; callers must tolerate both.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when the provider answers with no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// Client talks to an OpenAI-compatible completion endpoint.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	limiter *limiter
}

// New builds a client from LLM config, or nil when no provider is configured.
// A nil *Client is a valid Generator that always reports unavailability, so
// the engine's fallback path still produces content.
func New(cfg config.LLMConfig) *Client {
	if strings.ToLower(cfg.Provider) != "openai" || cfg.APIKey == "" {
		return nil
	}
	return &Client{
		baseURL: "https://api.openai.com/v1",
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		limiter: newDefaultLimiter(),
	}
}

// --- light http helpers (decoupled for testability) ---

var httpNewRequest = defaultNewRequest
var httpDo = defaultDo

func defaultNewRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
}

func defaultDo(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	return client.Do(req)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	OutputText string `json:"output_text"`
	Choices    []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateText submits a prompt and returns the completion text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", errors.New("no llm provider configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	req, err := httpNewRequest(ctx, http.MethodPost, c.baseURL+"/chat/completions", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpDo(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("llm status %d", resp.StatusCode)
	}
	var raw chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if text := strings.TrimSpace(raw.OutputText); text != "" {
		return text, nil
	}
	if len(raw.Choices) > 0 {
		if text := strings.TrimSpace(raw.Choices[0].Message.Content); text != "" {
			return text, nil
		}
	}
	return "", ErrEmptyCompletion
}
