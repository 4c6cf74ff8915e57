package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"host-insight/internal/config"
	"host-insight/internal/logs"
	"host-insight/internal/metrics"
)

// Fixed request parameters of the summarization call. These are part of the
// contract with the completion API, not tunables.
const (
	model       = "sonar"
	maxTokens   = 1000
	temperature = 0.3
)

// maxErrorBody caps how much of an upstream error body is carried into the
// result string.
const maxErrorBody = 2048

// Client issues summarization requests against a chat-completions API.
// It is stateless apart from its HTTP transport and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	metrics    *metrics.Registry
	logger     *logs.Logger
}

// NewClient builds a summarization client from the service configuration.
// The credential is injected here rather than read from the environment at
// call time, so tests can substitute it freely.
func NewClient(cfg config.Config, reg *metrics.Registry, logger *logs.Logger) *Client {
	return &Client{
		httpClient: newHTTPClient(cfg.Timeout()),
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		metrics:    reg,
		logger:     logger,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 10
	transport.MaxIdleConnsPerHost = 5
	transport.IdleConnTimeout = 60 * time.Second
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize requests a natural-language security summary for the raw
// payload. Every failure mode is folded into the returned text: a broken
// upstream must never block delivery of the deterministic metrics, so the
// caller always gets a string it can place in the response as-is.
func (c *Client) Summarize(ctx context.Context, payload json.RawMessage) string {
	text, err := c.complete(ctx, payload)
	if err == nil {
		c.metrics.Inc(metrics.SummariesGeneratedTotal)
		return text
	}

	c.metrics.Inc(metrics.SummaryFailuresTotal)

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsAuthError() {
			c.metrics.Inc(metrics.UpstreamAuthFailuresTotal)
		}
		c.logger.Warnf("summary request rejected upstream: HTTP %d", apiErr.StatusCode)
		return fmt.Sprintf("Error generating summary: %d - %s", apiErr.StatusCode, apiErr.Body)
	}

	c.logger.Warn("summary request failed: " + err.Error())
	return "Error generating summary: " + err.Error()
}

// complete performs the single outbound POST and extracts the first
// completion choice.
func (c *Client) complete(ctx context.Context, payload json.RawMessage) (string, error) {
	prompt, err := BuildHostDataPrompt(payload)
	if err != nil {
		return "", err
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
