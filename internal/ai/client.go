package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fitmantra/fitmantra-backend/internal/config"
)

// ErrNoResponse is returned when a provider answers without any completion
// choices; handlers report it distinctly from provider-described failures.
var ErrNoResponse = errors.New("no response from AI")

// ErrNoProvider is returned when no provider is configured for the request.
var ErrNoProvider = errors.New("no AI provider available")

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content interface{} `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls OpenAI-compatible chat-completion endpoints. GLM is tried
// first, DeepSeek is the text fallback; vision requests need GLM.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Complete sends a text-only prompt and returns the reply text.
func (c *Client) Complete(system, user string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	if c.cfg.GLMAPIKey != "" {
		reply, err := c.send(c.cfg.GLMAPIURL, c.cfg.GLMAPIKey, c.cfg.GLMModel, messages)
		if err == nil {
			return reply, nil
		}
		slog.Warn("GLM completion failed", "error", err)
	}

	if c.cfg.DeepSeekAPIKey != "" {
		reply, err := c.send(c.cfg.DeepSeekAPIURL, c.cfg.DeepSeekAPIKey, c.cfg.DeepSeekModel, messages)
		if err == nil {
			return reply, nil
		}
		slog.Warn("DeepSeek completion failed", "error", err)
		return "", err
	}

	return "", ErrNoProvider
}

// CompleteWithImage sends a prompt plus a base64 JPEG frame to the vision
// model.
func (c *Client) CompleteWithImage(system, user, imageData string) (string, error) {
	if c.cfg.GLMAPIKey == "" {
		return "", ErrNoProvider
	}

	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: user},
			{Type: "image_url", ImageURL: &chatImageURL{
				URL:    fmt.Sprintf("data:image/jpeg;base64,%s", imageData),
				Detail: "auto",
			}},
		}},
	}

	return c.send(c.cfg.GLMAPIURL, c.cfg.GLMAPIKey, c.cfg.GLMVisionModel, messages)
}

func (c *Client) send(apiURL, apiKey, model string, messages []chatMessage) (string, error) {
	payload, err := json.Marshal(chatRequest{Model: model, Messages: messages, Temperature: 0.7})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoResponse
	}

	var content string
	switch v := completion.Choices[0].Message.Content.(type) {
	case string:
		content = v
	default:
		contentBytes, err := json.Marshal(v)
		if err != nil {
			return "", errors.New("failed to extract content from AI response")
		}
		content = string(contentBytes)
	}

	return StripFences(content), nil
}

// StripFences removes a surrounding markdown code fence if the model wrapped
// its reply in one.
func StripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content)
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content)
	}
	return content
}
