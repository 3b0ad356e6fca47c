package openrouter

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const DefaultURL = "https://openrouter.ai/api/v1/chat/completions"

var ErrNoAPIKey = errors.New("openrouter api key not configured")

// Message is one chat turn. Content is a string for text turns or a list of
// parts for vision turns.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multi-part message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

// StatusError is returned for a non-2xx upstream answer.
type StatusError struct {
	Code    int
	Text    string
	Details json.RawMessage
}

func (e *StatusError) Error() string { return fmt.Sprintf("API error: %d %s", e.Code, e.Text) }

// Client posts chat completion requests to OpenRouter.
type Client struct {
	url     string
	apiKey  string
	referer string
	timeout time.Duration
}

func NewClient(url, apiKey, referer string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{url: url, apiKey: apiKey, referer: referer, timeout: timeout}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

// Complete sends req and returns the raw response body of a 2xx answer.
// title is sent as X-Title so usage shows up per feature.
func (c *Client) Complete(title string, req ChatRequest) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNoAPIKey
	}
	a := fiber.Post(c.url).
		Set(fiber.HeaderAuthorization, "Bearer "+c.apiKey).
		Set("X-Title", title).
		JSON(req).
		Timeout(c.timeout)
	if c.referer != "" {
		a.Set("HTTP-Referer", c.referer)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("openrouter request: %w", errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		se := &StatusError{Code: code, Text: utils.StatusMessage(code)}
		if json.Valid(body) {
			se.Details = append(json.RawMessage(nil), body...)
		}
		return nil, se
	}
	return body, nil
}
