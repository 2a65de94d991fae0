package deepseek

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoChoices is returned when a 200 response carries no completion.
var ErrNoChoices = errors.New("deepseek: response has no choices")

// Config configures a chat completions client. Vendor picks the default
// endpoint and model; BaseURL and Model override them.
type Config struct {
	Vendor     Vendor
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills vendor defaults.
func (c *Config) Validate() error {
	if c.Vendor == "" {
		c.Vendor = VendorDeepSeek
	}
	defaults, ok := vendorDefaults[c.Vendor]
	if !ok {
		return fmt.Errorf("deepseek: unknown vendor %q", c.Vendor)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: API key is required", c.Vendor)
	}
	if c.Model == "" {
		c.Model = defaults.model
	}
	if c.BaseURL == "" {
		c.BaseURL = defaults.baseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a chat completions request. An empty Model uses the client's model.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is a chat completions response.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Text returns the first choice's content.
func (r *Response) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Choice is one completion candidate.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// APIError is a non-2xx answer from the endpoint.
type APIError struct {
	Vendor     Vendor
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Vendor, e.StatusCode, e.Message)
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
