package llmprovider

import (
	"context"
	"errors"

	"worklife-balance/pkg/anthropic"
	"worklife-balance/pkg/deepseek"
	"worklife-balance/pkg/gemini"
)

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	anthropicReq := &anthropic.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]anthropic.Message, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		anthropicReq.System = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		anthropicReq.Messages = append(anthropicReq.Messages, anthropic.Message{
			Role: normalizeRole(m.Role),
			Text: m.Text(),
		})
	}

	resp, err := a.client.CreateMessage(ctx, anthropicReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      assistantMessage(resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface.
// The provider is named after the client's vendor, so Qwen reports as "qwen".
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var messages []deepseek.Message
	if req.SystemInstruction != nil {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		messages = append(messages, deepseek.Message{Role: normalizeRole(m.Role), Content: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if errors.Is(err, deepseek.ErrNoChoices) {
		return nil, ErrEmptyResponse
	}
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      assistantMessage(resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return string(a.client.Vendor())
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// --- conversion helpers ---

func assistantMessage(text string) Message {
	return Message{Role: "assistant", Parts: []Part{{Text: text}}}
}

// normalizeRole maps Gemini's "model" role to the chat-style "assistant".
func normalizeRole(role string) string {
	if role == "model" {
		return "assistant"
	}
	return role
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := convertMessageToGemini(*msg)
	return &c
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	out := make([]gemini.Content, len(msgs))
	for i, m := range msgs {
		out[i] = convertMessageToGemini(m)
	}
	return out
}

func convertMessageToGemini(msg Message) gemini.Content {
	role := msg.Role
	if role == "assistant" {
		role = "model"
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: role, Parts: parts}
}

func convertFromGeminiContent(c gemini.Content) Message {
	parts := make([]Part, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: normalizeRole(c.Role), Parts: parts}
}
