package deepseek

import "time"

// Vendor names an OpenAI-compatible chat completions backend.
type Vendor string

const (
	VendorDeepSeek Vendor = "deepseek"
	VendorQwen     Vendor = "qwen"
)

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// QwenBaseURL is DashScope's OpenAI-compatible mode
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// QwenModel is the default Qwen model
	QwenModel = "qwen-plus"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
	maxResponseBytes    = 4 << 20
)

var vendorDefaults = map[Vendor]struct{ baseURL, model string }{
	VendorDeepSeek: {DefaultBaseURL, DefaultModel},
	VendorQwen:     {QwenBaseURL, QwenModel},
}
