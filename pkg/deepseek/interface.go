package deepseek

import "context"

// IDeepSeek is a chat completions client for one vendor.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
	Vendor() Vendor
}
