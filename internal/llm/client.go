package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and exposes the Responses API call used by the agent
type Client struct {
	client *openai.Client
	apiKey string
}

// NewClient creates a new LLM client with API key.
// An empty baseURL keeps the SDK default endpoint. SDK retries are off: every
// Respond call is exactly one request.
func NewClient(apiKey, baseURL string, opts ...option.RequestOption) *Client {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	clientOpts = append(clientOpts, opts...)

	client := openai.NewClient(clientOpts...)
	return &Client{
		client: &client,
		apiKey: apiKey,
	}
}
