package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the interface to a chat-completion gateway.
type Client interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// CompleteStream sends a completion request and returns a stream of
	// incremental chunks. The caller must drain or close the stream.
	CompleteStream(ctx context.Context, req CompletionRequest) (Stream, error)
	// ListModels returns the models the gateway advertises.
	ListModels(ctx context.Context) ([]Model, error)
}

// GatewayClient implements Client against any OpenAI-compatible endpoint,
// such as a Cursor-To-OpenAI-Nexus gateway.
type GatewayClient struct {
	client *openai.Client
}

// NewGatewayClient creates a client for the gateway at baseURL,
// authenticating with the given bearer API key.
func NewGatewayClient(apiKey, baseURL string) *GatewayClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &GatewayClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *GatewayClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, apiRequest(req, false))
	if err != nil {
		return nil, err
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	var finishReason string
	if len(resp.Choices) > 0 {
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:          content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		FinishReason:     finishReason,
	}, nil
}

func (c *GatewayClient) CompleteStream(ctx context.Context, req CompletionRequest) (Stream, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, apiRequest(req, true))
	if err != nil {
		return nil, err
	}
	return &gatewayStream{stream: stream}, nil
}

func (c *GatewayClient) ListModels(ctx context.Context) ([]Model, error) {
	resp, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]Model, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, Model{ID: m.ID, OwnedBy: m.OwnedBy})
	}
	return models, nil
}

func apiRequest(req CompletionRequest, stream bool) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   stream,
	}
}
