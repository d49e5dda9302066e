package groqclient

import (
	"context"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
)

var _ aisdk.ModelClient = (*ModelClient)(nil)

// ModelClient represents a client bound to a specific model
type ModelClient struct {
	client *Client
	model  *aisdk.ModelInfo
}

// Model creates a ModelClient bound to the specified model. The model id is
// taken as given; an unknown id surfaces as an API error on first use.
func (c *Client) Model(ctx context.Context, modelName string) (aisdk.ModelClient, error) {
	return &ModelClient{
		client: c,
		model:  &aisdk.ModelInfo{ID: modelName, Name: modelName},
	}, nil
}

// CreateChatCompletion creates a chat completion with the bound model
func (mc *ModelClient) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	req.Model = mc.model.ID
	return mc.client.createChatCompletion(ctx, req)
}

// GetModelInfo returns the model information
func (mc *ModelClient) GetModelInfo() *aisdk.ModelInfo {
	return mc.model
}
