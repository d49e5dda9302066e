package groqclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req aisdk.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "openai/gpt-oss-120b", req.Model)

		json.NewEncoder(w).Encode(aisdk.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: req.Model,
			Choices: []aisdk.Choice{{
				Message:      aisdk.Message{Role: "assistant", Content: "It's 15°C in Paris"},
				FinishReason: "stop",
			}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	mc, err := client.Model(context.Background(), "openai/gpt-oss-120b")
	require.NoError(t, err)

	resp, err := mc.CreateChatCompletion(context.Background(), &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{{Role: "user", Content: "weather in Paris?"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "It's 15°C in Paris", resp.Choices[0].Message.Content)
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: APIError{
			Message: "Invalid API Key",
			Type:    "invalid_request_error",
			Code:    "invalid_api_key",
		}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad-key", BaseURL: server.URL})
	mc, err := client.Model(context.Background(), "openai/gpt-oss-120b")
	require.NoError(t, err)

	_, err = mc.CreateChatCompletion(context.Background(), &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsAuthError())
	assert.False(t, apiErr.IsRetryable())
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(aisdk.ChatCompletionResponse{
			Choices: []aisdk.Choice{{
				Message:      aisdk.Message{Role: "assistant", Content: "ok"},
				FinishReason: "stop",
			}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		RetryCount: 3,
		RetryDelay: time.Millisecond,
	})
	mc, err := client.Model(context.Background(), "openai/gpt-oss-120b")
	require.NoError(t, err)

	resp, err := mc.CreateChatCompletion(context.Background(), &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Choices[0].Message.Content)
	assert.Equal(t, int32(3), calls.Load())
}

func TestToolCallsRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(aisdk.ChatCompletionResponse{
			Choices: []aisdk.Choice{{
				Message: aisdk.Message{
					Role: "assistant",
					ToolCalls: []aisdk.ToolCall{{
						ID:   "call_abc",
						Type: "function",
						Function: aisdk.FunctionCall{
							Name:      "get_weather",
							Arguments: json.RawMessage(`{"place":"Paris"}`),
						},
					}},
				},
				FinishReason: "tool_calls",
			}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	mc, err := client.Model(context.Background(), "openai/gpt-oss-120b")
	require.NoError(t, err)

	resp, err := mc.CreateChatCompletion(context.Background(), &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{{Role: "user", Content: "weather in Paris?"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices[0].Message.ToolCalls, 1)
	call := resp.Choices[0].Message.ToolCalls[0]
	assert.Equal(t, "get_weather", call.Function.Name)
	assert.JSONEq(t, `{"place":"Paris"}`, string(call.Function.Arguments))
}
