package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, status int, body string, gotPrompt *string) *httptest.Server {
	t.Helper()
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, "gemini-1.5-flash", req.Model)
		if assert.Len(t, req.Messages, 1) && gotPrompt != nil {
			assert.Equal(t, "user", req.Messages[0].Role)
			*gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(func() {
		srv.Close()
		assert.Equal(t, 1, calls, "exactly one request, no retries")
	})
	return srv
}

func newTestOpenAILLM(t *testing.T, baseURL string) *OpenAILLM {
	t.Helper()
	llm, err := NewOpenAILLMFromConfig(&LLMSettings{
		Provider: ProviderGemini,
		Model:    "gemini-1.5-flash",
		APIKey:   "test-key",
		BaseURL:  baseURL + "/",
	})
	require.NoError(t, err)
	return llm
}

func TestOpenAILLMComplete(t *testing.T) {
	var got string
	srv := newChatServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gemini-1.5-flash",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Fresh bread daily."}}]
	}`, &got)

	out, err := newTestOpenAILLM(t, srv.URL).Complete(context.Background(), "write copy")
	require.NoError(t, err)
	assert.Equal(t, "Fresh bread daily.", out)
	assert.Equal(t, "write copy", got)
}

func TestOpenAILLMEmptyChoices(t *testing.T) {
	srv := newChatServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`, nil)

	_, err := newTestOpenAILLM(t, srv.URL).Complete(context.Background(), "p")
	assert.ErrorContains(t, err, "empty choices")
}

func TestOpenAILLMServiceErrorThroughAgent(t *testing.T) {
	srv := newChatServer(t, http.StatusTooManyRequests, `{"error":{"message":"quota exceeded","type":"rate_limit","code":"429"}}`, nil)

	agent := newTestAgent(t, newTestOpenAILLM(t, srv.URL))
	_, err := agent.Generate(context.Background(), GenerationRequest{PageType: Home, Description: "x", WordCount: 100})

	var se *GenerationServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
}

func TestNewOpenAILLMFromConfigErrors(t *testing.T) {
	_, err := NewOpenAILLMFromConfig(nil)
	assert.Error(t, err)
	_, err = NewOpenAILLMFromConfig(&LLMSettings{Model: "m"})
	assert.ErrorContains(t, err, "api key")
	_, err = NewOpenAILLMFromConfig(&LLMSettings{APIKey: "k"})
	assert.ErrorContains(t, err, "model")
}
