package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeiq/internal/config"
	"resumeiq/internal/domain"
	"resumeiq/internal/insight/gemini"
)

func newTestClient(serverURL string) *gemini.Client {
	return gemini.NewClient(&config.GeminiConfig{
		APIKey:      "test-gemini-key",
		Model:       "gemini-1.5-flash",
		TimeoutSecs: 5,
		Endpoint:    serverURL,
	})
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestClient_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		assert.Equal(t, "analyze this resume", textPart["text"])

		_ = json.NewEncoder(w).Encode(successResponse(`{"job_role":"Data Scientist"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.Generate(context.Background(), "analyze this resume")
	require.NoError(t, err)
	assert.Equal(t, `{"job_role":"Data Scientist"}`, text)
}

func TestClient_Generate_APIErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domain.ErrInsightUnavailable))
}

func TestClient_Generate_NoCandidatesIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domain.ErrInsightUnavailable))
}

func TestClient_Generate_TransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domain.ErrInsightUnavailable))
}

func TestClient_Generate_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.Generate(ctx, "prompt")
	assert.Error(t, err)
}
