package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/gemini-ext/pkg/ai"
)

type recorded struct {
	auth string
	req  openai.ChatCompletionRequest
}

func newCompletionServer(t *testing.T, rec *recorded, handle func(w http.ResponseWriter, req openai.ChatCompletionRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		rec.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec.req))
		handle(w, rec.req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnswerQuiz(t *testing.T) {
	var rec recorded
	srv := newCompletionServer(t, &rec, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "4, B"}},
			},
		})
	})

	d := New(srv.URL+"/", ai.ModelName{})
	answer, err := d.AnswerQuiz(context.Background(), "caller-key", ai.QuizRequest{
		Prompt:   "prompt",
		Examples: "examples",
		Image:    []byte{1, 2, 3},
		Text:     "question",
	})
	require.NoError(t, err)
	assert.Equal(t, "4, B", answer)

	assert.Equal(t, "Bearer caller-key", rec.auth)
	assert.Equal(t, DEFAULT_CHAT_MODEL, rec.req.Model)
	require.Len(t, rec.req.Messages, 4)
	assert.Equal(t, "prompt", rec.req.Messages[0].Content)
	require.Len(t, rec.req.Messages[1].MultiContent, 1)
	assert.Equal(t, "data:image/png;base64,AQID", rec.req.Messages[1].MultiContent[0].ImageURL.URL)
	assert.Equal(t, "examples", rec.req.Messages[2].Content)
	assert.Equal(t, "question", rec.req.Messages[3].Content)
}

func TestAnswerQuiz_Error(t *testing.T) {
	var rec recorded
	srv := newCompletionServer(t, &rec, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"API key not valid","type":"invalid_request_error"}}`))
	})

	_, err := New(srv.URL, ai.ModelName{}).AnswerQuiz(context.Background(), "bad", ai.QuizRequest{Text: "q"})
	assert.Error(t, err)
}

func TestExtractText(t *testing.T) {
	var rec recorded
	srv := newCompletionServer(t, &rec, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, piece := range []string{"Hello\n", " World "} {
			chunk, _ := json.Marshal(openai.ChatCompletionStreamResponse{
				Choices: []openai.ChatCompletionStreamChoice{
					{Delta: openai.ChatCompletionStreamChoiceDelta{Content: piece}},
				},
			})
			fmt.Fprintf(w, "data: %s\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	text, err := New(srv.URL, ai.ModelName{OCRModel: "ocr"}).ExtractText(context.Background(), "key", ai.OCRRequest{
		Prompt: "read it",
		Image:  []byte{1},
	})
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld", text)
	assert.Equal(t, "ocr", rec.req.Model)
	assert.True(t, rec.req.Stream)
	require.Len(t, rec.req.Messages, 1)
	assert.True(t, strings.HasPrefix(rec.req.Messages[0].MultiContent[0].ImageURL.URL, "data:image/png;base64,"))
	assert.Equal(t, "read it", rec.req.Messages[0].MultiContent[1].Text)
}

func TestExtractText_NoImage(t *testing.T) {
	_, err := New("", ai.ModelName{}).ExtractText(context.Background(), "key", ai.OCRRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrNoImage)
}
