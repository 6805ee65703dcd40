package openai

// provider for any openai compatible chat api, gemini's own compatibility
// endpoint by default.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/breeew/gemini-ext/pkg/ai"
	"github.com/breeew/gemini-ext/pkg/image"
)

const (
	NAME = "openai"

	DEFAULT_ENDPOINT   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DEFAULT_CHAT_MODEL = "gemini-2.0-flash"
)

var ErrNoImage = errors.New("no image to extract text from")

const (
	quizTemperature = 1
	quizTopP        = 0.95
	quizMaxTokens   = 8192
)

type Driver struct {
	endpoint string
	model    ai.ModelName
}

func New(endpoint string, model ai.ModelName) *Driver {
	if endpoint == "" {
		endpoint = DEFAULT_ENDPOINT
	}
	if model.ChatModel == "" {
		model.ChatModel = DEFAULT_CHAT_MODEL
	}
	if model.OCRModel == "" {
		model.OCRModel = model.ChatModel
	}

	return &Driver{
		endpoint: endpoint,
		model:    model,
	}
}

func (s *Driver) Model() ai.ModelName {
	return s.model
}

func (s *Driver) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(s.endpoint, "/")
	return openai.NewClientWithConfig(cfg)
}

func userText(text string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	}
}

func imagePart(raw []byte) openai.ChatMessagePart {
	return openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeImageURL,
		ImageURL: &openai.ChatMessageImageURL{
			URL:    image.EncodeDataURI(ai.DEFAULT_IMAGE_MIME_TYPE, raw),
			Detail: openai.ImageURLDetailAuto,
		},
	}
}

// quizMessages keeps the turn order of the gemini chat session: prompt, optional
// image, few-shot examples, question.
func quizMessages(req ai.QuizRequest) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{userText(req.Prompt)}
	if len(req.Image) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{imagePart(req.Image)},
		})
	}
	return append(messages, userText(req.Examples), userText(req.Text))
}

func (s *Driver) AnswerQuiz(ctx context.Context, apiKey string, req ai.QuizRequest) (string, error) {
	slog.Debug("AnswerQuiz", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	resp, err := s.client(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model.ChatModel,
		Messages:    quizMessages(req),
		Temperature: quizTemperature,
		TopP:        quizTopP,
		MaxTokens:   quizMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *Driver) ExtractText(ctx context.Context, apiKey string, req ai.OCRRequest) (string, error) {
	slog.Debug("ExtractText", slog.String("driver", NAME), slog.String("model", s.model.OCRModel))

	if len(req.Image) == 0 {
		return "", ErrNoImage
	}

	stream, err := s.client(apiKey).CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:  s.model.OCRModel,
		Stream: true,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					imagePart(req.Image),
					{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("Completion error: %w", err)
	}
	defer stream.Close()

	var text strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("Completion stream error: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		text.WriteString(strings.TrimSpace(strings.ReplaceAll(chunk.Choices[0].Delta.Content, "\n", "")))
	}

	return text.String(), nil
}
