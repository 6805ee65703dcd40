package gemini

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/breeew/gemini-ext/pkg/ai"
)

const (
	quizTemperature     = 1
	quizTopP            = 0.95
	quizTopK            = 40
	quizMaxOutputTokens = 8192
	quizResponseMIME    = "text/plain"
)

func applyQuizConfig(model *genai.GenerativeModel) {
	model.SetTemperature(quizTemperature)
	model.SetTopP(quizTopP)
	model.SetTopK(quizTopK)
	model.SetMaxOutputTokens(quizMaxOutputTokens)
	model.ResponseMIMEType = quizResponseMIME
}

func userContent(parts ...genai.Part) *genai.Content {
	return &genai.Content{
		Role:  "user",
		Parts: parts,
	}
}

// quizHistory orders the turns as prompt, optional image, few-shot examples.
func quizHistory(prompt string, image genai.Part, examples string) []*genai.Content {
	history := []*genai.Content{userContent(genai.Text(prompt))}
	if image != nil {
		history = append(history, userContent(image))
	}
	return append(history, userContent(genai.Text(examples)))
}

func (s *Driver) AnswerQuiz(ctx context.Context, apiKey string, req ai.QuizRequest) (string, error) {
	slog.Debug("AnswerQuiz", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("Failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model.ChatModel)
	applyQuizConfig(model)

	var image genai.Part
	if len(req.Image) > 0 {
		file, err := client.UploadFile(ctx, "", bytes.NewReader(req.Image), &genai.UploadFileOptions{
			MIMEType: ai.DEFAULT_IMAGE_MIME_TYPE,
		})
		if err != nil {
			// the question is still answered without the attachment
			slog.Warn("failed to attach image to quiz", slog.String("driver", NAME), slog.String("error", err.Error()))
		} else {
			image = genai.FileData{MIMEType: file.MIMEType, URI: file.URI}
		}
	}

	session := model.StartChat()
	session.History = quizHistory(req.Prompt, image, req.Examples)

	resp, err := session.SendMessage(ctx, genai.Text(req.Text))
	if err != nil {
		return "", fmt.Errorf("Chat session error: %w", err)
	}

	return responseText(resp), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
