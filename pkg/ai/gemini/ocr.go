package gemini

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/breeew/gemini-ext/pkg/ai"
)

var ocrResponseModalities = []string{"IMAGE", "TEXT"}

const ocrResponseMIME = "text/plain"

func (s *Driver) ExtractText(ctx context.Context, apiKey string, req ai.OCRRequest) (string, error) {
	slog.Debug("ExtractText", slog.String("driver", NAME), slog.String("model", s.model.OCRModel))

	if len(req.Image) == 0 {
		return "", ErrNoImage
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("Failed to create gemini client: %w", err)
	}

	file, err := client.Files.Upload(ctx, bytes.NewReader(req.Image), &genai.UploadFileConfig{
		MIMEType: ai.DEFAULT_IMAGE_MIME_TYPE,
	})
	if err != nil {
		return "", fmt.Errorf("Failed to upload image: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, file.MIMEType),
			genai.NewPartFromText(req.Prompt),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: ocrResponseModalities,
		ResponseMIMEType:   ocrResponseMIME,
	}

	var text strings.Builder
	for chunk, err := range client.Models.GenerateContentStream(ctx, s.model.OCRModel, contents, config) {
		if err != nil {
			return "", fmt.Errorf("Content stream error: %w", err)
		}
		if piece, ok := chunkText(chunk); ok {
			text.WriteString(piece)
		}
	}

	return text.String(), nil
}

// chunkText returns the text carried by a streamed chunk. Chunks without candidate
// content, or whose first part is inline binary data, carry nothing.
func chunkText(chunk *genai.GenerateContentResponse) (string, bool) {
	if chunk == nil || len(chunk.Candidates) == 0 {
		return "", false
	}
	content := chunk.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	if first := content.Parts[0]; first != nil && first.InlineData != nil {
		return "", false
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", "")), true
}
