package ai

import (
	"context"
	"strings"
)

type Mode string

const (
	MODE_MCQ   Mode = "mcq"
	MODE_IMAGE Mode = "image"
)

// ParseMode maps a raw request value to a Mode. An empty value selects MODE_MCQ,
// anything else is returned as given and may not be supported.
func ParseMode(raw string) Mode {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MODE_MCQ
	}
	return Mode(raw)
}

func (m Mode) String() string {
	return string(m)
}

// Uploaded images are always declared as png, whatever the source format.
const DEFAULT_IMAGE_MIME_TYPE = "image/png"

type ModelName struct {
	ChatModel string
	OCRModel  string
}

type QuizRequest struct {
	Prompt   string
	Examples string
	Image    []byte
	Text     string
}

type OCRRequest struct {
	Prompt string
	Image  []byte
}

type Quiz interface {
	AnswerQuiz(ctx context.Context, apiKey string, req QuizRequest) (string, error)
}

type OCR interface {
	ExtractText(ctx context.Context, apiKey string, req OCRRequest) (string, error)
}
