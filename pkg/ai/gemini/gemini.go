package gemini

// provider for https://ai.google.dev/
// - quiz answering over a chat session
// - ocr over the streaming content api

import (
	"errors"

	"github.com/breeew/gemini-ext/pkg/ai"
)

const (
	NAME = "gemini"

	DEFAULT_CHAT_MODEL = "gemini-2.0-flash-exp"
	DEFAULT_OCR_MODEL  = "gemini-2.0-flash-preview-image-generation"
)

var ErrNoImage = errors.New("no image to extract text from")

// Driver builds a client per call since every request brings its own api key.
type Driver struct {
	model ai.ModelName
}

func New(model ai.ModelName) *Driver {
	if model.ChatModel == "" {
		model.ChatModel = DEFAULT_CHAT_MODEL
	}
	if model.OCRModel == "" {
		model.OCRModel = DEFAULT_OCR_MODEL
	}

	return &Driver{
		model: model,
	}
}

func (s *Driver) Model() ai.ModelName {
	return s.model
}
