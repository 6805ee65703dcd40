package ai

import (
	"context"
	"sync"
)

// StubDriver answers without calling any provider. Replies are looked up by question
// text (mcq) or by image content (ocr).
type StubDriver struct {
	Quizzes map[string]string
	Texts   map[string]string
	Err     error

	mu          sync.Mutex
	quizCalls   []QuizRequest
	ocrCalls    []OCRRequest
	lastAPIKeys []string
}

func NewStubDriver() *StubDriver {
	return &StubDriver{
		Quizzes: make(map[string]string),
		Texts:   make(map[string]string),
	}
}

func (s *StubDriver) AnswerQuiz(_ context.Context, apiKey string, req QuizRequest) (string, error) {
	s.mu.Lock()
	s.quizCalls = append(s.quizCalls, req)
	s.lastAPIKeys = append(s.lastAPIKeys, apiKey)
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	return s.Quizzes[req.Text], nil
}

func (s *StubDriver) ExtractText(_ context.Context, apiKey string, req OCRRequest) (string, error) {
	s.mu.Lock()
	s.ocrCalls = append(s.ocrCalls, req)
	s.lastAPIKeys = append(s.lastAPIKeys, apiKey)
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	return s.Texts[string(req.Image)], nil
}

func (s *StubDriver) QuizCalls() []QuizRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]QuizRequest(nil), s.quizCalls...)
}

func (s *StubDriver) OCRCalls() []OCRRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]OCRRequest(nil), s.ocrCalls...)
}

func (s *StubDriver) APIKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastAPIKeys...)
}
