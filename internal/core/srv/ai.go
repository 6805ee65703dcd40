package srv

import (
	"errors"
	"log/slog"
	"os"

	"github.com/breeew/gemini-ext/pkg/ai"
	"github.com/breeew/gemini-ext/pkg/ai/gemini"
	"github.com/breeew/gemini-ext/pkg/ai/openai"
)

type QuizAI interface {
	ai.Quiz
}

type OCRAI interface {
	ai.OCR
}

type AIDriver interface {
	QuizAI
	OCRAI
}

type AIConfig struct {
	// Provider names the driver answering requests, gemini when empty.
	Provider string `toml:"provider"`
	Gemini   Gemini `toml:"gemini"`
	OpenAI   OpenAI `toml:"openai"`
}

func (c *AIConfig) FromENV() {
	c.Provider = os.Getenv("GEMEXT_AI_PROVIDER")
	c.Gemini.FromENV()
	c.OpenAI.FromENV()
}

type Gemini struct {
	// Token is the fallback key for requests that do not carry their own.
	Token     string `toml:"token"`
	ChatModel string `toml:"chat_model"`
	OCRModel  string `toml:"ocr_model"`
}

func (c *Gemini) FromENV() {
	c.Token = os.Getenv("GEMEXT_AI_GEMINI_TOKEN")
	if c.Token == "" {
		// name used by the first deployments
		c.Token = os.Getenv("apiKey")
	}
	c.ChatModel = os.Getenv("GEMEXT_AI_GEMINI_CHAT_MODEL")
	c.OCRModel = os.Getenv("GEMEXT_AI_GEMINI_OCR_MODEL")
}

func (cfg *Gemini) Install(root *AI) {
	var driver any
	driver = gemini.New(ai.ModelName{
		ChatModel: cfg.ChatModel,
		OCRModel:  cfg.OCRModel,
	})

	installAI(root, gemini.NAME, driver)
}

// OpenAI talks to an openai compatible endpoint with the same per request key.
type OpenAI struct {
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
	OCRModel  string `toml:"ocr_model"`
}

func (c *OpenAI) FromENV() {
	c.Endpoint = os.Getenv("GEMEXT_AI_OPENAI_ENDPOINT")
	c.ChatModel = os.Getenv("GEMEXT_AI_OPENAI_CHAT_MODEL")
	c.OCRModel = os.Getenv("GEMEXT_AI_OPENAI_OCR_MODEL")
}

func (cfg *OpenAI) Install(root *AI) {
	var driver any
	driver = openai.New(cfg.Endpoint, ai.ModelName{
		ChatModel: cfg.ChatModel,
		OCRModel:  cfg.OCRModel,
	})

	installAI(root, openai.NAME, driver)
}

var ERROR_UNSUPPORTED_FEATURE = errors.New("Unsupported feature")

type AI struct {
	quizDrivers map[string]QuizAI
	ocrDrivers  map[string]OCRAI

	quizDefault QuizAI
	ocrDefault  OCRAI
}

func (s *AI) Quiz() (QuizAI, error) {
	if s.quizDefault == nil {
		return nil, ERROR_UNSUPPORTED_FEATURE
	}
	return s.quizDefault, nil
}

func (s *AI) OCR() (OCRAI, error) {
	if s.ocrDefault == nil {
		return nil, ERROR_UNSUPPORTED_FEATURE
	}
	return s.ocrDefault, nil
}

// Use makes the drivers installed as name the defaults. It reports whether any was found.
func (s *AI) Use(name string) bool {
	quiz, quizExist := s.quizDrivers[name]
	if quizExist {
		s.quizDefault = quiz
	}
	ocr, ocrExist := s.ocrDrivers[name]
	if ocrExist {
		s.ocrDefault = ocr
	}
	return quizExist || ocrExist
}

func installAI(a *AI, name string, driver any) {
	if d, ok := driver.(QuizAI); ok {
		a.quizDrivers[name] = d
		a.quizDefault = d
	}

	if d, ok := driver.(OCRAI); ok {
		a.ocrDrivers[name] = d
		a.ocrDefault = d
	}
}

func newAI() *AI {
	return &AI{
		quizDrivers: make(map[string]QuizAI),
		ocrDrivers:  make(map[string]OCRAI),
	}
}

func SetupAI(cfg AIConfig) *AI {
	a := newAI()
	cfg.OpenAI.Install(a)
	cfg.Gemini.Install(a)

	if cfg.Provider != "" && !a.Use(cfg.Provider) {
		slog.Warn("unknown ai provider, fallback to gemini", slog.String("provider", cfg.Provider))
		a.Use(gemini.NAME)
	}
	return a
}

type ApplyFunc func(s *Srv)

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}

// ApplyAIDriver replaces the configured providers with driver, e.g. a stub in tests.
func ApplyAIDriver(name string, driver any) ApplyFunc {
	return func(s *Srv) {
		a := newAI()
		installAI(a, name, driver)
		s.ai = a
	}
}
