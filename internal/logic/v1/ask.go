package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/breeew/gemini-ext/internal/core"
	"github.com/breeew/gemini-ext/pkg/ai"
	"github.com/breeew/gemini-ext/pkg/errors"
	"github.com/breeew/gemini-ext/pkg/i18n"
	"github.com/breeew/gemini-ext/pkg/utils"
)

// AskParams are the request values of a question, as sent by the caller.
type AskParams struct {
	Mode        string
	APIKey      string
	Prompt      string
	Examples    string
	Text        string
	ImageSource string
	ImageBytes  []byte
}

// IsEmpty reports whether the request carries nothing to answer.
func (p AskParams) IsEmpty() bool {
	return p.Mode == "" && p.Text == "" && p.ImageSource == "" && len(p.ImageBytes) == 0
}

type AskLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAskLogic(ctx context.Context, core *core.Core) *AskLogic {
	l := &AskLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

type answerFunc func(l *AskLogic, apiKey string, p AskParams, image []byte) (string, error)

var answerHandlers = map[ai.Mode]answerFunc{
	ai.MODE_MCQ:   (*AskLogic).askQuiz,
	ai.MODE_IMAGE: (*AskLogic).askImage,
}

// Ask answers p. Only a missing api key is reported as an error, every failure
// after that ends in an empty answer.
func (l *AskLogic) Ask(p AskParams) (string, error) {
	apiKey := l.resolveAPIKey(p.APIKey)
	if apiKey == "" {
		return "", errors.New("AskLogic.Ask.resolveAPIKey", i18n.ERROR_MISSING_API_KEY, nil).Code(http.StatusInternalServerError)
	}

	return l.answer(apiKey, p), nil
}

func (l *AskLogic) resolveAPIKey(key string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}
	return l.core.Cfg().AI.Gemini.Token
}

func (l *AskLogic) answer(apiKey string, p AskParams) string {
	var (
		start   = time.Now()
		mode    = ai.ParseMode(p.Mode)
		logger  = slog.With(slog.String("request_id", InjectRequestID(l.ctx)), slog.String("mode", mode.String()))
		outcome = core.OUTCOME_ANSWERED
	)
	defer func() {
		l.core.Metrics().ObserveAsk(mode.String(), outcome, time.Since(start))
	}()

	handler, exist := answerHandlers[mode]
	if !exist {
		outcome = core.OUTCOME_UNKNOWN_MODE
		logger.Warn("unsupported mode, answer is empty")
		return ""
	}

	logger.Info("question", slog.String("text", utils.Abbreviate(p.Text, 500)))

	image := l.materializeImage(logger, p)
	answer, err := handler(l, apiKey, p, image)
	if err != nil {
		outcome = core.OUTCOME_AI_ERROR
		logger.Error("failed to get answer", slog.String("error", err.Error()))
		answer = ""
	}

	answer = strings.TrimSpace(answer)
	if answer == "" && outcome == core.OUTCOME_ANSWERED {
		outcome = core.OUTCOME_EMPTY
	}
	logger.Info("answer", slog.String("answer", answer), slog.String("outcome", outcome), slog.Duration("latency", time.Since(start)))
	return answer
}

func (l *AskLogic) materializeImage(logger *slog.Logger, p AskParams) []byte {
	image, err := l.core.Materializer().Materialize(l.ctx, p.ImageSource, p.ImageBytes)
	if err != nil {
		l.core.Metrics().ImageFailed()
		logger.Warn("image upload failed, continue without image", slog.String("error", err.Error()))
		return nil
	}
	return image
}

func (l *AskLogic) askQuiz(apiKey string, p AskParams, image []byte) (string, error) {
	driver, err := l.core.Srv().AI().Quiz()
	if err != nil {
		return "", err
	}

	return driver.AnswerQuiz(l.ctx, apiKey, ai.QuizRequest{
		Prompt:   ai.ResolvePrompt(ai.MODE_MCQ, p.Prompt),
		Examples: ai.ResolveExamples(p.Examples),
		Image:    image,
		Text:     p.Text,
	})
}

func (l *AskLogic) askImage(apiKey string, p AskParams, image []byte) (string, error) {
	driver, err := l.core.Srv().AI().OCR()
	if err != nil {
		return "", err
	}

	return driver.ExtractText(l.ctx, apiKey, ai.OCRRequest{
		Prompt: ai.ResolvePrompt(ai.MODE_IMAGE, p.Prompt),
		Image:  image,
	})
}
