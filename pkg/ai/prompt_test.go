package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/gemini-ext/pkg/ai"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ai.MODE_MCQ, ai.ParseMode(""))
	assert.Equal(t, ai.MODE_MCQ, ai.ParseMode("  "))
	assert.Equal(t, ai.MODE_IMAGE, ai.ParseMode("image"))
	assert.Equal(t, ai.Mode("essay"), ai.ParseMode("essay"))
}

func TestDefaultPrompt(t *testing.T) {
	ocr := ai.DefaultPrompt(ai.MODE_IMAGE)
	assert.Contains(t, ocr, "OCR assistant")
	assert.Contains(t, ocr, ai.ANSWER_UNREADABLE)

	mcq := ai.DefaultPrompt(ai.MODE_MCQ)
	assert.Contains(t, mcq, "strict, concise answer bot")
	assert.Contains(t, mcq, ai.ANSWER_INSUFFICIENT_DATA)

	assert.Equal(t, mcq, ai.DefaultPrompt("unknown"))
}

func TestDefaultExamples(t *testing.T) {
	examples := ai.DefaultExamples()
	for _, want := range []string{"Case 1", "Case 2", "Case 3", "Case 4", "`B`", "`Paris`", "`4, B`", "`INSUFFICIENT_DATA`"} {
		assert.Contains(t, examples, want)
	}
}

func TestResolveOverrides(t *testing.T) {
	assert.Equal(t, "custom", ai.ResolvePrompt(ai.MODE_IMAGE, "custom"))
	assert.Equal(t, ai.PROMPT_OCR_DEFAULT, ai.ResolvePrompt(ai.MODE_IMAGE, ""))
	assert.Equal(t, "demo", ai.ResolveExamples("demo"))
	assert.Equal(t, ai.EXAMPLES_MCQ_DEFAULT, ai.ResolveExamples(""))
}
