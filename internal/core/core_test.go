package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/gemini-ext/internal/core"
	"github.com/breeew/gemini-ext/internal/core/srv"
	"github.com/breeew/gemini-ext/pkg/ai"
)

func TestMustSetupCore(t *testing.T) {
	stub := ai.NewStubDriver()
	c := core.MustSetupCore(core.CoreConfig{Log: core.Log{Level: "error"}}, srv.ApplyAIDriver("stub", stub))

	assert.Equal(t, core.DEFAULT_ADDR, c.Cfg().Addr)
	assert.NotNil(t, c.HttpEngine())
	assert.True(t, c.HttpEngine().ContextWithFallback)
	assert.NotNil(t, c.Materializer())

	quiz, err := c.Srv().AI().Quiz()
	require.NoError(t, err)
	assert.Same(t, stub, quiz)
}

func TestUseLimiter(t *testing.T) {
	l := core.NewLimiters()

	limiter := l.Use("ask:127.0.0.1", 1)
	assert.Same(t, limiter, l.Use("ask:127.0.0.1", 1))

	// burst is twice the per minute rate
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	unlimited := l.Use("ask:127.0.0.2", 0)
	for i := 0; i < 100; i++ {
		require.True(t, unlimited.Allow())
	}
}

func TestMetrics(t *testing.T) {
	m := core.NewMetrics("gemext", "test")
	m.ObserveAsk("mcq", core.OUTCOME_ANSWERED, 120*time.Millisecond)
	m.ObserveAsk("mcq", core.OUTCOME_AI_ERROR, time.Second)
	m.ObserveAsk("image", core.OUTCOME_ANSWERED, time.Second)
	m.ImageFailed()

	expected := `
# HELP gemext_test_ask_total Answered requests by mode and outcome.
# TYPE gemext_test_ask_total counter
gemext_test_ask_total{mode="image",outcome="answered"} 1
gemext_test_ask_total{mode="mcq",outcome="ai_error"} 1
gemext_test_ask_total{mode="mcq",outcome="answered"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "gemext_test_ask_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "gemext_test_image_materialize_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
