package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/gemini-ext/pkg/i18n"
)

func newLocalizer() *i18n.Localizer {
	var allow []string
	for k := range i18n.ALLOW_LANG {
		allow = append(allow, k)
	}
	return i18n.NewLocalizer(allow...)
}

func TestLocalize(t *testing.T) {
	l := newLocalizer()

	assert.Equal(t, "Missing Gemini API key", l.Localize("", i18n.ERROR_MISSING_API_KEY))
	assert.Equal(t, "Missing Gemini API key", l.Localize("en-US,en;q=0.9", i18n.ERROR_MISSING_API_KEY))
	assert.Equal(t, "缺少 Gemini API 密钥", l.Localize("zh-CN,zh;q=0.9,en;q=0.8", i18n.ERROR_MISSING_API_KEY))
	assert.Equal(t, "Too many requests", l.Localize("fr-FR", i18n.ERROR_TOO_MANY_REQUESTS))
}

func TestLocalize_UnknownID(t *testing.T) {
	assert.Equal(t, "error.unknown", newLocalizer().Localize("en", "error.unknown"))
}
