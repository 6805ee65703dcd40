package i18n

import (
	"log/slog"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Localizer struct {
	bundle *goi18n.Bundle
}

// NewLocalizer loads the built-in messages of the given languages.
func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.Make(DEFAULT_LANG))
	for _, lang := range langs {
		msgs, exist := messages[lang]
		if !exist {
			continue
		}
		tag := language.Make(lang)
		for id, text := range msgs {
			if err := bundle.AddMessages(tag, &goi18n.Message{ID: id, Other: text}); err != nil {
				slog.Error("failed to add i18n message", slog.String("lang", lang), slog.String("id", id), slog.String("error", err.Error()))
			}
		}
	}
	return &Localizer{bundle: bundle}
}

// Localize returns the message of id for the accept-language header value, falling back
// to the id itself.
func (l *Localizer) Localize(acceptLanguage, id string) string {
	loc := goi18n.NewLocalizer(l.bundle, acceptLanguage, DEFAULT_LANG)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
