// Package i18n renders user-facing messages in the language negotiated from
// the Accept-Language header. Catalogs are embedded TOML files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

type Translator struct {
	bundle    *goi18n.Bundle
	fallback  language.Tag
	supported []language.Tag
	matcher   language.Matcher
}

// New loads every embedded catalog. defaultLang must be one of them.
func New(defaultLang string) (*Translator, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	supported := []language.Tag{fallback}
	hasFallback := false
	for _, tag := range bundle.LanguageTags() {
		if tag == fallback {
			hasFallback = true
			continue
		}
		supported = append(supported, tag)
	}
	if !hasFallback {
		return nil, fmt.Errorf("no catalog for default language %q", defaultLang)
	}

	return &Translator{
		bundle:    bundle,
		fallback:  fallback,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Match picks the best supported language for an Accept-Language header value.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	return t.supported[idx]
}

// Localizer returns a message renderer for the given Accept-Language value.
func (t *Translator) Localizer(acceptLanguage string) *Localizer {
	tag := t.Match(acceptLanguage)
	return &Localizer{l: goi18n.NewLocalizer(t.bundle, tag.String(), t.fallback.String())}
}

type Localizer struct {
	l *goi18n.Localizer
}

// T renders messageID. An unknown id renders as the id itself.
func (l *Localizer) T(messageID string, data map[string]any) string {
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return msg
}
