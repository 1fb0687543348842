package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"admintools/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml"}

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator renders the tools' console messages with go-i18n.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *zap.Logger
}

// NewTranslator loads the embedded active.*.toml bundles. An unparsable
// defaultLocale falls back to English.
func NewTranslator(defaultLocale string, log *zap.Logger) *Translator {
	if log == nil {
		log = zap.NewNop()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders key for locale, then for the default locale, then English. The
// key itself is returned when no bundle defines it.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug("i18n: localize failed", zap.String("key", key), zap.Strings("locales", languages), zap.Error(err))
		return key
	}
	return msg
}
