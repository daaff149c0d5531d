// Package translation detects the language of review text and translates it to English.
package translation

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
)

// Gateway is an external language detection and translation service.
type Gateway interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	TranslateToEnglish(ctx context.Context, text string) (string, error)
}

var englishBase, _ = language.English.Base()

// IsEnglish reports whether a detected language code has English as its base language.
// Codes that cannot be parsed are treated as non-English.
func IsEnglish(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base == englishBase
}

// EnsureEnglish returns text unchanged when the gateway detects English,
// otherwise its English translation.
func EnsureEnglish(ctx context.Context, gw Gateway, text string) (string, error) {
	lang, err := gw.DetectLanguage(ctx, text)
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	if IsEnglish(lang) {
		return text, nil
	}
	logger.With(logger.Fields{logger.FieldLanguage: lang}).Info(ctx, "Translating review to English")

	translated, err := gw.TranslateToEnglish(ctx, text)
	if err != nil {
		return "", fmt.Errorf("translate from %s: %w", lang, err)
	}
	return translated, nil
}

// NoopGateway is used when translation is disabled. Every text is reported as English.
type NoopGateway struct{}

func (NoopGateway) DetectLanguage(context.Context, string) (string, error) { return "en", nil }

func (NoopGateway) TranslateToEnglish(_ context.Context, text string) (string, error) {
	return text, nil
}
