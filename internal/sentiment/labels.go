package sentiment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spacesedan/wordsentiment/internal/models"
)

// MapLabel normalizes a raw label from a scoring backend into a category.
// Labels outside Positive/Negative/Neutral/mixed are passed through
// capitalized.
func MapLabel(raw string) models.Sentiment {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.SentimentNeutral
	}

	if strings.EqualFold(raw, "mixed") {
		return models.SentimentNeutral
	}

	first, size := utf8.DecodeRuneInString(raw)
	if first == utf8.RuneError {
		return models.SentimentNeutral
	}
	return models.Sentiment(string(unicode.ToUpper(first)) + strings.ToLower(raw[size:]))
}
