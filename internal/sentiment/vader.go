package sentiment

import (
	"context"
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/wordsentiment/internal/models"
)

const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the resulting HTML down
// to whitespace-joined plain text.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plainText), " ")
}

// VaderAnalyzer scores text locally, without a remote endpoint.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderAnalyzer) Score(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	score := v.analyzer.PolarityScores(plainText).Compound

	var label string
	if score >= positiveThreshold {
		label = "positive"
	} else if score <= negativeThreshold {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

func (v *VaderAnalyzer) Analyze(_ context.Context, text string) (models.Sentiment, error) {
	if text == "" {
		return models.SentimentNeutral, nil
	}

	score, label := v.Score(text)
	slog.Debug("[VaderAnalyzer] Scored text",
		slog.Float64("compound", score),
		slog.String("label", label))

	return MapLabel(label), nil
}

func (v *VaderAnalyzer) Close() error {
	return nil
}
