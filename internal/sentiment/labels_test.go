package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/wordsentiment/internal/models"
)

func TestMapLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Sentiment
	}{
		{"POSITIVE", models.SentimentPositive},
		{"positive", models.SentimentPositive},
		{"Negative", models.SentimentNegative},
		{"neutral", models.SentimentNeutral},
		{"mixed", models.SentimentNeutral},
		{"MiXeD", models.SentimentNeutral},
		{"", models.SentimentNeutral},
		{"  ", models.SentimentNeutral},
		{" negative\n", models.SentimentNegative},
		{"SARCASTIC", models.Sentiment("Sarcastic")},
		{"\xffPOSITIVE", models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MapLabel(tt.raw))
		})
	}
}
