package sentiment

import (
	"context"

	"github.com/spacesedan/wordsentiment/internal/models"
)

// Analyzer classifies the sentiment of a text. Close releases whatever the
// analyzer holds and must be safe to call when nothing was acquired.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.Sentiment, error)
	Close() error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close()
}
