package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spacesedan/wordsentiment/internal/models"
	"github.com/spacesedan/wordsentiment/internal/processing"
	"github.com/spacesedan/wordsentiment/internal/report"
	"github.com/spacesedan/wordsentiment/internal/sentiment"
)

type ResultSink interface {
	Store(ctx context.Context, result models.AnalysisResult) error
}

type Outcome struct {
	Result     models.AnalysisResult
	OutputPath string
}

// Runner analyzes one file per run. It owns the analyzer and closes it when
// Run returns, whatever the outcome.
type Runner struct {
	analyzer  sentiment.Analyzer
	sink      ResultSink
	outputDir string
	closeOnce sync.Once
}

type Option func(*Runner)

func WithResultSink(sink ResultSink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

func NewRunner(a sentiment.Analyzer, outputDir string, opts ...Option) *Runner {
	r := &Runner{analyzer: a, outputDir: outputDir}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Run(ctx context.Context, path string) (Outcome, error) {
	defer r.closeAnalyzer()

	rawText, err := ReadRawText(path)
	if err != nil {
		return Outcome{}, err
	}

	totalCount := processing.CountWords(rawText)
	slog.Info("[Runner] Counted words", slog.Int("total_word_count", totalCount))

	category, err := r.analyzer.Analyze(ctx, rawText)
	if err != nil {
		return Outcome{}, tag("analyze sentiment", err)
	}

	fileName := BaseName(path)
	result := models.NewAnalysisResult(fileName, rawText, totalCount, category)
	outputPath := report.OutputPath(r.outputDir, fileName)

	if err := report.WriteCSV(outputPath, result); err != nil {
		return Outcome{}, err
	}

	if r.sink != nil {
		if err := r.sink.Store(ctx, result); err != nil {
			return Outcome{}, models.NewRemoteError("store result", err)
		}
	}

	slog.Info("[Runner] Analysis complete",
		slog.String("output", outputPath),
		slog.String("sentiment", category.String()))

	return Outcome{Result: result, OutputPath: outputPath}, nil
}

func (r *Runner) closeAnalyzer() {
	r.closeOnce.Do(func() {
		if err := r.analyzer.Close(); err != nil {
			slog.Warn("[Runner] Error closing sentiment analyzer",
				slog.String("error", err.Error()))
		}
	})
}

// ReadRawText reads a whole file with every line terminated by "\n",
// regardless of the terminators used on disk.
func ReadRawText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.NewFileIOError("read "+path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// BaseName is the file name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func tag(op string, err error) error {
	var tagged *models.Error
	if errors.As(err, &tagged) {
		return err
	}
	return models.NewUnknownError(op, err)
}
