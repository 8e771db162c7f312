package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/spacesedan/wordsentiment/config"
	"github.com/spacesedan/wordsentiment/internal/analyzer"
	"github.com/spacesedan/wordsentiment/internal/clients"
	"github.com/spacesedan/wordsentiment/internal/db"
	"github.com/spacesedan/wordsentiment/internal/logging"
	"github.com/spacesedan/wordsentiment/internal/models"
	"github.com/spacesedan/wordsentiment/internal/sentiment"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "analyzer <file-path>",
		Short:         "Count words and classify sentiment of a text file into a CSV summary",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.InitLogger(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			run(cmd.Context(), cfg, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory the CSV summary is written to")
	cmd.Flags().StringVar(&cfg.Backend, "backend", cfg.Backend, "sentiment backend: databricks or vader")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	return cmd
}

// run reports failures through the logger and never returns them; the
// process exits normally either way.
func run(ctx context.Context, cfg config.Config, path string) {
	slog.SetDefault(slog.Default().With(slog.String("run_id", uuid.NewString())))

	a, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		reportError(path, models.NewUnknownError("initialize sentiment backend", err))
		return
	}

	var opts []analyzer.Option
	if cfg.Sink.Enabled() {
		client, err := clients.GetDynamoDBClient(ctx, cfg.Sink)
		if err != nil {
			closeAnalyzer(a)
			reportError(path, models.NewRemoteError("initialize result store", err))
			return
		}
		opts = append(opts, analyzer.WithResultSink(db.NewResultStore(client, cfg.Sink.Table)))
	}

	outcome, err := analyzer.NewRunner(a, cfg.OutputDir, opts...).Run(ctx, path)
	if err != nil {
		reportError(path, err)
		return
	}

	slog.Info("Analysis complete",
		slog.Int("total_word_count", outcome.Result.TotalWordCount),
		slog.String("sentiment", outcome.Result.Sentiment.String()),
		slog.String("csv", outcome.OutputPath))
}

func buildAnalyzer(ctx context.Context, cfg config.Config) (sentiment.Analyzer, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = config.DEFAULT_BACKEND
	}

	var a sentiment.Analyzer
	switch backend {
	case "vader":
		a = sentiment.NewVaderAnalyzer()
	case "databricks":
		opener, err := clients.DatabricksOpener(cfg.Connection)
		if err != nil {
			return nil, err
		}
		client, err := clients.NewSQLSentimentClient(opener)
		if err != nil {
			return nil, err
		}
		a = client
	default:
		return nil, fmt.Errorf("unknown sentiment backend %q", cfg.Backend)
	}

	if !cfg.Cache.Enabled() {
		return a, nil
	}

	cache, err := clients.NewValkeyClient(ctx, cfg.Cache)
	if err != nil {
		slog.Warn("[Main] Sentiment cache unavailable, continuing without it",
			slog.String("error", err.Error()))
		return a, nil
	}
	return sentiment.NewCachedAnalyzer(a, cache, backend), nil
}

func closeAnalyzer(a sentiment.Analyzer) {
	if err := a.Close(); err != nil {
		slog.Warn("[Main] Error closing sentiment analyzer",
			slog.String("error", err.Error()))
	}
}

func reportError(path string, err error) {
	switch models.KindOf(err) {
	case models.ErrKindFileIO:
		slog.Error("Error processing file",
			slog.String("file", path),
			slog.String("error", err.Error()))
	case models.ErrKindRemote:
		slog.Error("Error connecting to analytics endpoint",
			slog.String("error", err.Error()))
	default:
		slog.Error("Unexpected error occurred",
			slog.String("error", err.Error()))
	}
}
