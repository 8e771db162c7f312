package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	dbsql "github.com/databricks/databricks-sql-go"

	"github.com/spacesedan/wordsentiment/config"
	"github.com/spacesedan/wordsentiment/internal/models"
	"github.com/spacesedan/wordsentiment/internal/sentiment"
)

const (
	DATABRICKS_DRIVER_NAME = "databricks"
	SENTIMENT_QUERY        = "SELECT ai_analyze_sentiment(?) AS sentiment"
)

// Opener establishes a connection to the analytics endpoint.
type Opener func(ctx context.Context) (*sql.DB, error)

// SQLSentimentClient scores text with a SQL-callable sentiment function on
// a remote endpoint. The connection is opened on first use and held until
// Close.
type SQLSentimentClient struct {
	open  Opener
	query string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLSentimentClient(open Opener) (*SQLSentimentClient, error) {
	if open == nil {
		return nil, errors.New("[SentimentClient] no connection opener configured")
	}

	return &SQLSentimentClient{
		open:  open,
		query: SENTIMENT_QUERY,
	}, nil
}

func (c *SQLSentimentClient) Analyze(ctx context.Context, text string) (models.Sentiment, error) {
	if text == "" {
		return models.SentimentNeutral, nil
	}

	db, err := c.conn(ctx)
	if err != nil {
		return "", models.NewRemoteError("connect to analytics endpoint", err)
	}

	start := time.Now()
	var label sql.NullString
	err = db.QueryRowContext(ctx, c.query, text).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		slog.Warn("[SentimentClient] Query returned no rows, defaulting to neutral")
		return models.SentimentNeutral, nil
	}
	if err != nil {
		slog.Error("[SentimentClient] Sentiment query failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return "", models.NewRemoteError("query sentiment", err)
	}

	slog.Info("[SentimentClient] Sentiment query successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.String("raw_label", label.String))

	if !label.Valid {
		return models.SentimentNeutral, nil
	}
	return sentiment.MapLabel(label.String), nil
}

func (c *SQLSentimentClient) conn(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	slog.Info("[SentimentClient] Connected to analytics endpoint")
	c.db = db
	return db, nil
}

// Close releases the connection. It is a no-op when no connection was made.
func (c *SQLSentimentClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}

// DatabricksOpener builds an Opener for a Databricks SQL warehouse. It fails
// up front when the databricks driver is not linked into the binary.
func DatabricksOpener(cfg config.ConnectionConfig) (Opener, error) {
	if !slices.Contains(sql.Drivers(), DATABRICKS_DRIVER_NAME) {
		return nil, fmt.Errorf("[DatabricksClient] database/sql driver %q is not registered", DATABRICKS_DRIVER_NAME)
	}

	return func(ctx context.Context) (*sql.DB, error) {
		token := cfg.Token
		if cfg.UsesOAuth() {
			slog.Info("[DatabricksClient] Using OAuth machine-to-machine credentials")
			t, err := FetchM2MToken(ctx, M2MTokenURL(cfg.Host), cfg.ClientID, cfg.ClientSecret)
			if err != nil {
				return nil, err
			}
			token = t
		}

		connector, err := dbsql.NewConnector(
			dbsql.WithServerHostname(cfg.Host),
			dbsql.WithPort(cfg.Port),
			dbsql.WithHTTPPath(cfg.HTTPPath),
			dbsql.WithAccessToken(token),
			dbsql.WithUserAgentEntry(USER_AGENT_ENTRY),
		)
		if err != nil {
			return nil, fmt.Errorf("[DatabricksClient] failed to build connector: %w", err)
		}

		slog.Info("[DatabricksClient] Opening connection",
			slog.String("host", cfg.Host),
			slog.String("http_path", cfg.HTTPPath))
		return sql.OpenDB(connector), nil
	}, nil
}
