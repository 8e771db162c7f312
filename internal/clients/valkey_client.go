package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/wordsentiment/config"
)

// ValkeyClient stores sentiment labels keyed by a digest of the analyzed
// text.
type ValkeyClient struct {
	Client valkey.Client
	ttl    time.Duration
}

func valkeyOptions(cfg config.CacheConfig) valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func NewValkeyClient(ctx context.Context, cfg config.CacheConfig) (*ValkeyClient, error) {
	client, err := valkey.NewClient(valkeyOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return &ValkeyClient{Client: client, ttl: cfg.TTL}, nil
}

func (vc *ValkeyClient) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		if isConnectionError(err) {
			slog.Warn("[ValkeyClient] Connection problem during get",
				slog.String("error", err.Error()))
		}
		return "", false, err
	}

	return value, true, nil
}

func (vc *ValkeyClient) Set(ctx context.Context, key string, value string) error {
	cmd := vc.Client.B().Set().Key(key).Value(value).ExSeconds(expireSeconds(vc.ttl)).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		return err
	}

	slog.Info("[ValkeyClient] Cached sentiment", slog.String("key", key))
	return nil
}

// expireSeconds rounds up to whole seconds with a floor of one.
func expireSeconds(ttl time.Duration) int64 {
	seconds := int64((ttl + time.Second - 1) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
