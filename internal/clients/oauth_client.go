package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	oauthRequestTimeout = 30 * time.Second
	M2M_SCOPE           = "all-apis"
)

func M2MTokenURL(host string) string {
	return fmt.Sprintf("https://%s/oidc/v1/token", host)
}

// FetchM2MToken exchanges a service principal's client credentials for an
// access token.
func FetchM2MToken(ctx context.Context, tokenURL, clientID, clientSecret string) (string, error) {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{M2M_SCOPE},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	httpClient := &http.Client{
		Timeout: oauthRequestTimeout,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("[OAuthClient] failed to fetch token: %w", err)
	}

	return tok.AccessToken, nil
}
