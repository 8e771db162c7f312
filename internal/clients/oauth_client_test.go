package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchM2MToken(t *testing.T) {
	t.Run("successful exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, M2M_SCOPE, r.PostForm.Get("scope"))

			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(map[string]any{
				"access_token": "dapi-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
			require.NoError(t, err)
		}))
		defer server.Close()

		token, err := FetchM2MToken(context.Background(), server.URL, "client-id", "client-secret")

		require.NoError(t, err)
		assert.Equal(t, "dapi-token", token)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, err := w.Write([]byte(`{"error":"invalid_client"}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		_, err := FetchM2MToken(context.Background(), server.URL, "bad", "bad")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_client")
	})
}

func TestM2MTokenURL(t *testing.T) {
	assert.Equal(t, "https://adb-123.azuredatabricks.net/oidc/v1/token", M2MTokenURL("adb-123.azuredatabricks.net"))
}
