package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discordStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/@me", r.URL.Path)
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]string{
				"id":       "80351110224678912",
				"username": "steve",
				"email":    "steve@example.com",
				"avatar":   "8342729096ea3675442027381ff50dfe",
			})
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		identity, err := svc.Resolve(ctx, "token-123")
		require.NoError(t, err)

		assert.Equal(t, "80351110224678912", identity.ID)
		assert.Equal(t, "steve", identity.Username)
		assert.Equal(t, "steve@example.com", identity.Email)
		assert.Equal(t,
			"https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png",
			identity.Avatar)
	})

	t.Run("user without avatar", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"id":       "1",
				"username": "alex",
			})
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		identity, err := svc.Resolve(ctx, "token-123")
		require.NoError(t, err)
		assert.Empty(t, identity.Avatar)
	})

	t.Run("rejected token", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		_, err := svc.Resolve(ctx, "bad-token")
		assert.ErrorIs(t, err, ErrTokenRejected)
	})

	t.Run("discord down", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		_, err := svc.Resolve(ctx, "token-123")
		assert.ErrorIs(t, err, ErrDiscordUnavailable)
	})

	t.Run("empty token never reaches discord", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request must not be sent")
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		_, err := svc.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrTokenRejected)
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := discordStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		svc := NewIdentityService(slog.Default(), srv.URL, 5*time.Second)

		_, err := svc.Resolve(ctx, "token-123")
		assert.ErrorIs(t, err, ErrDiscordUnavailable)
	})
}
