package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
)

var (
	// ErrTokenRejected — Discord не принял access token
	ErrTokenRejected = errors.New("discord rejected the access token")
	// ErrDiscordUnavailable — Discord API не ответил или ответил 5xx
	ErrDiscordUnavailable = errors.New("discord api unavailable")
)

// IdentityService подтверждает личность пользователя у Discord:
// токен из OAuth-редиректа обменивается на профиль через /users/@me
type IdentityService struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

func NewIdentityService(log *slog.Logger, baseURL string, timeout time.Duration) *IdentityService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &IdentityService{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type discordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// Resolve запрашивает профиль владельца токена у Discord
func (s *IdentityService) Resolve(ctx context.Context, accessToken string) (models.Identity, error) {
	const op = "identity_service.Resolve"

	log := s.log.With(slog.String("op", op))

	if accessToken == "" {
		return models.Identity{}, ErrTokenRejected
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/users/@me", nil)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("discord request failed", sl.Err(err))
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrDiscordUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Warn("access token rejected", slog.Int("status", resp.StatusCode))
		return models.Identity{}, ErrTokenRejected
	case resp.StatusCode != http.StatusOK:
		log.Error("unexpected discord response", slog.Int("status", resp.StatusCode))
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrDiscordUnavailable)
	}

	var user discordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		log.Error("failed to decode discord response", sl.Err(err))
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrDiscordUnavailable)
	}

	identity := models.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if user.Avatar != "" {
		identity.Avatar = fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", user.ID, user.Avatar)
	}

	log.Info("identity resolved", slog.String("user_id", identity.ID))

	return identity, nil
}
