package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
	"halarcraft/internal/metrics"
	"halarcraft/internal/repository"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// FeedService — публичная лента: из последних работ остаются только approved.
// Фильтр применяется на каждом чтении, поэтому одобрение видно сразу же.
type FeedService struct {
	log   *slog.Logger
	repo  repository.SubmissionRepository
	cache *gocache.Cache
	ttl   time.Duration
}

// NewFeedService создаёт ленту с read-through кешем по виду работ.
// ttl <= 0 означает кеш без срока: устаревание ограничено только
// следующей инвалидацией после мутации.
func NewFeedService(log *slog.Logger, repo repository.SubmissionRepository, ttl time.Duration) *FeedService {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	return &FeedService{
		log:   log,
		repo:  repo,
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// PublicFeed возвращает до limit одобренных работ вида kind, новые первыми
func (s *FeedService) PublicFeed(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error) {
	const op = "feed_service.PublicFeed"

	key := feedKey(kind, limit)
	if cached, ok := s.cache.Get(key); ok {
		metrics.FeedCacheHits.WithLabelValues(string(kind)).Inc()
		return cached.([]models.Submission), nil
	}
	metrics.FeedCacheMisses.WithLabelValues(string(kind)).Inc()

	subs, err := s.repo.ListRecent(ctx, kind, limit)
	if err != nil {
		s.log.Error("failed to list submissions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	approved := filterApproved(subs)
	s.cache.Set(key, approved, s.ttl)

	return approved, nil
}

// FilteredFeed — лента, суженная по категориям или мирам; кеш не используется
func (s *FeedService) FilteredFeed(ctx context.Context, kind models.SubmissionKind, values []string, limit int) ([]models.Submission, error) {
	const op = "feed_service.FilteredFeed"

	subs, err := s.repo.ListRecentFiltered(ctx, kind, values, limit)
	if err != nil {
		s.log.Error("failed to list submissions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return filterApproved(subs), nil
}

// Like увеличивает счётчик лайков одобренной работы
func (s *FeedService) Like(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	const op = "feed_service.Like"

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sub.Status != models.StatusApproved {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrSubmissionNotFound)
	}

	liked, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		s.log.Error("failed to increment likes", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.Invalidate(liked.Kind)

	return liked, nil
}

// Invalidate сбрасывает кеш вида целиком; частичных правок кеша не бывает
func (s *FeedService) Invalidate(kind models.SubmissionKind) {
	prefix := string(kind) + ":"
	for key := range s.cache.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			s.cache.Delete(key)
		}
	}
}

func feedKey(kind models.SubmissionKind, limit int) string {
	return fmt.Sprintf("%s:%d", kind, limit)
}

func filterApproved(subs []models.Submission) []models.Submission {
	approved := make([]models.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.Status == models.StatusApproved {
			approved = append(approved, sub)
		}
	}
	return approved
}
