package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
	"halarcraft/internal/metrics"
	"halarcraft/internal/repository"

	"github.com/google/uuid"
)

// ErrUnknownDecision — решение модератора не approve и не reject
var ErrUnknownDecision = errors.New("unknown moderation decision")

// FeedInvalidator сбрасывает кеш публичной ленты после смены статуса
type FeedInvalidator interface {
	Invalidate(kind models.SubmissionKind)
}

// ModerationService проводит записи через pending -> approved|rejected.
// Повторное решение по уже решённой записи — ошибка перехода, а не no-op:
// модератор должен видеть, что работал с устаревшим списком.
type ModerationService struct {
	log  *slog.Logger
	repo repository.SubmissionRepository
	feed FeedInvalidator
}

func NewModerationService(log *slog.Logger, repo repository.SubmissionRepository, feed FeedInvalidator) *ModerationService {
	return &ModerationService{
		log:  log,
		repo: repo,
		feed: feed,
	}
}

// Moderate применяет решение модератора к записи
func (s *ModerationService) Moderate(ctx context.Context, id uuid.UUID, decision string) (*models.Submission, error) {
	const op = "moderation_service.Moderate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("submission_id", id.String()),
		slog.String("decision", decision),
	)

	status, err := decisionStatus(decision)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		var transition *models.StatusTransitionError
		if errors.As(err, &transition) {
			log.Warn("submission already decided",
				slog.String("current_status", string(transition.From)))
			return nil, err
		}

		log.Error("failed to update status", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.ModerationDecisions.WithLabelValues(string(sub.Kind), decision).Inc()
	if s.feed != nil {
		s.feed.Invalidate(sub.Kind)
	}

	log.Info("submission moderated", slog.String("status", string(sub.Status)))

	return sub, nil
}

// ListPending — очередь на модерацию, новые первыми
func (s *ModerationService) ListPending(ctx context.Context, kind models.SubmissionKind, page, perPage int) ([]models.Submission, int, error) {
	const op = "moderation_service.ListPending"

	subs, total, err := s.repo.ListByStatus(ctx, kind, models.StatusPending, page, perPage)
	if err != nil {
		s.log.Error("failed to list pending", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}

func decisionStatus(decision string) (models.SubmissionStatus, error) {
	switch decision {
	case "approve":
		return models.StatusApproved, nil
	case "reject":
		return models.StatusRejected, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDecision, decision)
}
