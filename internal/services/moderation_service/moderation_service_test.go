package services

import (
	"context"
	"log/slog"
	"testing"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	kinds []models.SubmissionKind
}

func (r *recordingInvalidator) Invalidate(kind models.SubmissionKind) {
	r.kinds = append(r.kinds, kind)
}

func setupModeration(t *testing.T) (*ModerationService, *repository.MemorySubmissionRepo, *recordingInvalidator) {
	t.Helper()

	repo := repository.NewMemorySubmissionRepository()
	feed := &recordingInvalidator{}

	return NewModerationService(slog.Default(), repo, feed), repo, feed
}

func seedPending(t *testing.T, repo *repository.MemorySubmissionRepo, kind models.SubmissionKind) *models.Submission {
	t.Helper()

	created, err := repo.CreateSubmission(context.Background(), &models.Submission{
		Kind:        kind,
		AuthorID:    "discord-1",
		AuthorName:  "steve",
		AssetURL:    "http://test.local/uploads/img.png",
		Title:       "Постройка",
		Description: "Описание",
		Category:    "construccion",
		World:       "survival",
	})
	require.NoError(t, err)

	return created
}

func TestModerationService_Moderate(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		svc, repo, feed := setupModeration(t)
		sub := seedPending(t, repo, models.SubmissionKindShowcase)

		decided, err := svc.Moderate(ctx, sub.ID, "approve")
		require.NoError(t, err)

		assert.Equal(t, models.StatusApproved, decided.Status)
		assert.Equal(t, []models.SubmissionKind{models.SubmissionKindShowcase}, feed.kinds)
	})

	t.Run("reject", func(t *testing.T) {
		svc, repo, _ := setupModeration(t)
		sub := seedPending(t, repo, models.SubmissionKindGallery)

		decided, err := svc.Moderate(ctx, sub.ID, "reject")
		require.NoError(t, err)

		assert.Equal(t, models.StatusRejected, decided.Status)
	})

	t.Run("second decision is a transition error", func(t *testing.T) {
		svc, repo, feed := setupModeration(t)
		sub := seedPending(t, repo, models.SubmissionKindShowcase)

		_, err := svc.Moderate(ctx, sub.ID, "approve")
		require.NoError(t, err)

		_, err = svc.Moderate(ctx, sub.ID, "reject")

		var transition *models.StatusTransitionError
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, models.StatusApproved, transition.From)

		// Кеш сброшен только первым, успешным решением
		assert.Len(t, feed.kinds, 1)
	})

	t.Run("unknown decision", func(t *testing.T) {
		svc, repo, _ := setupModeration(t)
		sub := seedPending(t, repo, models.SubmissionKindShowcase)

		_, err := svc.Moderate(ctx, sub.ID, "maybe")
		assert.ErrorIs(t, err, ErrUnknownDecision)

		// Запись осталась в очереди
		current, err := repo.FindByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, current.Status)
	})

	t.Run("unknown submission", func(t *testing.T) {
		svc, _, _ := setupModeration(t)

		_, err := svc.Moderate(ctx, uuid.New(), "approve")
		assert.ErrorIs(t, err, repository.ErrSubmissionNotFound)
	})
}

func TestModerationService_ListPending(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setupModeration(t)

	first := seedPending(t, repo, models.SubmissionKindShowcase)
	second := seedPending(t, repo, models.SubmissionKindShowcase)
	gallery := seedPending(t, repo, models.SubmissionKindGallery)

	_, err := svc.Moderate(ctx, first.ID, "approve")
	require.NoError(t, err)

	t.Run("one kind", func(t *testing.T) {
		subs, total, err := svc.ListPending(ctx, models.SubmissionKindShowcase, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, subs, 1)
		assert.Equal(t, second.ID, subs[0].ID)
	})

	t.Run("all kinds", func(t *testing.T) {
		subs, total, err := svc.ListPending(ctx, "", 1, 10)
		require.NoError(t, err)

		assert.Equal(t, 2, total)
		require.Len(t, subs, 2)
		assert.Equal(t, gallery.ID, subs[0].ID)
	})
}
