package repository

import (
	"context"
	"errors"

	"halarcraft/internal/domain/models"

	"github.com/google/uuid"
)

// ErrSubmissionNotFound возвращается, когда записи с таким id нет
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository хранит работы игроков.
// CreateSubmission сам назначает id, created_at и статус pending —
// статус от клиента игнорируется.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub *models.Submission) (*models.Submission, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	// ListRecent возвращает до limit работ вида kind, новые первыми;
	// при равном created_at первой идёт запись, вставленная позже
	ListRecent(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error)
	// ListRecentFiltered дополнительно фильтрует по категории (showcase)
	// или миру (галерея)
	ListRecentFiltered(ctx context.Context, kind models.SubmissionKind, values []string, limit int) ([]models.Submission, error)
	ListByStatus(ctx context.Context, kind models.SubmissionKind, status models.SubmissionStatus, page, perPage int) ([]models.Submission, int, error)
	// UpdateStatus разрешает только pending -> approved|rejected;
	// иначе возвращает *models.StatusTransitionError
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) (*models.Submission, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Submission, error)
}

// CodeLedger — идемпотентный учёт найденных секретных кодов по игрокам
type CodeLedger interface {
	// Claim отмечает код найденным; false — код уже был получен ранее
	Claim(ctx context.Context, userID, codeID string) (bool, error)
	IsClaimed(ctx context.Context, userID, codeID string) (bool, error)
	ClaimedCodes(ctx context.Context, userID string) ([]string, error)
}
