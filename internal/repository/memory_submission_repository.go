package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"halarcraft/internal/domain/models"

	"github.com/google/uuid"
)

// MemorySubmissionRepo — потокобезопасная реализация в памяти.
// Используется в тестах и при локальном запуске без Postgres.
type MemorySubmissionRepo struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*models.Submission
	seq  int64
}

func NewMemorySubmissionRepository() *MemorySubmissionRepo {
	return &MemorySubmissionRepo{
		subs: make(map[uuid.UUID]*models.Submission),
	}
}

func (r *MemorySubmissionRepo) CreateSubmission(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++

	stored := *sub
	stored.ID = uuid.New()
	stored.Seq = r.seq
	stored.CreatedAt = time.Now().UTC()
	stored.Status = models.StatusPending
	stored.Likes = 0

	r.subs[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *MemorySubmissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}

	copied := *sub
	return &copied, nil
}

func (r *MemorySubmissionRepo) ListRecent(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error) {
	return r.ListRecentFiltered(ctx, kind, nil, limit)
}

func (r *MemorySubmissionRepo) ListRecentFiltered(ctx context.Context, kind models.SubmissionKind, values []string, limit int) ([]models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	r.mu.RLock()
	subs := r.collect(kind, values)
	r.mu.RUnlock()

	sortRecent(subs)

	if len(subs) > limit {
		subs = subs[:limit]
	}

	return subs, nil
}

func (r *MemorySubmissionRepo) ListByStatus(ctx context.Context, kind models.SubmissionKind, status models.SubmissionStatus, page, perPage int) ([]models.Submission, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	r.mu.RLock()
	var subs []models.Submission
	for _, sub := range r.subs {
		if kind != "" && sub.Kind != kind {
			continue
		}
		if sub.Status == status {
			subs = append(subs, *sub)
		}
	}
	r.mu.RUnlock()

	sortRecent(subs)

	total := len(subs)
	start := (page - 1) * perPage
	if start >= total {
		return nil, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return subs[start:end], total, nil
}

func (r *MemorySubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) (*models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}

	if !status.IsTerminal() || sub.Status != models.StatusPending {
		return nil, &models.StatusTransitionError{ID: id, From: sub.Status, To: status}
	}

	sub.Status = status

	copied := *sub
	return &copied, nil
}

func (r *MemorySubmissionRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}

	sub.Likes++

	copied := *sub
	return &copied, nil
}

func (r *MemorySubmissionRepo) collect(kind models.SubmissionKind, values []string) []models.Submission {
	var subs []models.Submission
	for _, sub := range r.subs {
		if sub.Kind != kind {
			continue
		}
		if len(values) > 0 {
			field := sub.Category
			if kind == models.SubmissionKindGallery {
				field = sub.World
			}
			if !containsString(values, field) {
				continue
			}
		}
		subs = append(subs, *sub)
	}
	return subs
}

func sortRecent(subs []models.Submission) {
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].CreatedAt.After(subs[j].CreatedAt)
		}
		return subs[i].Seq > subs[j].Seq
	})
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
