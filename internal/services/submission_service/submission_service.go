package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"sync"
	"time"

	"halarcraft/internal/domain/models"
	"halarcraft/internal/lib/logger/sl"
	"halarcraft/internal/metrics"
	"halarcraft/internal/repository"
	storage "halarcraft/internal/storage/filestorage"
	"halarcraft/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound    = errors.New("draft not found")
	ErrUploadInProgress = errors.New("upload already in progress for this draft")
	ErrIdentityRequired = errors.New("identity required to submit")
)

// UploadError — хранилище файлов недоступно или отклонило файл.
// Загрузку можно повторить тем же черновиком.
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("asset upload failed: %s", e.Reason)
}

func (e *UploadError) Unwrap() error { return e.Err }

// SubmissionError — репозиторий недоступен в момент сохранения.
// Черновик сохранён без изменений, отправку можно повторить.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// FeedInvalidator сбрасывает кеш публичной ленты после мутаций
type FeedInvalidator interface {
	Invalidate(kind models.SubmissionKind)
}

// draft — черновик одной незавершённой отправки. Живёт только в памяти.
// version растёт при сбросе черновика: запоздавший результат загрузки
// со старой версией отбрасывается, а не применяется к новому черновику.
type draft struct {
	id          uuid.UUID
	version     uint64
	kind        models.SubmissionKind
	title       string
	description string
	category    string
	world       string
	coordinates string
	assetURL    string
	uploading   bool
	touchedAt   time.Time
}

// SubmissionService — контроллер формы отправки: черновики, валидация,
// загрузка файла и передача готовой записи в репозиторий.
type SubmissionService struct {
	log    *slog.Logger
	repo   repository.SubmissionRepository
	assets storage.AssetStore
	feed   FeedInvalidator

	mu       sync.Mutex
	drafts   map[uuid.UUID]*draft
	draftTTL time.Duration
}

func NewSubmissionService(log *slog.Logger, repo repository.SubmissionRepository, assets storage.AssetStore, feed FeedInvalidator, draftTTL time.Duration) *SubmissionService {
	if draftTTL <= 0 {
		draftTTL = 2 * time.Hour
	}

	return &SubmissionService{
		log:      log,
		repo:     repo,
		assets:   assets,
		feed:     feed,
		drafts:   make(map[uuid.UUID]*draft),
		draftTTL: draftTTL,
	}
}

// OpenDraft создаёт пустой черновик с дефолтами формы сайта
func (s *SubmissionService) OpenDraft(kind models.SubmissionKind) dto.DraftState {
	d := &draft{
		id:        uuid.New(),
		kind:      kind,
		touchedAt: time.Now(),
	}

	switch kind {
	case models.SubmissionKindShowcase:
		d.category = "construccion"
	case models.SubmissionKindGallery:
		d.world = "survival"
	}

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	return snapshot(d)
}

// UpdateDraft обновляет текстовые поля черновика.
// Идущую в этот момент загрузку файла правка текста не трогает.
func (s *SubmissionService) UpdateDraft(draftID uuid.UUID, fields dto.DraftFields) (dto.DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return dto.DraftState{}, ErrDraftNotFound
	}

	d.title = fields.Title
	d.description = fields.Description
	d.category = fields.Category
	d.world = fields.World
	d.coordinates = fields.Coordinates
	d.touchedAt = time.Now()

	return snapshot(d), nil
}

// Validate проверяет черновик; возвращает *models.ValidationError
// со всеми нарушенными полями
func (s *SubmissionService) Validate(draftID uuid.UUID) error {
	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return ErrDraftNotFound
	}
	sub := d.toSubmission()
	s.mu.Unlock()

	return sub.Validate()
}

// AttachAsset загружает файл в хранилище и привязывает его URL к черновику.
// На черновик допускается максимум одна незавершённая загрузка.
func (s *SubmissionService) AttachAsset(ctx context.Context, draftID uuid.UUID, file *multipart.FileHeader) (dto.DraftState, error) {
	const op = "submission_service.AttachAsset"

	log := s.log.With(
		slog.String("op", op),
		slog.String("draft_id", draftID.String()),
	)

	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return dto.DraftState{}, ErrDraftNotFound
	}
	if d.uploading {
		s.mu.Unlock()
		log.Warn("concurrent upload rejected")
		return dto.DraftState{}, ErrUploadInProgress
	}
	d.uploading = true
	d.touchedAt = time.Now()
	version := d.version
	kind := d.kind
	s.mu.Unlock()

	assetURL, size, err := s.assets.Save(ctx, file, path.Join("user_uploads", string(kind)))

	s.mu.Lock()
	defer s.mu.Unlock()

	current, alive := s.drafts[draftID]
	if !alive || current.version != version {
		// Черновик сброшен, пока шла загрузка: результат не применяем,
		// файл не оставляем сиротой
		if err == nil {
			_ = s.assets.Delete(context.Background(), assetURL)
		}
		log.Info("late upload result discarded")
		return dto.DraftState{}, ErrDraftNotFound
	}

	current.uploading = false
	current.touchedAt = time.Now()

	if err != nil {
		log.Error("failed to save asset", sl.Err(err))
		return snapshot(current), &UploadError{Reason: err.Error(), Err: err}
	}

	// Повторная загрузка заменяет файл; старый удаляем сразу
	if current.assetURL != "" && current.assetURL != assetURL {
		_ = s.assets.Delete(context.Background(), current.assetURL)
	}
	current.assetURL = assetURL

	log.Info("asset attached",
		slog.String("asset_url", assetURL),
		slog.Int64("file_size", size))

	return snapshot(current), nil
}

// Submit повторно валидирует черновик и сохраняет работу со статусом pending.
// При успехе черновик сбрасывается, при ошибке репозитория — остаётся как был.
func (s *SubmissionService) Submit(ctx context.Context, draftID uuid.UUID, identity models.Identity) (*models.Submission, error) {
	const op = "submission_service.Submit"

	log := s.log.With(
		slog.String("op", op),
		slog.String("draft_id", draftID.String()),
	)

	if identity.IsZero() {
		return nil, ErrIdentityRequired
	}

	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	if d.uploading {
		s.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	version := d.version
	sub := d.toSubmission()
	s.mu.Unlock()

	// Черновик мог «протухнуть» с момента последней проверки —
	// прошлой валидации не доверяем
	if err := sub.Validate(); err != nil {
		log.Warn("submit rejected by validation", sl.Err(err))
		return nil, err
	}

	sub.AuthorID = identity.ID
	sub.AuthorName = identity.Username

	created, err := s.repo.CreateSubmission(ctx, sub)
	if err != nil {
		log.Error("failed to persist submission", sl.Err(err))
		return nil, &SubmissionError{Err: err}
	}

	s.mu.Lock()
	if current, alive := s.drafts[draftID]; alive && current.version == version {
		// Сброс гарантирует, что повторный submit не отправит те же данные
		delete(s.drafts, draftID)
	}
	s.mu.Unlock()

	metrics.SubmissionsCreated.WithLabelValues(string(created.Kind)).Inc()
	if s.feed != nil {
		s.feed.Invalidate(created.Kind)
	}

	log.Info("submission created",
		slog.String("id", created.ID.String()),
		slog.String("kind", string(created.Kind)),
		slog.String("author_id", created.AuthorID))

	return created, nil
}

// ResetDraft удаляет черновик и его загруженный, но не отправленный файл
func (s *SubmissionService) ResetDraft(draftID uuid.UUID) {
	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if ok {
		d.version++
		delete(s.drafts, draftID)
	}
	s.mu.Unlock()

	if ok && d.assetURL != "" {
		_ = s.assets.Delete(context.Background(), d.assetURL)
	}
}

// Draft возвращает текущий снимок черновика
func (s *SubmissionService) Draft(draftID uuid.UUID) (dto.DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return dto.DraftState{}, ErrDraftNotFound
	}

	return snapshot(d), nil
}

// RunJanitor периодически убирает заброшенные черновики вместе с их файлами.
// Без этого загруженные, но не отправленные файлы копились бы вечно.
func (s *SubmissionService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepExpired(time.Now())
		}
	}
}

func (s *SubmissionService) sweepExpired(now time.Time) {
	const op = "submission_service.sweepExpired"

	var orphaned []string

	s.mu.Lock()
	for id, d := range s.drafts {
		if d.uploading || now.Sub(d.touchedAt) < s.draftTTL {
			continue
		}
		d.version++
		delete(s.drafts, id)
		if d.assetURL != "" {
			orphaned = append(orphaned, d.assetURL)
		}
	}
	s.mu.Unlock()

	for _, assetURL := range orphaned {
		if err := s.assets.Delete(context.Background(), assetURL); err != nil {
			s.log.Warn("failed to delete orphaned asset",
				slog.String("op", op),
				slog.String("asset_url", assetURL),
				sl.Err(err))
		}
	}

	if len(orphaned) > 0 {
		s.log.Info("expired drafts swept",
			slog.String("op", op),
			slog.Int("orphaned_assets", len(orphaned)))
	}
}

func (d *draft) toSubmission() *models.Submission {
	return &models.Submission{
		Kind:        d.kind,
		AssetURL:    d.assetURL,
		Title:       d.title,
		Description: d.description,
		Category:    d.category,
		World:       d.world,
		Coordinates: d.coordinates,
	}
}

func snapshot(d *draft) dto.DraftState {
	return dto.DraftState{
		ID:   d.id,
		Kind: d.kind,
		DraftFields: dto.DraftFields{
			Title:       d.title,
			Description: d.description,
			Category:    d.category,
			World:       d.world,
			Coordinates: d.coordinates,
		},
		AssetURL:  d.assetURL,
		Uploading: d.uploading,
	}
}
