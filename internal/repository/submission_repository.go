package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"halarcraft/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const submissionTable = "submissions"

var submissionColumns = []string{
	"id",
	"seq",
	"kind",
	"author_id",
	"author_name",
	"created_at",
	"status",
	"asset_url",
	"title",
	"description",
	"category",
	"world",
	"coordinates",
	"likes",
}

type SubmissionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSubmission сохраняет работу и возвращает её в том виде,
// в каком она легла в базу. Статус всегда pending, что бы ни прислал клиент.
func (r *SubmissionRepo) CreateSubmission(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	const op = "repository.submission_repository.CreateSubmission"

	query, args, err := r.sb.Insert(submissionTable).
		Columns(
			"id",
			"kind",
			"author_id",
			"author_name",
			"created_at",
			"status",
			"asset_url",
			"title",
			"description",
			"category",
			"world",
			"coordinates",
			"likes",
		).
		Values(
			uuid.New(),
			sub.Kind,
			sub.AuthorID,
			sub.AuthorName,
			time.Now().UTC(),
			models.StatusPending,
			sub.AssetURL,
			sub.Title,
			sub.Description,
			sub.Category,
			sub.World,
			sub.Coordinates,
			0,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	created, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// FindByID возвращает работу по id
func (r *SubmissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	const op = "repository.submission_repository.FindByID"

	query, args, err := r.sb.Select(submissionColumns...).
		From(submissionTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	sub, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSubmissionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

// ListRecent возвращает работы вида kind, новые первыми.
// seq — монотонный счётчик вставки, он разруливает равные created_at.
func (r *SubmissionRepo) ListRecent(ctx context.Context, kind models.SubmissionKind, limit int) ([]models.Submission, error) {
	const op = "repository.submission_repository.ListRecent"

	return r.list(ctx, op, r.recentQuery(kind, limit))
}

// ListRecentFiltered сужает выдачу до выбранных категорий или миров
func (r *SubmissionRepo) ListRecentFiltered(ctx context.Context, kind models.SubmissionKind, values []string, limit int) ([]models.Submission, error) {
	const op = "repository.submission_repository.ListRecentFiltered"

	qb := r.recentQuery(kind, limit)
	if len(values) > 0 {
		switch kind {
		case models.SubmissionKindShowcase:
			qb = qb.Where("category = ANY(?)", pq.Array(values))
		case models.SubmissionKindGallery:
			qb = qb.Where("world = ANY(?)", pq.Array(values))
		}
	}

	return r.list(ctx, op, qb)
}

// ListByStatus — постраничная выборка для модераторов.
// Пустой kind означает оба вида сразу.
func (r *SubmissionRepo) ListByStatus(ctx context.Context, kind models.SubmissionKind, status models.SubmissionStatus, page, perPage int) ([]models.Submission, int, error) {
	const op = "repository.submission_repository.ListByStatus"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	total, err := r.countByStatus(ctx, kind, status)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	qb := r.sb.Select(submissionColumns...).
		From(submissionTable).
		Where(statusFilter(kind, status)).
		OrderBy("created_at DESC", "seq DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage))

	subs, err := r.list(ctx, op, qb)
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// UpdateStatus переводит запись из pending в конечный статус.
// Условие status='pending' прямо в UPDATE закрывает гонку двух модераторов.
func (r *SubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) (*models.Submission, error) {
	const op = "repository.submission_repository.UpdateStatus"

	if !status.IsTerminal() {
		return nil, &models.StatusTransitionError{ID: id, From: models.StatusPending, To: status}
	}

	query, args, err := r.sb.Update(submissionTable).
		Set("status", status).
		Where(sq.Eq{"id": id, "status": models.StatusPending}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	sub, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Строка не обновилась: либо записи нет, либо она уже не pending
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return nil, &models.StatusTransitionError{ID: id, From: current.Status, To: status}
}

// IncrementLikes увеличивает счётчик лайков на единицу
func (r *SubmissionRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	const op = "repository.submission_repository.IncrementLikes"

	query, args, err := r.sb.Update(submissionTable).
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	sub, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSubmissionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (r *SubmissionRepo) recentQuery(kind models.SubmissionKind, limit int) sq.SelectBuilder {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	return r.sb.Select(submissionColumns...).
		From(submissionTable).
		Where(sq.Eq{"kind": kind}).
		OrderBy("created_at DESC", "seq DESC").
		Limit(uint64(limit))
}

func (r *SubmissionRepo) list(ctx context.Context, op string, qb sq.SelectBuilder) ([]models.Submission, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, *sub)
	}

	return subs, nil
}

func (r *SubmissionRepo) countByStatus(ctx context.Context, kind models.SubmissionKind, status models.SubmissionStatus) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From(submissionTable).
		Where(statusFilter(kind, status)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return count, nil
}

func statusFilter(kind models.SubmissionKind, status models.SubmissionStatus) sq.Eq {
	filter := sq.Eq{"status": status}
	if kind != "" {
		filter["kind"] = kind
	}
	return filter
}

func columnList() string {
	list := submissionColumns[0]
	for _, c := range submissionColumns[1:] {
		list += ", " + c
	}
	return list
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var sub models.Submission
	err := row.Scan(
		&sub.ID,
		&sub.Seq,
		&sub.Kind,
		&sub.AuthorID,
		&sub.AuthorName,
		&sub.CreatedAt,
		&sub.Status,
		&sub.AssetURL,
		&sub.Title,
		&sub.Description,
		&sub.Category,
		&sub.World,
		&sub.Coordinates,
		&sub.Likes,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
